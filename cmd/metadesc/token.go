package main

import (
	"fmt"

	"github.com/phrazzld/metadesc-api/internal/service/auth"
	"github.com/spf13/cobra"
)

func newTokenCmd(c *cli) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an editor token for local use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := auth.NewJWTService(c.cfg.Auth)
			if err != nil {
				return err
			}

			token, err := svc.GenerateToken(cmd.Context(), subject)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "editor the token is issued for")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
