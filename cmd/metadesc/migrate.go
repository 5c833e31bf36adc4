package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/phrazzld/metadesc-api/internal/platform/postgres"
	"github.com/spf13/cobra"
)

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [" + strings.Join(postgres.MigrationCommands, "|") + "]",
		Short:     "Run database migrations",
		Args:      cobra.ExactArgs(1),
		ValidArgs: postgres.MigrationCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			command := args[0]
			if !slices.Contains(postgres.MigrationCommands, command) {
				return fmt.Errorf("unknown migration command %q", command)
			}

			db, err := postgres.Open(cmd.Context(), c.cfg.Database.URL)
			if err != nil {
				return err
			}
			defer db.Close()

			return postgres.Migrate(cmd.Context(), db, command, c.logger)
		},
	}
}
