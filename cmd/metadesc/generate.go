package main

import (
	"errors"
	"fmt"

	"github.com/phrazzld/metadesc-api/internal/generation"
	"github.com/phrazzld/metadesc-api/internal/platform/postgres"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newGenerateCmd(c *cli) *cobra.Command {
	var itemID int64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a meta description for one content item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if itemID <= 0 {
				return errors.New("--item must be a positive content item id")
			}
			ctx := cmd.Context()

			db, err := postgres.Open(ctx, c.cfg.Database.URL)
			if err != nil {
				return err
			}
			defer db.Close()

			app, err := newApplication(ctx, c.cfg, c.logger, db, prometheus.NewRegistry(), prometheus.NewRegistry())
			if err != nil {
				return err
			}

			return app.generateOnce(cmd, itemID)
		},
	}

	cmd.Flags().Int64Var(&itemID, "item", 0, "content item id")
	_ = cmd.MarkFlagRequired("item")
	return cmd
}

// generateOnce runs the pipeline for one item and prints the outcome.
func (app *application) generateOnce(cmd *cobra.Command, itemID int64) error {
	ctx := cmd.Context()

	current, err := app.settings.Load(ctx)
	if err != nil {
		return err
	}

	item, err := app.contents.GetByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("error loading content: %w", err)
	}
	if !current.BundleEnabled(item.Bundle) {
		return fmt.Errorf("generation is not enabled for content type %q", item.Bundle)
	}

	switch result := app.generator.Generate(ctx, current, item).(type) {
	case generation.Success:
		length, status := generation.ClassifyLength(result.Description)
		fmt.Fprintln(cmd.OutOrStdout(), result.Description)
		fmt.Fprintf(cmd.ErrOrStderr(), "length: %d (%s)\n", length, status)
		return nil
	case generation.Failure:
		return fmt.Errorf("%s (%s)", result.Message, result.Kind)
	default:
		return errors.New(generation.MsgUnexpected)
	}
}
