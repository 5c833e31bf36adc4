package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/metadesc-api/internal/config"
	"github.com/phrazzld/metadesc-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

// cli carries state shared by all subcommands.
type cli struct {
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "metadesc",
		Short:         "SEO meta description generator",
		Long:          `metadesc renders content items, sends their text to an LLM provider and returns a search-ready meta description.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "configuration file (default: ./config.yaml)")

	root.AddCommand(
		newServeCmd(c),
		newGenerateCmd(c),
		newMigrateCmd(c),
		newTokenCmd(c),
	)
	return root
}

// loadConfig reads the configuration and installs the application logger.
func (c *cli) loadConfig() error {
	cfg, err := config.LoadFile(c.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Debug("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"settings_path", cfg.Settings.Path,
		"llm_provider_configured", cfg.LLM.HasAnyProvider())

	c.cfg = cfg
	c.logger = log
	return nil
}
