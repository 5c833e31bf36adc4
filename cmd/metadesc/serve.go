package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/phrazzld/metadesc-api/internal/platform/postgres"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const readHeaderTimeout = 10 * time.Second

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			db, err := postgres.Open(ctx, c.cfg.Database.URL)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					c.logger.Error("failed to close database", "error", err)
				}
			}()
			c.logger.Info("database connection established")

			app, err := newApplication(ctx, c.cfg, c.logger, db,
				prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
			if err != nil {
				return err
			}

			return app.serve(ctx)
		},
	}
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down
// within the configured timeout.
func (app *application) serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           app.setupRouter(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Info("starting server", "port", app.config.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		app.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		app.logger.Info("server shutdown completed")
		return nil
	})

	return g.Wait()
}
