package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/msomdec/anime-service/internal/metrics"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Seed the configured store and serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repos, closeRepos, err := newRepositories(ctx, cfg.Store)
			if err != nil {
				return err
			}
			defer closeRepos()

			if err := seed(ctx, cfg.Fixtures, repos); err != nil {
				return fmt.Errorf("seed fixtures: %w", err)
			}

			srv := &http.Server{
				Addr:              cfg.Server.Addr,
				Handler:           newHandler(repos, cfg.Server.APIKeyHeader, metrics.New(prometheus.NewRegistry())),
				ReadHeaderTimeout: 10 * time.Second,
				IdleTimeout:       120 * time.Second,
				MaxHeaderBytes:    1 << 20, // 1MB
			}

			errCh := make(chan error, 1)
			go func() {
				slog.Info("server starting", "addr", srv.Addr, "store", cfg.Store.Driver)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- fmt.Errorf("server error: %w", err)
				}
				close(errCh)
			}()

			select {
			case <-ctx.Done():
				slog.Info("shutting down server")
			case err := <-errCh:
				return err
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server shutdown: %w", err)
			}
			if err := <-errCh; err != nil {
				return err
			}
			slog.Info("server stopped")
			return nil
		},
	}
}
