package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msomdec/anime-service/internal/config"
)

var (
	cfg        *config.Config
	configPath string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	rootCmd := &cobra.Command{
		Use:           "anime-service",
		Short:         "REST CRUD service for animes, producers and users",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			slog.SetDefault(newLogger(cfg.Logging, os.Stdout, os.Stderr))
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (default ./config.yaml if present)")

	rootCmd.AddCommand(
		serveCmd(),
		fixturesCmd(),
	)

	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	stop()
	if err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger. The multi format writes text to
// stdout and JSON to stderr.
func newLogger(lc config.LoggingConfig, stdout, stderr io.Writer) *slog.Logger {
	level, err := lc.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	switch lc.Format {
	case "text":
		return slog.New(slog.NewTextHandler(stdout, opts))
	case "json":
		return slog.New(slog.NewJSONHandler(stderr, opts))
	default:
		return slog.New(slog.NewMultiHandler(
			slog.NewTextHandler(stdout, opts),
			slog.NewJSONHandler(stderr, opts),
		))
	}
}
