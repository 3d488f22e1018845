package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/matt-dz/recipefinder/internal/api"
	"github.com/matt-dz/recipefinder/internal/config"
	"github.com/matt-dz/recipefinder/internal/setup"
)

const setupTime = 30 * time.Second

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API.

The config is read from --config (default /data/recipefinder.yaml) and falls
back to environment variables when the file does not exist.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conf, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	logger := newLogger(conf)

	setupCtx, cancel := context.WithTimeout(ctx, setupTime)
	defer cancel()
	e, err := setup.Env(setupCtx, conf, logger)
	if err != nil {
		logger.Error("failed to set up environment", slog.Any("error", err))
		return err
	}
	defer func() {
		if err := e.Close(); err != nil {
			logger.Error("failed to release resources", slog.Any("error", err))
		}
	}()

	logger.Info("starting server",
		slog.String("gateway", string(conf.Gateway.Mode)),
		slog.String("preferences", string(conf.Preferences.Backend)))
	if err := api.Start(ctx, e); err != nil {
		logger.Error("API Failed", slog.Any("error", err))
		return err
	}
	return nil
}
