// Package main implements the recipefinder server and CLI.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/matt-dz/recipefinder/internal/config"
	"github.com/matt-dz/recipefinder/internal/env"
	"github.com/matt-dz/recipefinder/internal/log"
	"github.com/matt-dz/recipefinder/internal/session"
	"github.com/matt-dz/recipefinder/internal/setup"
)

var (
	// configPath points at a YAML config; empty means the default location
	configPath string
	// profileID selects the profile CLI commands operate on
	profileID string
	// outputJSON switches command output to JSON
	outputJSON bool
	version    = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "recipefinder",
	Short: "Recipe search server and command-line client",
	Long: `recipefinder searches recipes by ingredients or free text, applies cuisine,
diet, ready-time and ingredient filters, and keeps per-profile favorites,
search history and recently viewed recipes.

Run "recipefinder serve" to start the HTTP API, or use the other commands to
work with a profile directly.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&profileID, "profile", "local", "profile to operate on")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output results as JSON")
}

func newLogger(conf config.Config) *slog.Logger {
	level, err := log.ParseLevel(string(conf.LogLevel))
	if err != nil {
		level = slog.LevelInfo
	}
	return log.New(&slog.HandlerOptions{Level: level})
}

// openEnv loads the config and wires the application environment.
func openEnv(ctx context.Context) (*env.Env, error) {
	conf, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	e, err := setup.Env(ctx, conf, newLogger(conf))
	if err != nil {
		return nil, err
	}
	return e, nil
}

// withSession runs fn against the selected profile and releases the
// environment afterwards.
func withSession(ctx context.Context, fn func(*session.Session) error) (err error) {
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := e.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	s, err := e.Sessions.Get(ctx, profileID)
	if err != nil {
		return fmt.Errorf("opening profile %q: %w", profileID, err)
	}
	return fn(s)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
