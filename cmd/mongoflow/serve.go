package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mongoflow/web/internal/config"
	"github.com/mongoflow/web/internal/handlers"
	"github.com/mongoflow/web/internal/metrics"
	"github.com/mongoflow/web/internal/server"
	"github.com/mongoflow/web/internal/shell"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Logger
	logger := setupLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	// Shell
	sh, err := shell.Default(cfg.AppName)
	if err != nil {
		return fmt.Errorf("build shell: %w", err)
	}

	// Metrics
	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	// Handlers and router
	h := handlers.New(sh, m, logger)
	router := server.NewRouter(h, sh, server.RouterOptions{
		Logger:  logger,
		Metrics: m,
	})

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("shell configured",
		"app", cfg.AppName,
		"environment", cfg.Environment,
		"routes", len(sh.Routes()),
		"metrics", cfg.MetricsEnabled,
	)

	return server.New(cfg.Addr(), router, cfg.ShutdownTimeout, logger).Run(ctx)
}
