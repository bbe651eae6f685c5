package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/shivua6263/policy/internal/buildinfo"
	"github.com/shivua6263/policy/internal/client/cli"
	"github.com/shivua6263/policy/internal/client/config"
	"github.com/shivua6263/policy/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	log, err := logging.New(logging.Options{
		Backend:   cfg.LogBackend,
		Level:     cfg.LogLevel,
		Output:    os.Stderr,
		ZapOutput: cfg.LogFile,
		NoColor:   cfg.NoColor,
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	if s, ok := log.(interface{ Sync() error }); ok {
		defer func() { _ = s.Sync() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	buildinfo.PrintBanner(os.Stdout)

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	log.Info(ctx, "client started", "api", cfg.APIBaseURL, "version", buildinfo.Version)
	app.Run(ctx)
	return nil
}
