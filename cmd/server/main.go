// Package main implements the entry point for the ecommerce API server,
// which records users, products and orders in PostgreSQL.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/phrazzld/ecommerce-api/internal/config"
	"github.com/phrazzld/ecommerce-api/internal/platform/logger"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stderr); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// run parses flags, loads configuration and either runs a migration command
// or serves the API until ctx is canceled or a termination signal arrives.
func run(ctx context.Context, args []string, stderr io.Writer) error {
	flags := flag.NewFlagSet("server", flag.ContinueOnError)
	flags.SetOutput(stderr)
	migrateCmd := flags.String("migrate", "",
		"run a migration command and exit (up, down, status, version, reset)")
	envFile := flags.String("env-file", ".env", "dotenv file loaded before configuration")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if err := loadDotEnv(*envFile); err != nil {
		return err
	}

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"auto_migrate", cfg.Database.AutoMigrate)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error("failed to close database", "error", closeErr)
		}
	}()

	if *migrateCmd != "" {
		return runMigrations(ctx, db, *migrateCmd, log)
	}
	if cfg.Database.AutoMigrate {
		if err := runMigrations(ctx, db, "up", log); err != nil {
			return err
		}
	}

	app := newApplication(cfg, log, db)
	return app.startHTTPServer(ctx, app.setupRouter())
}

// loadDotEnv loads path into the environment. A missing file is not an error;
// variables already set are left alone.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
