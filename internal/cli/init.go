// Package cli provides common CLI initialization utilities shared by the
// hourlog commands.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/joho/godotenv"

	"hourlog/internal/backend"
	"hourlog/internal/config"
	applog "hourlog/internal/log"
	"hourlog/internal/services"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration from the environment and validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogger initializes structured logging at the configured level on out.
// Returns the configured logger and sets it as the default logger.
func SetupLogger(cfg *config.Config, out io.Writer) *applog.Logger {
	lc := applog.DefaultConfig()
	if level, err := applog.ParseLevel(cfg.LogLevel); err == nil {
		lc.Level = level
	}
	if out != nil {
		lc.Output = out
	}
	logger := applog.New(lc)
	applog.SetDefault(logger)
	return logger
}

// OpenStore builds the configured backend and loads the entry store from it.
// The returned cleanup releases the backend and is never nil.
func OpenStore(ctx context.Context, cfg *config.Config, logger *applog.Logger, confirm services.Confirmer) (*services.EntryStore, func() error, error) {
	noop := func() error { return nil }

	bc, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, noop, err
	}

	res, err := backend.NewFactory(logger.Logger.With(applog.FieldComponent, applog.ComponentBackend)).CreateBackend(ctx, bc)
	if err != nil {
		return nil, noop, err
	}

	ctx = applog.WithLogger(ctx, logger)
	store, err := services.NewEntryStore(ctx, res.Store, confirm)
	if err != nil {
		if cerr := res.Close(); cerr != nil {
			logger.Warn("Failed to close backend", applog.FieldError, cerr)
		}
		return nil, noop, fmt.Errorf("open %s store: %w", bc.Type, err)
	}

	logger.Debug("Entry store ready", applog.FieldBackend, bc.Type.String())
	return store, res.Close, nil
}
