package app

import (
	"context"
	"fmt"
	"os"

	"fsops/internal/adapters/filesystem"
	"fsops/internal/adapters/terminal"
	"fsops/internal/filter"
	"fsops/internal/logging"
	"fsops/internal/operations"
)

// NewAppWithConfig creates a new App with the given configuration, wiring all dependencies.
func NewAppWithConfig(ctx context.Context, cfg *Config) (*App, error) {
	// Create logger.
	logger := logging.NewLogger(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cfg.LogOutput,
	})

	// Create filesystem adapter.
	fs := cfg.FileSystem
	if fs == nil {
		fs = filesystem.New()
	}

	// Create confirmer reading from the controlling terminal.
	confirmer := cfg.Confirmer
	if confirmer == nil {
		confirmer = terminal.NewAdapter(os.Stdin, os.Stderr)
	}

	exclude, err := filter.New(cfg.Exclude, logger.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build exclude filter: %w", err)
	}

	ops := operations.NewManager(fs, logger.Logger,
		operations.WithMaxDepth(cfg.MaxDepth),
		operations.WithRateLimit(cfg.RateLimit),
		operations.WithExcludeFilter(exclude),
	)

	logger.DebugContext(ctx, "Initializing fsops",
		"logLevel", string(cfg.LogLevel),
		"verbose", cfg.Verbose,
		"maxDepth", ops.MaxDepth(),
		"rateLimit", cfg.RateLimit,
		"exclude", cfg.Exclude)

	return &App{
		FileSystem: fs,
		Operations: ops,
		Confirmer:  confirmer,
		Logger:     logger.Logger,
		Config:     cfg,
	}, nil
}
