package app

import (
	"context"
	"io"
	"log/slog"

	"fsops/internal/config"
	"fsops/internal/domain"
	"fsops/internal/logging"
	"fsops/internal/operations"
)

// App contains all application dependencies.
type App struct {
	// File operations
	FileSystem domain.FileSystemAdapter
	Operations domain.Operations

	// I/O dependencies
	Confirmer domain.Confirmer

	// Logging
	Logger *slog.Logger

	// Configuration
	Config *Config
}

// Config holds application configuration.
type Config struct {
	LogLevel  logging.LogLevel
	LogFormat string
	Verbose   bool
	MaxDepth  int
	RateLimit float64
	Exclude   []string

	// Overrides used mainly by tests. Nil means the OS default.
	FileSystem domain.FileSystemAdapter
	Confirmer  domain.Confirmer
	LogOutput  io.Writer
}

// Option is a functional option for configuring the App.
type Option func(*Config)

// WithLogLevel sets the logging level.
func WithLogLevel(level logging.LogLevel) Option {
	return func(cfg *Config) {
		cfg.LogLevel = level
	}
}

// WithVerbose enables verbose logging.
func WithVerbose(verbose bool) Option {
	return func(cfg *Config) {
		cfg.Verbose = verbose
		if verbose {
			cfg.LogLevel = logging.LevelDebug
		}
	}
}

// WithSettings applies loaded settings. Apply it before WithVerbose so
// the flag wins over the config file.
func WithSettings(s *config.Settings) Option {
	return func(cfg *Config) {
		if s == nil {
			return
		}
		cfg.LogLevel = s.Level()
		cfg.LogFormat = s.LogFormat
		cfg.MaxDepth = s.MaxDepth
		cfg.RateLimit = s.RateLimit
		cfg.Exclude = s.Exclude
	}
}

// WithFileSystem replaces the OS file system adapter.
func WithFileSystem(fs domain.FileSystemAdapter) Option {
	return func(cfg *Config) {
		cfg.FileSystem = fs
	}
}

// WithConfirmer replaces the terminal confirmer.
func WithConfirmer(c domain.Confirmer) Option {
	return func(cfg *Config) {
		cfg.Confirmer = c
	}
}

// WithLogOutput redirects log records, stderr by default.
func WithLogOutput(w io.Writer) Option {
	return func(cfg *Config) {
		cfg.LogOutput = w
	}
}

// NewApp creates a new App with the given options.
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &Config{
		LogLevel:  logging.LevelWarn,
		LogFormat: logging.FormatText,
		MaxDepth:  operations.DefaultMaxDepth,
	}

	// Apply options.
	for _, opt := range opts {
		opt(cfg)
	}

	return NewAppWithConfig(ctx, cfg)
}
