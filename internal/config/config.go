// Package config loads fsops settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	fserrors "fsops/internal/errors"
	"fsops/internal/logging"
	"fsops/internal/operations"
)

const (
	// EnvPrefix is prepended to every environment override, e.g. FSOPS_MAX_DEPTH.
	EnvPrefix = "FSOPS"

	OutputText = "text"
	OutputYAML = "yaml"
)

// Keys used in the config file and for flag binding.
const (
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyOutput    = "output"
	KeyMaxDepth  = "max_depth"
	KeyRateLimit = "rate_limit"
	KeyAssumeYes = "assume_yes"
	KeyExclude   = "exclude"
)

// Settings holds the resolved fsops configuration.
type Settings struct {
	LogLevel  string   `mapstructure:"log_level"`
	LogFormat string   `mapstructure:"log_format"`
	Output    string   `mapstructure:"output"`
	MaxDepth  int      `mapstructure:"max_depth"`
	RateLimit float64  `mapstructure:"rate_limit"`
	AssumeYes bool     `mapstructure:"assume_yes"`
	// Exclude holds regex patterns for entry names a directory copy skips.
	Exclude   []string `mapstructure:"exclude"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, string(logging.LevelWarn))
	v.SetDefault(KeyLogFormat, logging.FormatText)
	v.SetDefault(KeyOutput, OutputText)
	v.SetDefault(KeyMaxDepth, operations.DefaultMaxDepth)
	v.SetDefault(KeyRateLimit, 0)
	v.SetDefault(KeyAssumeYes, false)
	v.SetDefault(KeyExclude, []string{})
}

// DefaultConfigDir returns the directory searched for config.yaml.
func DefaultConfigDir(home string) string {
	return filepath.Join(home, ".config", "fsops")
}

// Configure points v at cfgFile, or at config.yaml in the default
// directory below home, and enables FSOPS_* environment overrides.
func Configure(v *viper.Viper, cfgFile, home string) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(DefaultConfigDir(home))
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
}

// ReadConfig reads the configured file. A missing default file is not an
// error; an explicitly named file that cannot be read is.
func ReadConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fserrors.NewConfigurationError("config_file", v.ConfigFileUsed(), "failed to read config file", err)
	}
	return nil
}

// Load unmarshals and validates the settings held by v.
func Load(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fserrors.NewConfigurationError("", "", "failed to decode settings", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every setting holds a supported value.
func (s *Settings) Validate() error {
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return fserrors.NewConfigurationError(KeyLogLevel, s.LogLevel, "unsupported log level", err)
	}

	switch s.LogFormat {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fserrors.NewConfigurationError(KeyLogFormat, s.LogFormat,
			fmt.Sprintf("log format must be %q or %q", logging.FormatText, logging.FormatJSON), nil)
	}

	switch s.Output {
	case OutputText, OutputYAML:
	default:
		return fserrors.NewConfigurationError(KeyOutput, s.Output,
			fmt.Sprintf("output must be %q or %q", OutputText, OutputYAML), nil)
	}

	if s.MaxDepth <= 0 {
		return fserrors.NewConfigurationError(KeyMaxDepth, fmt.Sprint(s.MaxDepth), "max depth must be positive", nil)
	}

	if s.RateLimit < 0 {
		return fserrors.NewConfigurationError(KeyRateLimit, fmt.Sprint(s.RateLimit), "rate limit cannot be negative", nil)
	}

	for _, pattern := range s.Exclude {
		if _, err := regexp.Compile(pattern); err != nil {
			return fserrors.NewConfigurationError(KeyExclude, pattern, "invalid exclude pattern", err)
		}
	}

	return nil
}

// Level returns the parsed log level. Call Validate first.
func (s *Settings) Level() logging.LogLevel {
	level, err := logging.ParseLevel(s.LogLevel)
	if err != nil {
		return logging.LevelInfo
	}
	return level
}
