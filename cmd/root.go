package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fsops/internal/app"
	"fsops/internal/config"
	"fsops/internal/operations"
)

//nolint:gochecknoglobals // Cobra CLI pattern for persistent flag variables
var (
	cfgFile string
	verbose bool

	application *app.App
	settings    *config.Settings
)

// VersionInfo holds build information.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// GetApp returns the initialized application instance.
func GetApp() *app.App {
	return application
}

// GetSettings returns the settings resolved from file, environment and flags.
func GetSettings() *config.Settings {
	return settings
}

//nolint:gochecknoglobals // Cobra CLI pattern for root command
var rootCmd = &cobra.Command{
	Use:   "fsops",
	Short: "Copy, move, delete, create and rename files and directory trees",
	Long: `fsops runs one-shot file system operations on a single entry or a
whole directory tree. Every command prints its result and exits non-zero
when the operation failed.`,
	SilenceUsage: true,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra CLI pattern for flag initialization
func init() {
	// Assigned here rather than in the literal to avoid an initialization
	// cycle (initConfig refers to rootCmd).
	rootCmd.PersistentPreRunE = initConfig

	// Global flags
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/fsops/config.yaml)")
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().
		StringP("output", "o", config.OutputText, "Output format (text or yaml)")
	rootCmd.PersistentFlags().
		Int("max-depth", operations.DefaultMaxDepth, "Maximum directory depth for copy and delete")
	rootCmd.PersistentFlags().
		Float64("rate", 0, "Maximum file system mutations per second (0 for unlimited)")
}

func initConfig(cmd *cobra.Command, _ []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to locate home directory: %w", err)
	}

	v := viper.New()
	config.Configure(v, cfgFile, home)

	flags := rootCmd.PersistentFlags()
	bindings := map[string]string{
		config.KeyOutput:    "output",
		config.KeyMaxDepth:  "max-depth",
		config.KeyRateLimit: "rate",
	}
	for key, flag := range bindings {
		if bindErr := v.BindPFlag(key, flags.Lookup(flag)); bindErr != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, bindErr)
		}
	}
	if bindErr := v.BindPFlag(config.KeyExclude, copyCmd.Flags().Lookup("exclude")); bindErr != nil {
		return fmt.Errorf("failed to bind flag exclude: %w", bindErr)
	}

	if readErr := config.ReadConfig(v); readErr != nil {
		return readErr
	}

	settings, err = config.Load(v)
	if err != nil {
		return err
	}

	// Initialize the application with dependency injection
	opts := []app.Option{app.WithSettings(settings)}
	if verbose {
		opts = append(opts, app.WithVerbose(true))
	}

	application, err = app.NewApp(commandContext(cmd), opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return nil
}

// commandContext returns the command context, or a background one when
// the command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func requireApp() (*app.App, error) {
	a := GetApp()
	if a == nil {
		return nil, errors.New("application not initialized")
	}
	return a, nil
}
