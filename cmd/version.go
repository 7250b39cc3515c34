package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fsops/internal/config"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fsops build",
	Long:  `Print the release tag of this fsops binary along with the commit and toolchain run it came from.`,
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := GetVersionInfo()
	if outputFormat() == config.OutputYAML {
		return newPrinter(cmd.OutOrStdout(), outputFormat()).yaml(map[string]string{
			"version":  info.Version,
			"commit":   info.Commit,
			"date":     info.Date,
			"built_by": info.BuiltBy,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "fsops %s (%s)\n", info.Version, info.Commit)
	fmt.Fprintf(out, "built %s by %s\n", info.Date, info.BuiltBy)
	return nil
}
