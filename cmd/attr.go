package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fsops/internal/commands"
	"fsops/internal/config"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var attrCmd = &cobra.Command{
	Use:   "attr NAME [VALUE]",
	Short: "Build and print a name/value attribute",
	Long: `Build an attribute from NAME and VALUE and print it. An attribute with an
empty name never carries a value.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAttr,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(attrCmd)
}

func runAttr(cmd *cobra.Command, args []string) error {
	req := commands.AttributeRequest{Name: args[0]}
	if len(args) == 2 {
		req.Value = args[1]
	}

	attr := commands.BuildAttribute(req)

	p := newPrinter(cmd.OutOrStdout(), outputFormat())
	if p.format == config.OutputYAML {
		return p.yaml(attr)
	}

	fmt.Fprintln(cmd.OutOrStdout(), attr.String())
	return nil
}
