package cmd

import (
	"github.com/spf13/cobra"

	"fsops/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var renameCmd = &cobra.Command{
	Use:   "rename OLD NEW",
	Short: "Rename a file or directory",
	Long:  `Rename OLD to NEW. Nothing happens if an entry already exists at NEW.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runRename,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	renameCommand := commands.NewRenameCommand(app.Operations, app.Logger)

	res, execErr := renameCommand.Execute(commandContext(cmd), commands.RenameRequest{
		OldPath: args[0],
		NewPath: args[1],
	})
	if res.Op == "" {
		return execErr
	}

	if printErr := newPrinter(cmd.OutOrStdout(), outputFormat()).Results(res); printErr != nil {
		return printErr
	}
	return execErr
}
