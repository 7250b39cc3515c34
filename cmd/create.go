package cmd

import (
	"github.com/spf13/cobra"

	"fsops/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var touchCmd = &cobra.Command{
	Use:   "touch NAME PARENT",
	Short: "Create an empty file",
	Long:  `Create an empty file called NAME inside the existing directory PARENT.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runTouch,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var mkdirCmd = &cobra.Command{
	Use:   "mkdir NAME PARENT",
	Short: "Create a directory",
	Long:  `Create a directory called NAME inside the existing directory PARENT.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runMkdir,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(touchCmd)
	rootCmd.AddCommand(mkdirCmd)
}

func runTouch(cmd *cobra.Command, args []string) error {
	return runCreate(cmd, args, false)
}

func runMkdir(cmd *cobra.Command, args []string) error {
	return runCreate(cmd, args, true)
}

func runCreate(cmd *cobra.Command, args []string, directory bool) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	createCommand := commands.NewCreateCommand(app.Operations, app.Logger)

	res, execErr := createCommand.Execute(commandContext(cmd), commands.CreateRequest{
		Name:      args[0],
		Parent:    args[1],
		Directory: directory,
	})

	if printErr := newPrinter(cmd.OutOrStdout(), outputFormat()).Results(res); printErr != nil {
		return printErr
	}
	return execErr
}
