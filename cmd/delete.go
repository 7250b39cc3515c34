package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"fsops/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var deleteCmd = &cobra.Command{
	Use:   "delete PATH...",
	Short: "Delete files or directory trees",
	Long: `Delete each PATH. Directories are removed together with everything below them.
When stdin is a terminal you are asked to confirm unless --yes is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDelete,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	deleteCmd.Flags().Bool("dir", false, "Only delete directories")
}

func runDelete(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	assumeYes, _ := cmd.Flags().GetBool("yes")
	dirOnly, _ := cmd.Flags().GetBool("dir")
	if s := GetSettings(); s != nil && s.AssumeYes {
		assumeYes = true
	}

	deleteCommand := commands.NewDeleteCommand(app.Operations, app.Confirmer, app.Logger)

	results, execErr := deleteCommand.Execute(commandContext(cmd), commands.DeleteRequest{
		Paths:         args,
		AssumeYes:     assumeYes,
		DirectoryOnly: dirOnly,
	})
	if errors.Is(execErr, commands.ErrDeclined) {
		cmd.PrintErrln("Aborted.")
		return nil
	}
	if len(results) == 0 {
		return execErr
	}

	if printErr := newPrinter(cmd.OutOrStdout(), outputFormat()).Results(results...); printErr != nil {
		return printErr
	}
	return execErr
}
