package cmd

import (
	"github.com/spf13/cobra"

	"fsops/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var copyCmd = &cobra.Command{
	Use:   "copy SOURCE TARGET",
	Short: "Copy a file or directory tree",
	Long: `Copy a file, or a directory and everything below it, to TARGET.
An existing target file is overwritten. Missing target directories are created.
Entries whose name matches an --exclude pattern are skipped.`,
	Args: cobra.ExactArgs(2),
	RunE: runCopy,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var moveCmd = &cobra.Command{
	Use:   "move SOURCE TARGET",
	Short: "Move a file or directory tree",
	Long: `Copy SOURCE to TARGET and then delete SOURCE. The move succeeds when the
copy succeeds; if SOURCE cannot be removed afterwards a warning is printed.`,
	Args: cobra.ExactArgs(2),
	RunE: runMove,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(moveCmd)

	copyCmd.Flags().StringSlice("exclude", nil, "Regex for entry names to skip when copying a directory (repeatable)")
}

func runCopy(cmd *cobra.Command, args []string) error {
	return runTransfer(cmd, args, false)
}

func runMove(cmd *cobra.Command, args []string) error {
	return runTransfer(cmd, args, true)
}

func runTransfer(cmd *cobra.Command, args []string, move bool) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	transferCommand := commands.NewTransferCommand(app.Operations, app.Logger)

	res, execErr := transferCommand.Execute(commandContext(cmd), commands.TransferRequest{
		Source: args[0],
		Target: args[1],
		Move:   move,
	})
	if res.Op == "" {
		return execErr
	}

	if printErr := newPrinter(cmd.OutOrStdout(), outputFormat()).Results(res); printErr != nil {
		return printErr
	}
	return execErr
}
