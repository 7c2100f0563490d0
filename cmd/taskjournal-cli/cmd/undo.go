package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"taskjournal/internal/adapters/render"
	"taskjournal/internal/application/commands"
)

var undoDryRun bool

var undoCmd = &cobra.Command{
	Use:   "undo --dry-run",
	Short: "Preview the operations the next undo would revert",
	Long: `List the operations recorded since the last undo point, which is
what an undo would revert. Only the preview is supported.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !undoDryRun {
			return errors.New("undo: only --dry-run is supported")
		}

		ops, err := commands.NewUndoPreviewCommand(GetStore()).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if len(ops) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No operations to undo.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "The following operations would be reverted:")
		fmt.Fprintln(cmd.OutOrStdout(), render.Operations(ops))
		return nil
	},
}

func init() {
	undoCmd.Flags().BoolVar(&undoDryRun, "dry-run", false, "list the operations without reverting them")
	rootCmd.AddCommand(undoCmd)
}
