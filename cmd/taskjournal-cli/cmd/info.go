package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"taskjournal/internal/adapters/render"
	"taskjournal/internal/application"
	"taskjournal/internal/application/commands"
)

var infoCmd = &cobra.Command{
	Use:   "info <uuid>...",
	Short: "Show a task's attributes and change journal",
	Long: `Show each task's current attributes followed by its journal: one
entry per second of edits, each listing what changed in plain sentences.

Set TASKJOURNAL_JOURNAL_INFO=false to hide the journal.

Examples:
  taskjournal-cli info 6f1c3a2e-6b0e-4a8e-9d3e-1b2c3d4e5f60`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info := commands.NewInfoCommand(GetStore(), display, logger, cfg.JournalInfo, args...)
		infos, err := info.Execute(cmd.Context())
		if errors.Is(err, application.ErrNoMatches) {
			fmt.Fprintln(cmd.OutOrStdout(), "No matches.")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), render.Infos(infos, display))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
