package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskjournal/internal/application/commands"
	"taskjournal/internal/ports"
)

var doneEnd string

var startCmd = &cobra.Command{
	Use:   "start <uuid>",
	Short: "Start working on a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTransition("Started", commands.NewStartTaskCommand),
}

var stopCmd = &cobra.Command{
	Use:   "stop <uuid>",
	Short: "Stop a started task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTransition("Stopped", commands.NewStopTaskCommand),
}

var doneCmd = &cobra.Command{
	Use:   "done <uuid>",
	Short: "Mark a task completed",
	Long: `Mark a task completed. A started task is stopped in the same
transaction; the journal measures its duration against the end time.

Examples:
  taskjournal-cli done 6f1c3a2e-6b0e-4a8e-9d3e-1b2c3d4e5f60
  taskjournal-cli done 6f1c3a2e-6b0e-4a8e-9d3e-1b2c3d4e5f60 --end 2024-03-01T17:30`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var end *time.Time
		if doneEnd != "" {
			epoch, err := display.ParseDate(doneEnd)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}
			t := time.Unix(epoch, 0)
			end = &t
		}
		return runTransition("Completed", func(store ports.OperationStore, uuid string) *commands.ModifyTaskCommand {
			return commands.NewDoneTaskCommand(store, uuid, end)
		})(cmd, args)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <uuid>",
	Short: "Mark a task deleted",
	Args:  cobra.ExactArgs(1),
	RunE:  runTransition("Deleted", commands.NewDeleteTaskCommand),
}

func runTransition(verb string, newCommand func(ports.OperationStore, string) *commands.ModifyTaskCommand) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		task, err := newCommand(GetStore(), args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s task %s '%s'.\n", verb, task.UUID, task.Description())
		return nil
	}
}

func init() {
	doneCmd.Flags().StringVar(&doneEnd, "end", "", "completion time (defaults to now)")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(deleteCmd)
}
