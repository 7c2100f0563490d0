package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskjournal/internal/adapters/render"
	"taskjournal/internal/application/commands"
)

var listStatus string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored tasks",
	Long: `List stored tasks ordered by entry time.

Examples:
  taskjournal-cli list
  taskjournal-cli list --status pending`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := commands.NewListTasksCommand(GetStore(), listStatus).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if len(tasks) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No tasks.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), render.TaskList(tasks))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "only list tasks with this status")
	rootCmd.AddCommand(listCmd)
}
