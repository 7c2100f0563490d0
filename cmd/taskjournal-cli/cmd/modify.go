package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskjournal/internal/application/commands"
	"taskjournal/internal/domain"
)

var modifyCmd = &cobra.Command{
	Use:   "modify <uuid> [KEY=VALUE...] [KEY=] [+tag] [-tag] [description words]",
	Short: "Change a task's properties",
	Long: `Change a task's properties in one transaction. KEY= removes a
property, +tag and -tag add and remove tags, and free words replace the
description.

Examples:
  taskjournal-cli modify 6f1c3a2e-6b0e-4a8e-9d3e-1b2c3d4e5f60 priority=H +urgent
  taskjournal-cli modify 6f1c3a2e-6b0e-4a8e-9d3e-1b2c3d4e5f60 due=`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mods, err := parseModifications(args[1:], display)
		if err != nil {
			return err
		}

		modify := commands.NewModifyTaskCommand(GetStore(), args[0])
		for prop, value := range mods.Set {
			modify.Set[prop] = value
		}
		if desc := mods.Description(); desc != "" {
			modify.Set[domain.PropDescription] = desc
		}
		modify.Remove = mods.Remove
		modify.AddTags = mods.AddTags
		modify.RemoveTags = mods.RemoveTags

		task, err := modify.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Modified task %s '%s'.\n", task.UUID, task.Description())
		return nil
	},
}

var annotateCmd = &cobra.Command{
	Use:   "annotate <uuid> <text...>",
	Short: "Attach a timestamped note to a task",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		annotate := commands.NewAnnotateTaskCommand(GetStore(), args[0], strings.Join(args[1:], " "))
		task, err := annotate.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Annotated task %s '%s'.\n", task.UUID, task.Description())
		return nil
	},
}

func init() {
	// -tag after the uuid is a modification, not a flag
	modifyCmd.Flags().SetInterspersed(false)
	annotateCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(modifyCmd)
	rootCmd.AddCommand(annotateCmd)
}
