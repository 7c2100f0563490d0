package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskjournal/internal/application/commands"
)

var addCmd = &cobra.Command{
	Use:   "add <description words> [KEY=VALUE...] [+tag...]",
	Short: "Create a new task",
	Long: `Create a new pending task. Free words form the description,
KEY=VALUE pairs set properties and +tag adds a tag.

Examples:
  taskjournal-cli add Write the quarterly report project=work +docs
  taskjournal-cli add Call the dentist due=2024-03-01T09:00`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mods, err := parseModifications(args, display)
		if err != nil {
			return err
		}

		create := commands.NewCreateTaskCommand(GetStore(), mods.Description())
		for prop, value := range mods.Set {
			create.Properties[prop] = value
		}
		create.Tags = mods.AddTags

		task, err := create.Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created task %s.\n", task.UUID)
		return nil
	},
}

func init() {
	addCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(addCmd)
}
