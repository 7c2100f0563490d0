package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskjournal/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tasks",
	Long: `Search task descriptions, projects and tags.

Results are ranked by relevance using fuzzy matching.

Examples:
  taskjournal-cli search report
  taskjournal-cli search work.docs`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		results, err := commands.NewSearchTasksCommand(GetStore(), query).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No results found")
			return nil
		}

		for _, r := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] %s\n", r.UUID, r.Status(), r.Description())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
