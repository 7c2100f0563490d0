package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"taskjournal/internal/adapters/sqlite"
	"taskjournal/internal/config"
	"taskjournal/internal/domain"
	"taskjournal/internal/ports"
)

var (
	dataPath string
	cfg      *config.Config
	logger   *slog.Logger
	store    *sqlite.Store
	display  *domain.Display
)

var rootCmd = &cobra.Command{
	Use:   "taskjournal-cli",
	Short: "Task list with a readable change journal",
	Long: `taskjournal-cli records tasks as a log of operations and renders each
task's history as a journal of plain sentences.

Settings are read from TASKJOURNAL_* environment variables; see
TASKJOURNAL_DATEFORMAT_INFO, TASKJOURNAL_JOURNAL_INFO and
TASKJOURNAL_DURATION_ATTRS.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		logger = cfg.NewLogger()

		store = sqlite.NewStore(logger)
		if err := store.Open(dataPath); err != nil {
			return err
		}
		display = cfg.InfoDisplay(time.Local)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store == nil {
			return nil
		}
		return store.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", config.DataPath(), "path to the task store directory")
}

// GetStore returns the opened operation store
func GetStore() ports.OperationStore {
	return store
}
