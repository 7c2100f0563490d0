package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskjournal/internal/adapters/editor"
	"taskjournal/internal/adapters/sqlite"
	"taskjournal/internal/adapters/tui"
	"taskjournal/internal/config"
)

func main() {
	dataFlag := flag.String("data", config.DataPath(), "path to the task store directory")
	flag.Parse()

	if err := run(*dataFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(dataPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := cfg.NewLogger()

	store := sqlite.NewStore(logger)
	if err := store.Open(dataPath); err != nil {
		return err
	}
	defer store.Close()

	app := tui.NewApp(store, cfg.InfoDisplay(time.Local), logger, cfg.JournalInfo, editor.NewComposer())
	p := tea.NewProgram(app, tea.WithAltScreen())

	_, err = p.Run()
	return err
}
