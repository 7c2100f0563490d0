package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"taskjournal/internal/adapters/editor"
	"taskjournal/internal/adapters/tui/views"
	"taskjournal/internal/domain"
	"taskjournal/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewList ViewState = iota
	ViewInfo
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state ViewState
	list  *views.ListModel
	info  *views.InfoModel
	help  *views.HelpModel
}

// NewApp creates a new TUI application over the operation store. composer
// may be nil to disable editor annotations.
func NewApp(store ports.OperationStore, presenter domain.Presenter, logger *slog.Logger, journalEnabled bool, composer *editor.Composer) *App {
	return &App{
		state: ViewList,
		list:  views.NewListModel(store),
		info:  views.NewInfoModel(store, presenter, logger, journalEnabled, composer),
		help:  views.NewHelpModel(),
	}
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.list.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.list.SetSize(msg.Width, msg.Height)
		a.info.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToInfoMsg:
		a.state = ViewInfo
		return a, a.info.Load(msg.UUID)

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToListMsg:
		a.state = ViewList
		return a, a.list.Reload()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewList:
		_, cmd = a.list.Update(msg)
	case ViewInfo:
		_, cmd = a.info.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewInfo:
		return a.info.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.list.View()
	}
}
