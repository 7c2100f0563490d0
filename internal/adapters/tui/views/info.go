package views

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"taskjournal/internal/adapters/editor"
	"taskjournal/internal/adapters/render"
	"taskjournal/internal/application"
	"taskjournal/internal/application/commands"
	"taskjournal/internal/domain"
	"taskjournal/internal/ports"
)

// InfoKeyMap defines key bindings for the info view
type InfoKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Copy     key.Binding
	Annotate key.Binding
	Back     key.Binding
	Quit     key.Binding
}

var InfoKeys = InfoKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll down"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy journal"),
	),
	Annotate: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "annotate"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// InfoModel shows one task's attributes and journal in a scrollable viewport
type InfoModel struct {
	ViewState
	store          ports.OperationStore
	presenter      domain.Presenter
	logger         *slog.Logger
	journalEnabled bool

	viewport viewport.Model
	info     *application.TaskInfo

	// composer is nil when annotating through an editor is disabled
	composer *editor.Composer

	// copyText writes to the system clipboard
	copyText func(string) error
}

// NewInfoModel creates a new info view model
func NewInfoModel(store ports.OperationStore, presenter domain.Presenter, logger *slog.Logger, journalEnabled bool, composer *editor.Composer) *InfoModel {
	return &InfoModel{
		store:          store,
		presenter:      presenter,
		logger:         logger,
		journalEnabled: journalEnabled,
		viewport:       viewport.New(80, 20),
		composer:       composer,
		copyText:       clipboard.WriteAll,
	}
}

type infoLoadedMsg struct {
	info application.TaskInfo
}

type draftDoneMsg struct {
	uuid string
	path string
	err  error
}

// Load returns a command that loads the task with the given UUID
func (m *InfoModel) Load(uuid string) tea.Cmd {
	m.info = nil
	m.SetMessage("", false)
	m.viewport.SetContent("Loading...")

	return func() tea.Msg {
		infos, err := commands.NewInfoCommand(m.store, m.presenter, m.logger, m.journalEnabled, uuid).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return infoLoadedMsg{infos[0]}
	}
}

// SetSize updates the view dimensions and the viewport
func (m *InfoModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	// Padding, title and help line take about seven lines
	m.viewport.Width = max(width-4, 20)
	m.viewport.Height = max(height-7, 5)
}

// Init initializes the info view
func (m *InfoModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the info view
func (m *InfoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case infoLoadedMsg:
		m.info = &msg.info
		m.viewport.SetContent(render.Info(msg.info, m.presenter))
		m.viewport.GotoTop()
		return m, nil

	case errMsg:
		m.viewport.SetContent("")
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case draftDoneMsg:
		return m, m.finishAnnotation(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, InfoKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, InfoKeys.Back):
			return m, func() tea.Msg { return SwitchToListMsg{} }

		case key.Matches(msg, InfoKeys.Copy):
			m.copyJournal()
			return m, nil

		case key.Matches(msg, InfoKeys.Annotate):
			return m, m.startAnnotation()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *InfoModel) copyJournal() {
	if m.info == nil || len(m.info.Journal) == 0 {
		m.SetMessage("Nothing to copy", true)
		return
	}
	if err := m.copyText(render.JournalText(m.info.Journal)); err != nil {
		m.SetMessage("Copy failed: "+err.Error(), true)
		return
	}
	m.SetMessage("Journal copied to clipboard", false)
}

// startAnnotation opens a draft in the editor; the result arrives as a
// draftDoneMsg once the editor exits
func (m *InfoModel) startAnnotation() tea.Cmd {
	if m.composer == nil || m.info == nil {
		return nil
	}
	uuid := m.info.Task.UUID

	path, err := editor.NewDraft(fmt.Sprintf("Annotation for '%s'", m.info.Task.Description()))
	if err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}
	cmd, err := m.composer.Command(path)
	if err != nil {
		os.Remove(path)
		m.SetMessage(err.Error(), true)
		return nil
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return draftDoneMsg{uuid: uuid, path: path, err: err}
	})
}

func (m *InfoModel) finishAnnotation(msg draftDoneMsg) tea.Cmd {
	text, err := editor.ReadDraft(msg.path)
	if msg.err != nil {
		err = msg.err
	}
	if err != nil {
		m.SetMessage("Annotation failed: "+err.Error(), true)
		return nil
	}
	if text == "" {
		m.SetMessage("Annotation cancelled", false)
		return nil
	}

	annotate := commands.NewAnnotateTaskCommand(m.store, msg.uuid, text)
	if _, err := annotate.Execute(context.Background()); err != nil {
		m.SetMessage("Annotation failed: "+err.Error(), true)
		return nil
	}
	return m.Load(msg.uuid)
}

// View renders the info view
func (m *InfoModel) View() string {
	title := "Task"
	if m.info != nil {
		title = m.info.Task.Description()
	}

	return NewViewBuilder().
		Title(title).
		Line(m.viewport.View()).
		Message(m.Message, m.MessageErr).
		Help(m.helpKeys()...).
		String()
}

func (m *InfoModel) helpKeys() []key.Binding {
	if m.composer == nil {
		return []key.Binding{InfoKeys.Up, InfoKeys.Down, InfoKeys.Copy, InfoKeys.Back, InfoKeys.Quit}
	}
	return []key.Binding{InfoKeys.Up, InfoKeys.Down, InfoKeys.Copy, InfoKeys.Annotate, InfoKeys.Back, InfoKeys.Quit}
}
