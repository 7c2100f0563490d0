package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskjournal/internal/adapters/render"
	"taskjournal/internal/application/commands"
	"taskjournal/internal/domain"
	"taskjournal/internal/ports"
)

// ListKeyMap defines key bindings for the task list
type ListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Open     key.Binding
	Filter   key.Binding
	Clear    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var ListKeys = ListKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "prev page"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "info"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear filter"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ListModel shows the stored tasks with an optional fuzzy filter
type ListModel struct {
	ViewState
	store     ports.OperationStore
	tasks     []domain.Task
	shown     []domain.Task
	filter    textinput.Model
	filtering bool
	pager     *Pager
}

// NewListModel creates a new task list model
func NewListModel(store ports.OperationStore) *ListModel {
	input := textinput.New()
	input.Placeholder = "Filter tasks..."

	return &ListModel{
		store:  store,
		filter: input,
		pager:  NewPager(10),
	}
}

// Init loads the tasks
func (m *ListModel) Init() tea.Cmd {
	return m.load
}

// Reload reloads the tasks from the store
func (m *ListModel) Reload() tea.Cmd {
	return m.load
}

func (m *ListModel) load() tea.Msg {
	tasks, err := commands.NewListTasksCommand(m.store, "").Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return tasksLoadedMsg{tasks}
}

// SetSize updates the view dimensions and the page size
func (m *ListModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	// Title, filter, page line and help take about eight lines
	m.pager.SetPageSize(height - 8)
}

// Update handles messages for the task list
func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		m.tasks = msg.tasks
		m.applyFilter()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *ListModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *ListModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, ListKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, ListKeys.Up):
		m.pager.Up()

	case key.Matches(msg, ListKeys.Down):
		m.pager.Down()

	case key.Matches(msg, ListKeys.NextPage):
		m.pager.NextPage()

	case key.Matches(msg, ListKeys.PrevPage):
		m.pager.PrevPage()

	case key.Matches(msg, ListKeys.Filter):
		m.filtering = true
		return m, tea.Batch(m.filter.Focus(), textinput.Blink)

	case key.Matches(msg, ListKeys.Clear):
		m.filter.SetValue("")
		m.applyFilter()

	case key.Matches(msg, ListKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }

	case key.Matches(msg, ListKeys.Open):
		if task, ok := m.Selected(); ok {
			return m, func() tea.Msg { return SwitchToInfoMsg{UUID: task.UUID} }
		}
	}
	return m, nil
}

// applyFilter recomputes the shown tasks; queries shorter than two
// characters show everything
func (m *ListModel) applyFilter() {
	query := m.filter.Value()
	if len(query) < 2 {
		m.shown = m.tasks
	} else {
		results := commands.FuzzySort(m.tasks, query)
		m.shown = make([]domain.Task, 0, len(results))
		for _, r := range results {
			m.shown = append(m.shown, r.Task)
		}
	}
	m.pager.SetTotal(len(m.shown))
}

// Selected returns the task under the cursor
func (m *ListModel) Selected() (domain.Task, bool) {
	cursor := m.pager.Cursor()
	if cursor < 0 || cursor >= len(m.shown) {
		return domain.Task{}, false
	}
	return m.shown[cursor], true
}

// View renders the task list
func (m *ListModel) View() string {
	v := NewViewBuilder().Title("Tasks")

	if m.filtering || m.filter.Value() != "" {
		v.Line(render.InputFocused.Render(m.filter.View()))
	}

	if len(m.shown) == 0 {
		if len(m.tasks) == 0 {
			v.Muted("No tasks yet")
		} else {
			v.Muted("No matches")
		}
	}

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		v.Line(m.renderTask(m.shown[i], i == m.pager.Cursor()))
	}
	if m.pager.TotalPages() > 1 {
		v.Muted(fmt.Sprintf("Page %d/%d", m.pager.CurrentPage(), m.pager.TotalPages()))
	}

	return v.Message(m.Message, m.MessageErr).
		Help(ListKeys.Up, ListKeys.Down, ListKeys.Open, ListKeys.Filter, ListKeys.Help, ListKeys.Quit).
		String()
}

func (m *ListModel) renderTask(task domain.Task, selected bool) string {
	shortID := task.UUID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	if selected {
		return render.Selected.Render(fmt.Sprintf("%s %-9s %s", shortID, task.Status(), task.Description()))
	}
	status := lipgloss.NewStyle().Foreground(render.StatusColor(task.Status())).Render(fmt.Sprintf("%-9s", task.Status()))
	return fmt.Sprintf("%s %s %s", render.MutedText.Render(shortID), status, task.Description())
}
