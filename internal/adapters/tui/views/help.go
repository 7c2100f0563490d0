package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskjournal/internal/adapters/render"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, HelpKeys.Close) {
		return m, func() tea.Msg { return SwitchToListMsg{} }
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(render.Title.Render("Task Journal Help"))
	b.WriteString("\n\n")

	b.WriteString(render.Label.Render("Task list"))
	b.WriteString("\n")
	for _, k := range []key.Binding{ListKeys.Up, ListKeys.Down, ListKeys.NextPage, ListKeys.PrevPage, ListKeys.Open, ListKeys.Filter, ListKeys.Clear} {
		b.WriteString(helpLine(k))
	}
	b.WriteString("\n")

	b.WriteString(render.Label.Render("Task info"))
	b.WriteString("\n")
	for _, k := range []key.Binding{InfoKeys.Up, InfoKeys.Down, InfoKeys.Copy, InfoKeys.Annotate, InfoKeys.Back} {
		b.WriteString(helpLine(k))
	}
	b.WriteString("\n")

	b.WriteString(render.Label.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine(ListKeys.Help))
	b.WriteString(helpLine(ListKeys.Quit))
	b.WriteString("\n")

	b.WriteString(render.MutedText.Render("The journal lists every recorded change, one entry per second of edits."))
	b.WriteString("\n\n")
	b.WriteString(RenderHelpLine(HelpKeys.Close))

	return render.App.Render(b.String())
}

func helpLine(k key.Binding) string {
	help := k.Help()
	return "  " + render.HelpKey.Render(padRight(help.Key, 12)) + render.HelpDesc.Render(help.Desc) + "\n"
}

func padRight(s string, length int) string {
	if w := lipgloss.Width(s); w < length {
		return s + strings.Repeat(" ", length-w)
	}
	return s
}
