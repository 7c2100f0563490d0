package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"taskjournal/internal/application"
	"taskjournal/internal/domain"
)

// Date attributes shown in the attribute table, in display order
var dateRows = []struct{ prop, label string }{
	{domain.PropEntry, "Entered"},
	{"wait", "Waiting until"},
	{"scheduled", "Scheduled"},
	{domain.PropStart, "Start"},
	{"due", "Due"},
	{"until", "Until"},
	{domain.PropEnd, "End"},
	{domain.PropModified, "Last modified"},
}

// Properties with a dedicated row, excluded from the trailing attribute rows
var dedicatedRows = map[string]bool{
	domain.PropDescription: true,
	domain.PropStatus:      true,
	domain.PropProject:     true,
	domain.PropTags:        true,
	domain.PropDepends:     true,
}

func init() {
	for _, r := range dateRows {
		dedicatedRows[r.prop] = true
	}
}

// Infos renders every task's info block separated by a blank line
func Infos(infos []application.TaskInfo, p domain.Presenter) string {
	blocks := make([]string, 0, len(infos))
	for _, info := range infos {
		blocks = append(blocks, Info(info, p))
	}
	return strings.Join(blocks, "\n\n")
}

// Info renders a task's attribute table followed by its journal
func Info(info application.TaskInfo, p domain.Presenter) string {
	var b strings.Builder
	b.WriteString(Attributes(info.Task, p))

	switch {
	case info.JournalErr != nil:
		b.WriteString("\n")
		b.WriteString(MutedText.Render("Journal unavailable: " + info.JournalErr.Error()))
	case len(info.Journal) > 0:
		b.WriteString("\n")
		b.WriteString(Journal(info.Journal))
	}
	return b.String()
}

// Attributes renders a task's current properties as a Name/Value table
func Attributes(task domain.Task, p domain.Presenter) string {
	rows := [][]string{
		{"UUID", task.UUID},
		{"Description", describe(task, p)},
		{"Status", lipgloss.NewStyle().Foreground(StatusColor(task.Status())).Render(domain.Capitalize(task.Status()))},
	}
	if project, ok := task.Get(domain.PropProject); ok {
		rows = append(rows, []string{"Project", project})
	}
	for _, r := range dateRows {
		if v, ok := task.Get(r.prop); ok {
			rows = append(rows, []string{r.label, p.RenderAttribute(r.prop, v)})
		}
	}
	if tags := task.Tags(); len(tags) > 0 {
		rows = append(rows, []string{"Tags", strings.Join(tags, " ")})
	}
	if deps := task.Dependencies(); len(deps) > 0 {
		rows = append(rows, []string{"Depends on", strings.Join(deps, "\n")})
	}
	for _, prop := range task.ScalarProperties() {
		if dedicatedRows[prop] {
			continue
		}
		rows = append(rows, []string{prop, p.RenderAttribute(prop, task.Properties[prop])})
	}

	return newTable("Name", "Value").Rows(rows...).String()
}

// Journal renders journal entries as a Date/Modification table
func Journal(entries []domain.Entry) string {
	t := newTable("Date", "Modification")
	for _, e := range entries {
		t.Row(e.When, e.Text)
	}
	return t.String()
}

// JournalText renders journal entries as plain text, continuation lines
// indented under their sentence column
func JournalText(entries []domain.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		indent := strings.Repeat(" ", len(e.When)+2)
		for i, line := range strings.Split(e.Text, "\n") {
			if i == 0 {
				fmt.Fprintf(&b, "%s  %s\n", e.When, line)
			} else {
				fmt.Fprintf(&b, "%s%s\n", indent, line)
			}
		}
	}
	return b.String()
}

// TaskList renders tasks as a UUID/Status/Description table
func TaskList(tasks []domain.Task) string {
	t := newTable("UUID", "Status", "Description")
	for _, task := range tasks {
		t.Row(task.UUID, task.Status(), task.Description())
	}
	return t.String()
}

// Operations renders raw operations, as listed by an undo preview
func Operations(ops []domain.Operation) string {
	t := newTable("Kind", "UUID", "Property", "Old value", "New value")
	for _, op := range ops {
		t.Row(op.Kind.String(), op.UUID, op.Property, optional(op.OldValue), optional(op.Value))
	}
	return t.String()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(Border).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return Header
			case col == 0:
				return Label
			default:
				return Cell
			}
		})
}

// describe renders the description with its annotations beneath it
func describe(task domain.Task, p domain.Presenter) string {
	lines := []string{task.Description()}
	for _, a := range task.Annotations() {
		lines = append(lines, fmt.Sprintf("  %s %s", p.FormatTimestamp(a.Entry), a.Description))
	}
	return strings.Join(lines, "\n")
}

func optional(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}
