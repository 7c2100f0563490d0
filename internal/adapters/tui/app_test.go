package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskjournal/internal/adapters/sqlite"
	"taskjournal/internal/adapters/tui/views"
	"taskjournal/internal/application/commands"
	"taskjournal/internal/domain"
)

const testUUID = "6f1c3a2e-6b0e-4a8e-9d3e-1b2c3d4e5f60"

func newTestApp(t *testing.T) *App {
	t.Helper()

	store := sqlite.NewStore(nil)
	if err := store.Open(t.TempDir()); err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	create := commands.NewCreateTaskCommand(store, "Write report")
	create.Now = func() time.Time { return time.Unix(1000, 0) }
	create.NewUUID = func() string { return testUUID }
	if _, err := create.Execute(context.Background()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	app := NewApp(store, domain.NewDisplay("Y-M-D H:N:S", time.UTC, nil, nil), nil, true, nil)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	app.Update(app.Init()())
	return app
}

// run feeds msg to the app and then every message its commands produce
func run(app *App, msg tea.Msg) {
	for msg != nil {
		_, cmd := app.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
	}
}

func TestApp_SwitchesViews(t *testing.T) {
	app := newTestApp(t)

	if app.State() != ViewList {
		t.Fatalf("expected list view, got %v", app.State())
	}

	run(app, tea.KeyMsg{Type: tea.KeyEnter})
	if app.State() != ViewInfo {
		t.Fatalf("expected info view, got %v", app.State())
	}
	if !strings.Contains(app.View(), "Description set to 'Write report'.") {
		t.Errorf("expected journal in info view:\n%s", app.View())
	}

	run(app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.State() != ViewList {
		t.Errorf("expected list view after esc, got %v", app.State())
	}

	run(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if app.State() != ViewHelp {
		t.Errorf("expected help view, got %v", app.State())
	}
	if !strings.Contains(app.View(), "copy journal") {
		t.Errorf("expected copy binding in help:\n%s", app.View())
	}

	run(app, views.SwitchToListMsg{})
	if app.State() != ViewList {
		t.Errorf("expected list view, got %v", app.State())
	}
}
