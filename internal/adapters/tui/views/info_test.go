package views

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskjournal/internal/adapters/editor"
	"taskjournal/internal/domain"
)

func loadedInfo(t *testing.T, uuid string) *InfoModel {
	t.Helper()

	display := domain.NewDisplay("Y-M-D H:N:S", time.UTC, nil, nil)
	m := NewInfoModel(newTestStore(t), display, nil, true, editor.NewComposer())
	m.SetSize(120, 40)
	m.Update(m.Load(uuid)())
	return m
}

func TestInfoModel_Load(t *testing.T) {
	m := loadedInfo(t, reportUUID)

	if m.info == nil {
		t.Fatal("expected task info loaded")
	}
	view := m.View()
	for _, want := range []string{"Write report", "Description set to 'Write report'.", "copy journal"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestInfoModel_LoadUnknownTask(t *testing.T) {
	m := loadedInfo(t, "11111111-2222-4333-8444-555555555555")

	if m.info != nil {
		t.Error("expected no task info")
	}
	if !m.MessageErr || !strings.Contains(m.Message, "no matches") {
		t.Errorf("expected no matches error, got %q", m.Message)
	}
}

func TestInfoModel_CopyJournal(t *testing.T) {
	tests := []struct {
		name      string
		copyErr   error
		wantErr   bool
		wantWrite bool
	}{
		{"copied", nil, false, true},
		{"clipboard unavailable", errors.New("no clipboard"), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loadedInfo(t, reportUUID)

			var copied string
			m.copyText = func(s string) error {
				copied = s
				return tt.copyErr
			}

			m.Update(keyRunes("y"))

			if m.MessageErr != tt.wantErr {
				t.Errorf("MessageErr = %v, want %v (%q)", m.MessageErr, tt.wantErr, m.Message)
			}
			if tt.wantWrite && !strings.Contains(copied, "1970-01-01 00:16:40  Description set to 'Write report'.") {
				t.Errorf("unexpected clipboard text %q", copied)
			}
		})
	}
}

func TestInfoModel_CopyWithoutJournal(t *testing.T) {
	m := NewInfoModel(nil, domain.NewDisplay("", time.UTC, nil, nil), nil, true, nil)
	m.copyText = func(string) error {
		t.Error("clipboard should not be written")
		return nil
	}

	m.Update(keyRunes("y"))
	if !m.MessageErr {
		t.Error("expected nothing-to-copy message")
	}
}

func TestInfoModel_Back(t *testing.T) {
	m := loadedInfo(t, reportUUID)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(SwitchToListMsg); !ok {
		t.Error("expected SwitchToListMsg")
	}
}

func writeDraft(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "draft.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInfoModel_FinishAnnotation(t *testing.T) {
	m := loadedInfo(t, reportUUID)

	_, cmd := m.Update(draftDoneMsg{uuid: reportUUID, path: writeDraft(t, "called the client\n# hint\n")})
	if cmd == nil {
		t.Fatal("expected reload command")
	}
	m.Update(cmd())

	annos := m.info.Task.Annotations()
	if len(annos) != 1 || annos[0].Description != "called the client" {
		t.Errorf("unexpected annotations %+v", annos)
	}
}

func TestInfoModel_CancelledAnnotation(t *testing.T) {
	m := loadedInfo(t, reportUUID)

	_, cmd := m.Update(draftDoneMsg{uuid: reportUUID, path: writeDraft(t, "# only comments\n")})
	if cmd != nil {
		t.Error("expected no reload for an empty draft")
	}
	if m.Message != "Annotation cancelled" || m.MessageErr {
		t.Errorf("unexpected message %q", m.Message)
	}
}

func TestInfoModel_AnnotateDisabledWithoutComposer(t *testing.T) {
	m := NewInfoModel(nil, domain.NewDisplay("", time.UTC, nil, nil), nil, true, nil)

	if _, cmd := m.Update(keyRunes("a")); cmd != nil {
		t.Error("expected annotate to do nothing without a composer")
	}
	if strings.Contains(m.View(), "annotate") {
		t.Errorf("expected annotate binding hidden:\n%s", m.View())
	}
}
