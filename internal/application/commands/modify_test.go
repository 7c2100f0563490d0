package commands

import (
	"context"
	"errors"
	"testing"

	"taskjournal/internal/application"
	"taskjournal/internal/domain"
)

func TestModifyTaskCommand_BuildsUpdates(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	createTestTask(t, store)
	before := len(store.log)

	modify := NewModifyTaskCommand(store, testUUID)
	modify.Set["priority"] = "M"
	modify.Set["project"] = "work.docs"
	modify.RemoveTags = []string{"work"}
	modify.AddTags = []string{"urgent"}
	modify.Now = clockAt(3000)

	task, err := modify.Execute(ctx)
	if err != nil {
		t.Fatalf("modify failed: %v", err)
	}

	if v, _ := task.Get("priority"); v != "M" {
		t.Errorf("expected priority M, got %q", v)
	}
	if _, ok := task.Get("tag_work"); ok {
		t.Errorf("expected tag work removed")
	}

	committed := store.log[before:]
	if committed[0].Kind != domain.OpUndoPoint {
		t.Fatalf("expected transaction to start with an undo point")
	}

	var priority *domain.Operation
	for i := range committed {
		if committed[i].Property == "priority" {
			priority = &committed[i]
		}
		if committed[i].Kind == domain.OpUpdate && committed[i].Timestamp != 3000 {
			t.Errorf("update %s has timestamp %d", committed[i].Property, committed[i].Timestamp)
		}
	}
	if priority == nil || *priority.OldValue != "H" || *priority.Value != "M" {
		t.Errorf("expected priority change H -> M, got %+v", priority)
	}
}

func TestModifyTaskCommand_NoChanges(t *testing.T) {
	store := newFakeStore()
	createTestTask(t, store)
	before := len(store.log)

	modify := NewModifyTaskCommand(store, testUUID)
	modify.Set["priority"] = "H"
	modify.Remove = []string{"due"}

	if _, err := modify.Execute(context.Background()); err != nil {
		t.Fatalf("modify failed: %v", err)
	}
	if len(store.log) != before {
		t.Errorf("expected no operations committed, got %d", len(store.log)-before)
	}
}

func TestModifyTaskCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		uuid    string
		set     map[string]string
		remove  []string
		wantErr bool
	}{
		{"valid", testUUID, map[string]string{"priority": "H"}, nil, false},
		{"bad uuid", "abc", nil, nil, true},
		{"reserved property", testUUID, map[string]string{"modified": "1"}, nil, true},
		{"legacy tags property", testUUID, nil, []string{"tags"}, true},
		{"annotation allowed", testUUID, map[string]string{"annotation_5": "note"}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewModifyTaskCommand(nil, tt.uuid)
			for k, v := range tt.set {
				cmd.Set[k] = v
			}
			cmd.Remove = tt.remove

			err := cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStartStopTaskCommands(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	createTestTask(t, store)

	stop := NewStopTaskCommand(store, testUUID)
	if _, err := stop.Execute(ctx); !errors.Is(err, application.ErrInvalidOperation) {
		t.Fatalf("expected stop of unstarted task to fail, got %v", err)
	}

	start := NewStartTaskCommand(store, testUUID)
	start.Now = clockAt(2000)
	task, err := start.Execute(ctx)
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if v, _ := task.Get("start"); v != "2000" {
		t.Errorf("expected start 2000, got %q", v)
	}

	again := NewStartTaskCommand(store, testUUID)
	if _, err := again.Execute(ctx); !errors.Is(err, application.ErrInvalidOperation) {
		t.Errorf("expected second start to fail, got %v", err)
	}

	stop = NewStopTaskCommand(store, testUUID)
	stop.Now = clockAt(2100)
	task, err = stop.Execute(ctx)
	if err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if _, ok := task.Get("start"); ok {
		t.Errorf("expected start removed")
	}
}

func TestDeleteAndAnnotateTaskCommands(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	createTestTask(t, store)

	annotate := NewAnnotateTaskCommand(store, testUUID, "called the client")
	annotate.Now = clockAt(1500)
	task, err := annotate.Execute(ctx)
	if err != nil {
		t.Fatalf("annotate failed: %v", err)
	}
	if annos := task.Annotations(); len(annos) != 1 || annos[0].Entry != 1500 {
		t.Errorf("unexpected annotations %+v", annos)
	}

	empty := NewAnnotateTaskCommand(store, testUUID, " ")
	var valErr *application.ValidationError
	if _, err := empty.Execute(ctx); !errors.As(err, &valErr) {
		t.Errorf("expected ValidationError for empty annotation, got %v", err)
	}

	del := NewDeleteTaskCommand(store, testUUID)
	del.Now = clockAt(1600)
	task, err = del.Execute(ctx)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if task.Status() != "deleted" {
		t.Errorf("expected deleted status, got %q", task.Status())
	}
}

func TestCreateTaskCommand_Validate(t *testing.T) {
	tests := []struct {
		name        string
		description string
		props       map[string]string
		wantErr     bool
	}{
		{"valid", "Write report", map[string]string{"due": "2000"}, false},
		{"empty description", "", nil, true},
		{"status set on creation", "Write report", map[string]string{"status": "completed"}, true},
		{"bad property", "Write report", map[string]string{"a b": "1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewCreateTaskCommand(nil, tt.description)
			for k, v := range tt.props {
				cmd.Properties[k] = v
			}
			err := cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestListAndUndoPreviewCommands(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	createTestTask(t, store)

	tasks, err := NewListTasksCommand(store, "pending").Execute(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("expected 1 pending task, got %d", len(tasks))
	}

	tasks, err = NewListTasksCommand(store, "completed").Execute(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected no completed tasks, got %d", len(tasks))
	}

	modify := NewModifyTaskCommand(store, testUUID)
	modify.Set["priority"] = "L"
	if _, err := modify.Execute(ctx); err != nil {
		t.Fatalf("modify failed: %v", err)
	}

	pending, err := NewUndoPreviewCommand(store).Execute(ctx)
	if err != nil {
		t.Fatalf("undo preview failed: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected priority and modified updates, got %+v", pending)
	}
	if pending[0].Property != "priority" || pending[1].Property != "modified" {
		t.Errorf("unexpected undo operations %+v", pending)
	}
}

func TestModifyTaskCommand_ExecuteTwice(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	createTestTask(t, store)

	start := NewStartTaskCommand(store, testUUID)
	start.Now = clockAt(2000)
	if _, err := start.Execute(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	stop := NewStopTaskCommand(store, testUUID)
	stop.Now = clockAt(2100)
	if _, err := stop.Execute(ctx); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if _, err := stop.Execute(ctx); !errors.Is(err, application.ErrInvalidOperation) {
		t.Errorf("expected second stop to fail, got %v", err)
	}
	if len(stop.Remove) != 0 || len(stop.Set) != 0 {
		t.Errorf("expected command fields untouched, got set %v remove %v", stop.Set, stop.Remove)
	}

	annotate := NewAnnotateTaskCommand(store, testUUID, "follow up")
	for _, at := range []int64{3000, 3001} {
		annotate.Now = clockAt(at)
		if _, err := annotate.Execute(ctx); err != nil {
			t.Fatalf("annotate at %d failed: %v", at, err)
		}
	}
	task, err := store.GetTask(testUUID)
	if err != nil {
		t.Fatal(err)
	}
	annos := task.Annotations()
	if len(annos) != 2 || annos[0].Entry != 3000 || annos[1].Entry != 3001 {
		t.Errorf("expected one annotation per run, got %+v", annos)
	}
}

func TestAnnotateTaskCommand_SameSecond(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	createTestTask(t, store)

	first := NewAnnotateTaskCommand(store, testUUID, "first")
	first.Now = clockAt(1500)
	if _, err := first.Execute(ctx); err != nil {
		t.Fatalf("annotate failed: %v", err)
	}
	before := len(store.log)

	second := NewAnnotateTaskCommand(store, testUUID, "second")
	second.Now = clockAt(1500)
	if _, err := second.Execute(ctx); !errors.Is(err, application.ErrInvalidOperation) {
		t.Errorf("expected same-second annotation to fail, got %v", err)
	}
	if len(store.log) != before {
		t.Errorf("expected nothing committed, got %d operations", len(store.log)-before)
	}
}
