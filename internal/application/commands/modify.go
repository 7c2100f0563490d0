package commands

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"
	"time"

	"taskjournal/internal/application"
	"taskjournal/internal/domain"
	"taskjournal/internal/ports"
)

// ModifyTaskCommand applies property changes to a task as one transaction.
// All updates share the same timestamp, so the journal shows them as a
// single entry.
type ModifyTaskCommand struct {
	store      ports.OperationStore
	UUID       string
	Set        map[string]string
	Remove     []string
	AddTags    []string
	RemoveTags []string
	Now        func() time.Time

	// check runs against the current task and may add changes for this run
	check func(task *domain.Task, now time.Time, ch *changeSet) error
}

// changeSet is the set of changes built for one Execute call
type changeSet struct {
	set    map[string]string
	remove []string
}

// NewModifyTaskCommand creates a new ModifyTaskCommand
func NewModifyTaskCommand(store ports.OperationStore, uuid string) *ModifyTaskCommand {
	return &ModifyTaskCommand{
		store: store,
		UUID:  uuid,
		Set:   make(map[string]string),
		Now:   time.Now,
	}
}

// Validate checks the requested changes
func (c *ModifyTaskCommand) Validate() error {
	canonical, err := application.ValidateUUID("taskUUID", c.UUID)
	if err != nil {
		return err
	}
	c.UUID = canonical

	for prop := range c.Set {
		if domain.Classify(prop).Class == domain.AttrAnnotation {
			continue
		}
		if err := application.ValidateProperty(prop); err != nil {
			return err
		}
	}
	for _, prop := range c.Remove {
		if err := application.ValidateProperty(prop); err != nil {
			return err
		}
	}
	for _, tag := range append(append([]string{}, c.AddTags...), c.RemoveTags...) {
		if err := application.ValidateRequired("tag", tag); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the modify command and returns the updated task
func (c *ModifyTaskCommand) Execute(ctx context.Context) (*domain.Task, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	task, err := c.store.GetTask(c.UUID)
	if err != nil {
		return nil, fmt.Errorf("failed to load task: %w", err)
	}

	at := c.Now()
	ch := &changeSet{set: maps.Clone(c.Set), remove: slices.Clone(c.Remove)}
	if ch.set == nil {
		ch.set = make(map[string]string)
	}
	if c.check != nil {
		if err := c.check(task, at, ch); err != nil {
			return nil, err
		}
	}

	now := at.Unix()
	b := newUpdateBuilder(task, now)

	for _, prop := range sortedKeys(ch.set) {
		b.set(prop, ch.set[prop])
	}
	for _, prop := range ch.remove {
		b.remove(prop)
	}
	for _, tag := range c.AddTags {
		b.set(domain.TagProperty(tag), "x")
	}
	for _, tag := range c.RemoveTags {
		b.remove(domain.TagProperty(tag))
	}

	if len(b.ops) == 0 {
		return task, nil
	}
	b.set(domain.PropModified, epochString(now))

	if err := c.store.CommitOperations(b.ops); err != nil {
		return nil, fmt.Errorf("failed to modify task: %w", err)
	}
	return c.store.GetTask(c.UUID)
}

// NewStartTaskCommand marks a task as started now
func NewStartTaskCommand(store ports.OperationStore, uuid string) *ModifyTaskCommand {
	c := NewModifyTaskCommand(store, uuid)
	c.check = func(task *domain.Task, now time.Time, ch *changeSet) error {
		if _, ok := task.Get(domain.PropStart); ok {
			return &application.ModificationError{UUID: task.UUID, Property: domain.PropStart, Reason: "task already started"}
		}
		ch.set[domain.PropStart] = epochString(now.Unix())
		return nil
	}
	return c
}

// NewStopTaskCommand removes a task's start time
func NewStopTaskCommand(store ports.OperationStore, uuid string) *ModifyTaskCommand {
	c := NewModifyTaskCommand(store, uuid)
	c.check = func(task *domain.Task, now time.Time, ch *changeSet) error {
		if _, ok := task.Get(domain.PropStart); !ok {
			return &application.ModificationError{UUID: task.UUID, Property: domain.PropStart, Reason: "task not started"}
		}
		ch.remove = append(ch.remove, domain.PropStart)
		return nil
	}
	return c
}

// NewDoneTaskCommand completes a task. end defaults to now; a started task
// is stopped in the same transaction.
func NewDoneTaskCommand(store ports.OperationStore, uuid string, end *time.Time) *ModifyTaskCommand {
	c := NewModifyTaskCommand(store, uuid)
	c.check = func(task *domain.Task, now time.Time, ch *changeSet) error {
		if task.Status() == "completed" {
			return &application.ModificationError{UUID: task.UUID, Property: domain.PropStatus, Reason: "task already completed"}
		}
		endAt := now
		if end != nil {
			endAt = *end
		}
		ch.set[domain.PropStatus] = "completed"
		ch.set[domain.PropEnd] = epochString(endAt.Unix())
		if _, ok := task.Get(domain.PropStart); ok {
			ch.remove = append(ch.remove, domain.PropStart)
		}
		return nil
	}
	return c
}

// NewDeleteTaskCommand marks a task as deleted
func NewDeleteTaskCommand(store ports.OperationStore, uuid string) *ModifyTaskCommand {
	c := NewModifyTaskCommand(store, uuid)
	c.check = func(task *domain.Task, now time.Time, ch *changeSet) error {
		if task.Status() == "deleted" {
			return &application.ModificationError{UUID: task.UUID, Property: domain.PropStatus, Reason: "task already deleted"}
		}
		ch.set[domain.PropStatus] = "deleted"
		ch.set[domain.PropEnd] = epochString(now.Unix())
		if _, ok := task.Get(domain.PropStart); ok {
			ch.remove = append(ch.remove, domain.PropStart)
		}
		return nil
	}
	return c
}

// NewAnnotateTaskCommand adds an annotation entered now
func NewAnnotateTaskCommand(store ports.OperationStore, uuid, text string) *ModifyTaskCommand {
	c := NewModifyTaskCommand(store, uuid)
	c.check = func(task *domain.Task, now time.Time, ch *changeSet) error {
		if err := application.ValidateRequired("annotation", text); err != nil {
			return err
		}
		prop := domain.AnnotationProperty(now.Unix())
		if _, ok := task.Get(prop); ok {
			return &application.ModificationError{UUID: task.UUID, Property: prop, Reason: "task already annotated at this second"}
		}
		ch.set[prop] = text
		return nil
	}
	return c
}

// updateBuilder accumulates updates against a task's current values
type updateBuilder struct {
	task *domain.Task
	now  int64
	ops  []domain.Operation
}

func newUpdateBuilder(task *domain.Task, now int64) *updateBuilder {
	return &updateBuilder{task: task, now: now}
}

func (b *updateBuilder) set(prop, value string) {
	old, had := b.task.Get(prop)
	if had && old == value {
		return
	}
	var oldValue *string
	if had {
		oldValue = &old
	}
	b.ops = append(b.ops, domain.NewUpdate(b.task.UUID, prop, &value, oldValue, b.now))
}

func (b *updateBuilder) remove(prop string) {
	old, had := b.task.Get(prop)
	if !had {
		return
	}
	b.ops = append(b.ops, domain.NewUpdate(b.task.UUID, prop, nil, &old, b.now))
}

func epochString(epoch int64) string {
	return fmt.Sprintf("%d", epoch)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
