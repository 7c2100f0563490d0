package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskjournal/internal/application"
	"taskjournal/internal/domain"
	"taskjournal/internal/ports"
)

// CreateTaskCommand creates a pending task with initial properties
type CreateTaskCommand struct {
	store       ports.OperationStore
	Description string
	Properties  map[string]string
	Tags        []string
	Now         func() time.Time
	NewUUID     func() string
}

// NewCreateTaskCommand creates a new CreateTaskCommand
func NewCreateTaskCommand(store ports.OperationStore, description string) *CreateTaskCommand {
	return &CreateTaskCommand{
		store:       store,
		Description: description,
		Properties:  make(map[string]string),
		Now:         time.Now,
		NewUUID:     func() string { return uuid.NewString() },
	}
}

// Validate checks if the create operation is valid
func (c *CreateTaskCommand) Validate() error {
	if err := application.ValidateRequired("description", c.Description); err != nil {
		return err
	}
	for prop := range c.Properties {
		if err := application.ValidateProperty(prop); err != nil {
			return err
		}
		switch prop {
		case domain.PropDescription, domain.PropStatus, domain.PropEntry:
			return &application.ValidationError{
				Field:   "property",
				Message: fmt.Sprintf("%s is set on creation", prop),
			}
		}
	}
	for _, tag := range c.Tags {
		if err := application.ValidateRequired("tag", tag); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the create command and returns the new task
func (c *CreateTaskCommand) Execute(ctx context.Context) (*domain.Task, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id := c.NewUUID()
	now := c.Now().Unix()
	entry := epochString(now)
	b := newUpdateBuilder(&domain.Task{UUID: id}, now)

	b.set(domain.PropDescription, c.Description)
	b.set(domain.PropStatus, "pending")
	b.set(domain.PropEntry, entry)
	for _, prop := range sortedKeys(c.Properties) {
		b.set(prop, c.Properties[prop])
	}
	for _, tag := range c.Tags {
		b.set(domain.TagProperty(tag), "x")
	}
	b.set(domain.PropModified, entry)

	ops := append([]domain.Operation{{Kind: domain.OpCreate, UUID: id}}, b.ops...)
	if err := c.store.CommitOperations(ops); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return c.store.GetTask(id)
}
