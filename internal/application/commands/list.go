package commands

import (
	"context"

	"taskjournal/internal/domain"
	"taskjournal/internal/ports"
)

// ListTasksCommand lists all stored tasks
type ListTasksCommand struct {
	store  ports.OperationStore
	Status string // empty lists every status
}

// NewListTasksCommand creates a new ListTasksCommand
func NewListTasksCommand(store ports.OperationStore, status string) *ListTasksCommand {
	return &ListTasksCommand{
		store:  store,
		Status: status,
	}
}

// Execute runs the list tasks command
func (c *ListTasksCommand) Execute(ctx context.Context) ([]domain.Task, error) {
	tasks, err := c.store.ListTasks()
	if err != nil {
		return nil, err
	}
	if c.Status == "" {
		return tasks, nil
	}

	filtered := tasks[:0]
	for _, t := range tasks {
		if t.Status() == c.Status {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// UndoPreviewCommand lists the operations the next undo would revert
type UndoPreviewCommand struct {
	store ports.OperationStore
}

// NewUndoPreviewCommand creates a new UndoPreviewCommand
func NewUndoPreviewCommand(store ports.OperationStore) *UndoPreviewCommand {
	return &UndoPreviewCommand{store: store}
}

// Execute returns the latest transaction's operations without its undo point
func (c *UndoPreviewCommand) Execute(ctx context.Context) ([]domain.Operation, error) {
	ops, err := c.store.GetUndoOperations()
	if err != nil {
		return nil, err
	}

	return domain.LatestTransaction(ops), nil
}
