package ports

import "taskjournal/internal/domain"

// OperationStore defines the interface for the task operation log
type OperationStore interface {
	// Read operations
	GetTask(uuid string) (*domain.Task, error)
	ListTasks() ([]domain.Task, error)

	// GetTaskOperations returns every operation recorded for a task,
	// in storage order
	GetTaskOperations(uuid string) ([]domain.Operation, error)

	// GetUndoOperations returns the operations of the most recent
	// transaction, starting with its undo point
	GetUndoOperations() ([]domain.Operation, error)

	// CommitOperations records ops as one transaction and applies them
	// to the stored tasks
	CommitOperations(ops []domain.Operation) error
}
