package application

import "taskjournal/internal/domain"

// Re-export domain types for use by adapters
type (
	Task      = domain.Task
	Operation = domain.Operation
	Entry     = domain.Entry
)

// TaskInfo is everything the info view shows for one task
type TaskInfo struct {
	Task    domain.Task
	Journal []domain.Entry

	// JournalErr is set when the journal could not be built; the task's
	// attributes are still valid
	JournalErr error
}
