package ports

import "taskjournal/internal/domain"

// StoreTx represents a transaction for atomic store updates
type StoreTx interface {
	// Log operations
	AppendOperation(op domain.Operation) error

	// Task state operations
	CreateTask(uuid string) error
	SetProperty(uuid, property, value string) error
	DeleteProperty(uuid, property string) error
	DeleteTask(uuid string) error

	// Transaction control
	Commit() error
	Rollback() error
}
