package application

import (
	"errors"
	"fmt"

	"taskjournal/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound         = domain.ErrTaskNotFound
	ErrInvalidID        = errors.New("invalid ID")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrNoMatches        = errors.New("no matches")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// JournalError records why a task's journal could not be built
type JournalError struct {
	UUID string
	Err  error
}

func (e *JournalError) Error() string {
	return fmt.Sprintf("cannot build journal for %s: %v", e.UUID, e.Err)
}

func (e *JournalError) Unwrap() error {
	return e.Err
}

// ModificationError represents a rejected task modification
type ModificationError struct {
	UUID     string
	Property string
	Reason   string
}

func (e *ModificationError) Error() string {
	return fmt.Sprintf("cannot modify %s of %s: %s", e.Property, e.UUID, e.Reason)
}

func (e *ModificationError) Is(target error) bool {
	return target == ErrInvalidOperation
}
