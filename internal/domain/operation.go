package domain

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidOperation is returned for operations that violate the log's shape
var ErrInvalidOperation = errors.New("invalid operation")

// OperationKind identifies what an operation records
type OperationKind int

const (
	OpCreate OperationKind = iota
	OpUpdate
	OpDelete
	OpUndoPoint
)

// String returns the lowercase name of the kind, as stored
func (k OperationKind) String() string {
	switch k {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	case OpUndoPoint:
		return "undo_point"
	default:
		return "unknown"
	}
}

// ParseOperationKind is the inverse of OperationKind.String
func ParseOperationKind(s string) (OperationKind, error) {
	switch s {
	case "create":
		return OpCreate, nil
	case "update":
		return OpUpdate, nil
	case "delete":
		return OpDelete, nil
	case "undo_point":
		return OpUndoPoint, nil
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidOperation, s)
}

// Operation is one recorded mutation of a task.
// Only updates carry a property, values and a timestamp.
type Operation struct {
	Kind      OperationKind
	UUID      string
	Property  string
	Value     *string // nil when the property was removed
	OldValue  *string // nil when the property was added
	Timestamp int64   // seconds since epoch
}

// NewUpdate builds an Update operation
func NewUpdate(uuid, property string, value, oldValue *string, timestamp int64) Operation {
	return Operation{
		Kind:      OpUpdate,
		UUID:      uuid,
		Property:  property,
		Value:     value,
		OldValue:  oldValue,
		Timestamp: timestamp,
	}
}

// IsUpdate reports whether the operation is a property update
func (o Operation) IsUpdate() bool {
	return o.Kind == OpUpdate
}

// Validate checks that an update carries at least one value
func (o Operation) Validate() error {
	if o.Kind == OpUpdate && o.Value == nil && o.OldValue == nil {
		return fmt.Errorf("%w: update of %q has neither value nor old value", ErrInvalidOperation, o.Property)
	}
	return nil
}

// SortOperations orders operations by kind (Create < Update < Delete < UndoPoint)
// and then by timestamp. Ties keep their input order.
func SortOperations(ops []Operation) []Operation {
	sorted := slices.Clone(ops)
	slices.SortStableFunc(sorted, func(a, b Operation) int {
		if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
			return c
		}
		return cmp.Compare(a.Timestamp, b.Timestamp)
	})
	return sorted
}

// groupWindow is the span, in seconds from the anchor, treated as one action
const groupWindow = 1

// Group is a run of updates made by a single user action
type Group struct {
	Operations []Operation
}

// Anchor returns the first operation of the group
func (g Group) Anchor() Operation {
	return g.Operations[0]
}

// GroupOperations partitions sorted operations into groups of updates
// whose timestamps lie within groupWindow of the group's first update.
// Non-update operations are skipped.
func GroupOperations(sorted []Operation) []Group {
	var groups []Group
	for i := 0; i < len(sorted); {
		anchor := sorted[i]
		if !anchor.IsUpdate() {
			i++
			continue
		}

		end := i + 1
		for end < len(sorted) {
			next := sorted[end]
			if !next.IsUpdate() || next.Timestamp-anchor.Timestamp > groupWindow {
				break
			}
			end++
		}

		groups = append(groups, Group{Operations: sorted[i:end]})
		i = end
	}
	return groups
}
