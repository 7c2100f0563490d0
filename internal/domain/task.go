package domain

import (
	"errors"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// ErrTaskNotFound is returned when a task UUID is not in the store
var ErrTaskNotFound = errors.New("task not found")

// Task is the current state of a stored task: a flat property map
type Task struct {
	UUID       string
	Properties map[string]string
}

// Get returns a property value and whether it is set
func (t Task) Get(property string) (string, bool) {
	v, ok := t.Properties[property]
	return v, ok
}

// Description returns the task description, or an empty string
func (t Task) Description() string {
	return t.Properties[PropDescription]
}

// Status returns the task status, defaulting to pending
func (t Task) Status() string {
	if s, ok := t.Properties[PropStatus]; ok && s != "" {
		return s
	}
	return "pending"
}

// Tags returns the task's tags in sorted order
func (t Task) Tags() []string {
	var tags []string
	for prop := range t.Properties {
		if attr := Classify(prop); attr.Class == AttrTag {
			tags = append(tags, attr.Key)
		}
	}
	sort.Strings(tags)
	return tags
}

// Dependencies returns the UUIDs this task depends on, sorted
func (t Task) Dependencies() []string {
	var deps []string
	for prop := range t.Properties {
		if attr := Classify(prop); attr.Class == AttrDependency {
			deps = append(deps, attr.Key)
		}
	}
	sort.Strings(deps)
	return deps
}

// Annotation is a timestamped note attached to a task
type Annotation struct {
	Entry       int64
	Description string
}

// Annotations returns the task's annotations ordered by entry time
func (t Task) Annotations() []Annotation {
	var annos []Annotation
	for prop, value := range t.Properties {
		attr := Classify(prop)
		if attr.Class != AttrAnnotation {
			continue
		}
		entry, _ := strconv.ParseInt(attr.Key, 10, 64)
		annos = append(annos, Annotation{Entry: entry, Description: value})
	}
	slices.SortFunc(annos, func(a, b Annotation) int {
		switch {
		case a.Entry < b.Entry:
			return -1
		case a.Entry > b.Entry:
			return 1
		}
		return strings.Compare(a.Description, b.Description)
	})
	return annos
}

// ScalarProperties returns the names of all non-synthetic properties, sorted
func (t Task) ScalarProperties() []string {
	var names []string
	for prop := range t.Properties {
		if Classify(prop).Class == AttrScalar {
			names = append(names, prop)
		}
	}
	sort.Strings(names)
	return names
}

// LatestTransaction returns the operations recorded after the last undo
// point, in storage order
func LatestTransaction(ops []Operation) []Operation {
	last := -1
	for i, op := range ops {
		if op.Kind == OpUndoPoint {
			last = i
		}
	}
	return ops[last+1:]
}
