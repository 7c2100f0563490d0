package domain

import (
	"fmt"
	"strings"
)

// ReplayState is carried across every group of a replay
type ReplayState struct {
	LastStart int64
	HasStart  bool
}

// SeedReplayState builds the initial state from the task's stored start
// value. An absent or unparseable value leaves last_start undefined.
func SeedReplayState(task map[string]string, p Presenter) ReplayState {
	value, ok := task[PropStart]
	if !ok {
		return ReplayState{}
	}
	epoch, err := p.ParseDate(value)
	if err != nil {
		return ReplayState{}
	}
	return ReplayState{LastStart: epoch, HasStart: true}
}

// durationUnknown is shown when a start is removed before any start was seen
const durationUnknown = "-"

// stopOverride finds the stop time set by an "end" update in the group.
// The last such update wins.
func stopOverride(g Group, p Presenter) (int64, bool) {
	var (
		stop  int64
		found bool
	)
	for _, op := range g.Operations {
		if op.Property != PropEnd {
			continue
		}
		found = true
		stop = op.Timestamp
		if op.Value != nil {
			if epoch, err := p.ParseDate(*op.Value); err == nil {
				stop = epoch
			}
		}
	}
	return stop, found
}

// Narrate describes one group of updates. It returns the sentences for the
// group and the state to hand to the next group.
func Narrate(g Group, state ReplayState, p Presenter) ([]string, ReplayState, error) {
	override, hasOverride := stopOverride(g, p)

	var sentences []string
	for _, op := range g.Operations {
		if !op.IsUpdate() || ignoredProperty(op.Property) {
			continue
		}

		attr := Classify(op.Property)
		var (
			sentence string
			err      error
		)
		switch {
		case op.Value == nil && op.OldValue != nil:
			sentence = removed(attr, op, state, override, hasOverride)
		case op.Value != nil && op.OldValue == nil:
			sentence, state = added(attr, *op.Value, state, p)
		case op.Value != nil && op.OldValue != nil:
			sentence, state, err = changed(attr, *op.OldValue, *op.Value, state, p)
			if err != nil {
				return nil, state, err
			}
		}

		if sentence != "" {
			sentences = append(sentences, sentence)
		}
	}
	return sentences, state, nil
}

func removed(attr Attribute, op Operation, state ReplayState, override int64, hasOverride bool) string {
	switch attr.Class {
	case AttrAnnotation:
		return fmt.Sprintf("Annotation '%s' deleted.", *op.OldValue)
	case AttrTag:
		return fmt.Sprintf("Tag '%s' deleted.", attr.Key)
	case AttrDependency:
		return fmt.Sprintf("Dependency on '%s' deleted.", attr.Key)
	}

	if attr.Property != PropStart {
		return fmt.Sprintf("%s deleted.", Capitalize(attr.Property))
	}

	stop := op.Timestamp
	if hasOverride {
		stop = override
	}
	duration := durationUnknown
	if state.HasStart {
		duration = FormatDuration(stop - state.LastStart)
	}
	return fmt.Sprintf("%s deleted (duration: %s).", Capitalize(attr.Property), duration)
}

func added(attr Attribute, value string, state ReplayState, p Presenter) (string, ReplayState) {
	switch attr.Class {
	case AttrAnnotation:
		return fmt.Sprintf("Annotation of '%s' added.", value), state
	case AttrTag:
		return fmt.Sprintf("Tag '%s' added.", attr.Key), state
	case AttrDependency:
		return fmt.Sprintf("Dependency on '%s' added.", attr.Key), state
	}

	// Unparseable start values are ignored here.
	if attr.Property == PropStart {
		if epoch, err := p.ParseDate(value); err == nil {
			state = ReplayState{LastStart: epoch, HasStart: true}
		}
	}
	return fmt.Sprintf("%s set to '%s'.", Capitalize(attr.Property), p.RenderAttribute(attr.Property, value)), state
}

func changed(attr Attribute, oldValue, value string, state ReplayState, p Presenter) (string, ReplayState, error) {
	switch attr.Class {
	case AttrTag, AttrDependency:
		return "", state, nil
	case AttrAnnotation:
		return fmt.Sprintf("Annotation changed to '%s'.", value), state, nil
	}

	// Unlike additions, a bad start value fails the replay.
	if attr.Property == PropStart {
		epoch, err := p.ParseDate(value)
		if err != nil {
			return "", state, fmt.Errorf("start changed: %w", err)
		}
		state = ReplayState{LastStart: epoch, HasStart: true}
	}
	return fmt.Sprintf("%s changed from '%s' to '%s'.",
		Capitalize(attr.Property),
		p.RenderAttribute(attr.Property, oldValue),
		p.RenderAttribute(attr.Property, value),
	), state, nil
}

// Entry is one row of a task's journal
type Entry struct {
	Timestamp int64  // anchor time, epoch seconds
	When      string // Timestamp rendered by the presenter
	Text      string
}

// BuildJournal replays a task's operations into journal entries in
// ascending time order. Groups without sentences produce no entry.
func BuildJournal(ops []Operation, seed ReplayState, p Presenter) ([]Entry, error) {
	for _, op := range ops {
		if err := op.Validate(); err != nil {
			return nil, err
		}
	}

	var (
		entries []Entry
		state   = seed
	)
	for _, g := range GroupOperations(SortOperations(ops)) {
		sentences, next, err := Narrate(g, state, p)
		if err != nil {
			return nil, err
		}
		state = next

		if len(sentences) == 0 {
			continue
		}
		anchor := g.Anchor()
		entries = append(entries, Entry{
			Timestamp: anchor.Timestamp,
			When:      p.FormatTimestamp(anchor.Timestamp),
			Text:      strings.Join(sentences, "\n"),
		})
	}
	return entries, nil
}
