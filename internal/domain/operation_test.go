package domain

import (
	"errors"
	"testing"
)

func str(s string) *string { return &s }

func TestSortOperations_KindThenTimestamp(t *testing.T) {
	ops := []Operation{
		{Kind: OpUndoPoint},
		NewUpdate("u", "b", str("2"), nil, 200),
		{Kind: OpDelete, Timestamp: 50},
		NewUpdate("u", "a", str("1"), nil, 100),
		{Kind: OpCreate, Timestamp: 300},
	}

	sorted := SortOperations(ops)

	wantKinds := []OperationKind{OpCreate, OpUpdate, OpUpdate, OpDelete, OpUndoPoint}
	for i, k := range wantKinds {
		if sorted[i].Kind != k {
			t.Errorf("position %d: expected %s, got %s", i, k, sorted[i].Kind)
		}
	}
	if sorted[1].Property != "a" || sorted[2].Property != "b" {
		t.Errorf("updates not in timestamp order: %s, %s", sorted[1].Property, sorted[2].Property)
	}
}

func TestSortOperations_StableForTies(t *testing.T) {
	ops := []Operation{
		NewUpdate("u", "status", str("completed"), str("pending"), 100),
		NewUpdate("u", "end", str("100"), nil, 100),
		NewUpdate("u", "start", nil, str("50"), 100),
		NewUpdate("u", "modified", str("100"), str("50"), 100),
	}

	sorted := SortOperations(ops)

	for i := range ops {
		if sorted[i].Property != ops[i].Property {
			t.Errorf("position %d: expected %s, got %s", i, ops[i].Property, sorted[i].Property)
		}
	}
}

func TestSortOperations_DoesNotMutateInput(t *testing.T) {
	ops := []Operation{
		NewUpdate("u", "b", str("2"), nil, 200),
		NewUpdate("u", "a", str("1"), nil, 100),
	}

	SortOperations(ops)

	if ops[0].Property != "b" {
		t.Errorf("input was reordered")
	}
}

func TestGroupOperations_FixedAnchor(t *testing.T) {
	sorted := []Operation{
		NewUpdate("u", "a", str("1"), nil, 100),
		NewUpdate("u", "b", str("1"), nil, 100),
		NewUpdate("u", "c", str("1"), nil, 101),
		NewUpdate("u", "d", str("1"), nil, 102),
	}

	groups := GroupOperations(sorted)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if len(groups[0].Operations) != 3 {
		t.Errorf("expected first group of 3, got %d", len(groups[0].Operations))
	}
	if groups[1].Anchor().Property != "d" {
		t.Errorf("expected second group anchored at d, got %s", groups[1].Anchor().Property)
	}
}

func TestGroupOperations_SkipsNonUpdates(t *testing.T) {
	sorted := SortOperations([]Operation{
		{Kind: OpCreate},
		NewUpdate("u", "a", str("1"), nil, 100),
		{Kind: OpDelete},
		{Kind: OpUndoPoint},
	})

	groups := GroupOperations(sorted)

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if len(groups[0].Operations) != 1 {
		t.Errorf("expected group of 1, got %d", len(groups[0].Operations))
	}
}

func TestGroupOperations_Empty(t *testing.T) {
	if groups := GroupOperations(nil); len(groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}

func TestOperation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		op      Operation
		wantErr bool
	}{
		{"addition", NewUpdate("u", "a", str("1"), nil, 1), false},
		{"removal", NewUpdate("u", "a", nil, str("1"), 1), false},
		{"change", NewUpdate("u", "a", str("2"), str("1"), 1), false},
		{"no values", NewUpdate("u", "a", nil, nil, 1), true},
		{"create", Operation{Kind: OpCreate}, false},
		{"undo point", Operation{Kind: OpUndoPoint}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidOperation) {
				t.Errorf("expected ErrInvalidOperation, got %v", err)
			}
		})
	}
}

func TestParseOperationKind(t *testing.T) {
	for _, k := range []OperationKind{OpCreate, OpUpdate, OpDelete, OpUndoPoint} {
		got, err := ParseOperationKind(k.String())
		if err != nil {
			t.Fatalf("ParseOperationKind(%q) failed: %v", k, err)
		}
		if got != k {
			t.Errorf("expected %s, got %s", k, got)
		}
	}

	if _, err := ParseOperationKind("merge"); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("expected ErrInvalidOperation, got %v", err)
	}
}
