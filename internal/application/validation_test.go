package application

import (
	"errors"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "description",
			value:     "Write report",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "description",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "description",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
			}
		})
	}
}

func TestValidateUUID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		want    string
		wantErr bool
	}{
		{
			name: "canonical",
			id:   "6f1c3a2e-6b0e-4a8e-9d3e-1b2c3d4e5f60",
			want: "6f1c3a2e-6b0e-4a8e-9d3e-1b2c3d4e5f60",
		},
		{
			name: "uppercase is normalized",
			id:   "6F1C3A2E-6B0E-4A8E-9D3E-1B2C3D4E5F60",
			want: "6f1c3a2e-6b0e-4a8e-9d3e-1b2c3d4e5f60",
		},
		{
			name:    "empty",
			id:      "",
			wantErr: true,
		},
		{
			name:    "not a uuid",
			id:      "12",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateUUID("taskUUID", tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateUUID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestValidateProperty(t *testing.T) {
	tests := []struct {
		property string
		wantErr  bool
	}{
		{"priority", false},
		{"due", false},
		{"", true},
		{"two words", true},
		{"modified", true},
		{"tags", true},
	}

	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			err := ValidateProperty(tt.property)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProperty(%q) error = %v, wantErr %v", tt.property, err, tt.wantErr)
			}
		})
	}
}

func TestJournalError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &JournalError{UUID: "u", Err: inner}

	if !errors.Is(err, inner) {
		t.Errorf("expected JournalError to unwrap to inner error")
	}
}

func TestModificationError_Is(t *testing.T) {
	err := &ModificationError{UUID: "u", Property: "start", Reason: "already started"}

	if !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("expected ModificationError to match ErrInvalidOperation")
	}
}
