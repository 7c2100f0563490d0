package application

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "taskUUID" -> "task UUID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"taskUUID":    "task UUID",
		"description": "description",
		"property":    "property",
		"annotation":  "annotation",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateUUID checks that id is a well-formed UUID and returns its
// canonical lowercase form
func ValidateUUID(fieldName, id string) (string, error) {
	if err := ValidateRequired(fieldName, id); err != nil {
		return "", err
	}
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected %s, got: %s", formatFieldName(fieldName), id),
		}
	}
	return parsed.String(), nil
}

// reservedProperties cannot be set directly by a modification
var reservedProperties = map[string]bool{
	"uuid":     true,
	"modified": true,
	"tags":     true,
	"depends":  true,
}

// ValidateProperty checks that a property name may be modified by a user
func ValidateProperty(property string) error {
	if err := ValidateRequired("property", property); err != nil {
		return err
	}
	if strings.ContainsAny(property, " \t\n=") {
		return &ValidationError{
			Field:   "property",
			Message: fmt.Sprintf("invalid property name: %q", property),
		}
	}
	if reservedProperties[property] {
		return &ValidationError{
			Field:   "property",
			Message: fmt.Sprintf("%s is reserved", property),
		}
	}
	return nil
}
