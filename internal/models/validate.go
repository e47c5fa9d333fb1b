package models

import (
	"fmt"
	"strings"
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// Validate checks the invariants a plant must hold before it is persisted.
func (p Plant) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Message: "cannot be empty"}
	}
	if p.Type == "" {
		return &ValidationError{Field: "type", Message: "cannot be empty"}
	}
	if !p.Type.Valid() {
		return &ValidationError{Field: "type", Message: fmt.Sprintf("unknown plant type %q", p.Type)}
	}
	if !p.Status.Valid() {
		return &ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", p.Status)}
	}
	return nil
}

// Validate checks the invariants a record must hold before it is persisted.
func (r Record) Validate() error {
	if r.PlantID == "" {
		return &ValidationError{Field: "plantId", Message: "cannot be empty"}
	}
	if !r.Type.Valid() {
		return &ValidationError{Field: "type", Message: fmt.Sprintf("unknown record type %q", r.Type)}
	}
	if r.RecordTime <= 0 {
		return &ValidationError{Field: "recordTime", Message: "must be set"}
	}
	return nil
}

// Validate checks the invariants a reminder must hold before it is persisted.
func (r Reminder) Validate() error {
	if r.PlantID == "" {
		return &ValidationError{Field: "plantId", Message: "cannot be empty"}
	}
	if !r.Type.Valid() {
		return &ValidationError{Field: "type", Message: fmt.Sprintf("unknown reminder type %q", r.Type)}
	}
	if r.Frequency <= 0 {
		return &ValidationError{Field: "frequency", Message: "must be at least one day"}
	}
	return nil
}
