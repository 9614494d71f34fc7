package services

import (
	"encoding/json"
	"errors"
)

// ErrPerevalNotFound is returned when no pereval has the requested id.
var ErrPerevalNotFound = errors.New("pereval not found")

// FieldErrors maps a field name to a list of messages ([]string) or to nested FieldErrors.
type FieldErrors map[string]any

// Add appends a message to the field.
func (e FieldErrors) Add(field, msg string) {
	list, _ := e[field].([]string)
	e[field] = append(list, msg)
}

// Nested returns the error tree of a nested field, creating it on demand.
func (e FieldErrors) Nested(field string) FieldErrors {
	if nested, ok := e[field].(FieldErrors); ok {
		return nested
	}
	nested := FieldErrors{}
	e[field] = nested
	return nested
}

// Empty reports whether the tree holds no message at any depth.
func (e FieldErrors) Empty() bool {
	for _, v := range e {
		switch v := v.(type) {
		case []string:
			if len(v) > 0 {
				return false
			}
		case FieldErrors:
			if !v.Empty() {
				return false
			}
		}
	}
	return true
}

// prune drops empty nested trees so they do not show up in messages.
func (e FieldErrors) prune() FieldErrors {
	for k, v := range e {
		if nested, ok := v.(FieldErrors); ok {
			if nested.Empty() {
				delete(e, k)
				continue
			}
			nested.prune()
		}
	}
	return e
}

// ValidationError reports field-level problems found before any write.
type ValidationError struct {
	Fields FieldErrors
}

// NewValidationError returns a ValidationError with one message on one field.
func NewValidationError(field, msg string) *ValidationError {
	fields := FieldErrors{}
	fields.Add(field, msg)
	return &ValidationError{Fields: fields}
}

// Error renders the field tree as JSON with sorted keys.
func (e *ValidationError) Error() string {
	b, err := json.Marshal(e.Fields)
	if err != nil {
		return "invalid data"
	}
	return string(b)
}

// RejectedError is returned when an edit is refused by the edit policy.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return e.Reason
}
