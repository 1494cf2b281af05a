package editor

import (
	"errors"
	"fmt"
)

// ErrRequiredField marks a submit attempt with an empty required field.
var ErrRequiredField = errors.New("field is required")

// FieldError ties a validation failure to the field that caused it.
type FieldError struct {
	Field Field
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
