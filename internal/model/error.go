package model

import (
	"errors"
	"strings"
)

var (
	ErrValidation    = errors.New("validation error") // 400
	ErrPartNotFound  = errors.New("part not found")   // 404
	ErrInvalidPartID = errors.New("invalid part id")  // 404

	ErrPartAlreadyExists = errors.New("part already exists")
)

// ValidationError lists every rule a request broke. It matches
// ErrValidation with errors.Is.
type ValidationError struct {
	Reasons []string
}

func NewValidationError(reasons ...string) *ValidationError {
	return &ValidationError{Reasons: reasons}
}

func (e *ValidationError) Error() string {
	if len(e.Reasons) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": " + strings.Join(e.Reasons, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
