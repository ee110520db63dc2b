package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRateLocked         = errors.New("rate is locked")
	ErrInvalidMetalType   = errors.New("invalid metal type")
	ErrOTPInvalid         = errors.New("code does not match an active OTP")
	ErrOTPExpired         = errors.New("OTP has expired")
	ErrValidation         = errors.New("validation failed")
)

// ValidationError reports a missing or invalid field. It wraps ErrValidation
// so callers can match the whole class with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a ValidationError for a field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
