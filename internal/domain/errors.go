package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business-level errors that can occur in the system.
// These errors are used across layers to communicate specific failure conditions.
var (
	// ErrFormat marks malformed input: cron expressions, date strings, request parameters.
	ErrFormat = errors.New("malformed input")

	// ErrIO marks failures reading exemption files or writing artifacts.
	ErrIO = errors.New("i/o failure")

	// Exemption errors
	ErrExemptionsNotFound = errors.New("exemptions file not found")

	// Config errors
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrConfigLoadFailed = errors.New("failed to load configuration")
)

// FormatError describes which part of an input could not be parsed.
type FormatError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

// NewFormatError builds a FormatError for field/value.
func NewFormatError(field, value, reason string) *FormatError {
	return &FormatError{Field: field, Value: value, Reason: reason}
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

// Is reports FormatError as ErrFormat for errors.Is checks.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }
