package models

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrUnknownRepository ErrorType = iota
	ErrFileOp
	ErrValidation
	ErrNotConfigured
	ErrInvalidConfig
	ErrSignature
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrUnknownRepository:
		return "UnknownRepository"
	case ErrFileOp:
		return "IOFailure"
	case ErrValidation:
		return "ValidationFailed"
	case ErrNotConfigured:
		return "NotConfigured"
	case ErrInvalidConfig:
		return "InvalidConfig"
	case ErrSignature:
		return "Signature"
	default:
		return "Unknown"
	}
}

// StationError represents an error raised while managing the repository configuration
type StationError struct {
	Type       ErrorType
	Repository string
	Err        error
}

// Error implements the error interface
func (e *StationError) Error() string {
	if e.Repository != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Repository, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *StationError) Unwrap() error {
	return e.Err
}

// IsType reports whether err wraps a StationError of the given type
func IsType(err error, t ErrorType) bool {
	var se *StationError
	if errors.As(err, &se) {
		return se.Type == t
	}
	return false
}
