package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStationErrorFormatting(t *testing.T) {
	err := &StationError{Type: ErrUnknownRepository, Repository: "Z", Err: errors.New("repository 'Z' not found")}
	assert.Equal(t, "[UnknownRepository] Z: repository 'Z' not found", err.Error())

	err = &StationError{Type: ErrFileOp, Err: errors.New("permission denied")}
	assert.Equal(t, "[IOFailure] permission denied", err.Error())
}

func TestIsType(t *testing.T) {
	inner := errors.New("missing marker")
	err := fmt.Errorf("wrapped: %w", &StationError{Type: ErrValidation, Err: inner})

	assert.True(t, IsType(err, ErrValidation))
	assert.False(t, IsType(err, ErrFileOp))
	assert.False(t, IsType(inner, ErrValidation))
	assert.ErrorIs(t, err, inner)
}

func TestErrorTypeString(t *testing.T) {
	assert.Equal(t, "ValidationFailed", ErrValidation.String())
	assert.Equal(t, "NotConfigured", ErrNotConfigured.String())
	assert.Equal(t, "Signature", ErrSignature.String())
	assert.Equal(t, "Unknown", ErrorType(99).String())
}
