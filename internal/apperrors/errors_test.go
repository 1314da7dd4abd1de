package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewValidationError("Expense ID must be a positive integer"))

	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrNotFound)

	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.Equal(t, "Expense ID must be a positive integer", vErr.Message)
}

func TestFieldValidationErrorMessageIsSorted(t *testing.T) {
	err := NewFieldValidationError(map[string][]string{
		"description": {"Description is required"},
		"amount":      {"Amount must be positive"},
	})

	assert.Equal(t, "Validation failed: amount: Amount must be positive, description: Description is required", err.Error())
	assert.Len(t, err.Fields, 2)
}

func TestNotFoundErrorMatchesSentinel(t *testing.T) {
	err := NewNotFoundError("Expense with ID 7 not found")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Expense with ID 7 not found", err.Error())
}

func TestServiceErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewServiceError("Failed to create expense", cause)

	assert.ErrorIs(t, err, ErrService)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to create expense: connection refused", err.Error())
}

func TestAppErrorUnwraps(t *testing.T) {
	cause := errors.New("tx closed")
	err := NewAppError(500, "failed to commit transaction", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 500, err.Code)
	assert.Equal(t, "failed to commit transaction", NewAppError(500, "failed to commit transaction", nil).Error())
}
