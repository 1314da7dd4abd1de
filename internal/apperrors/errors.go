package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrService indicates an unexpected failure in the persistence or aggregation path.
var ErrService = errors.New("service error")

// AppError carries an HTTP-ish status code alongside a message and the underlying cause.
// Repository helpers use it for infrastructure failures (begin/commit/rollback).
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ValidationError reports malformed or out-of-range input.
// Fields maps a field name to its human readable messages and may be empty
// for errors that are not tied to a single field.
type ValidationError struct {
	Message string
	Fields  map[string][]string
}

// NewValidationError creates a ValidationError without field details.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewFieldValidationError creates a ValidationError from field level messages.
func NewFieldValidationError(fields map[string][]string) *ValidationError {
	return &ValidationError{Message: "Validation failed: " + formatFields(fields), Fields: fields}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Message string
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ServiceError wraps an unclassified failure from storage or aggregation.
// Message is safe to show to callers; Err keeps the cause for operators.
type ServiceError struct {
	Message string
	Err     error
}

// NewServiceError creates a ServiceError.
func NewServiceError(message string, err error) *ServiceError {
	return &ServiceError{Message: message, Err: err}
}

func (e *ServiceError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func (e *ServiceError) Is(target error) bool {
	return target == ErrService
}

func formatFields(fields map[string][]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(fields[name], "; ")))
	}
	return strings.Join(parts, ", ")
}
