package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeSaveFailed   ErrorCode = "SAVE_FAILED"

	// Entity specific errors
	CodeExamNotFound     ErrorCode = "EXAM_NOT_FOUND"
	CodeExerciseNotFound ErrorCode = "EXERCISE_NOT_FOUND"
	CodeImageNotFound    ErrorCode = "IMAGE_NOT_FOUND"
	CodeMarkdownNotFound ErrorCode = "MARKDOWN_NOT_FOUND"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"
)

// DomainError represents a domain-specific error. Cause is kept for
// logging only and is never serialized to callers.
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

// NewSaveFailedError wraps a persistence failure. The original cause is
// discarded from the caller-facing message and retained only for logging.
func NewSaveFailedError(message string, cause error) *DomainError {
	return NewError(CodeSaveFailed, message, cause)
}

func NewExamNotFoundError(examID string) *DomainError {
	return NewError(CodeExamNotFound, fmt.Sprintf("Exam not found with ID: %s", examID), nil)
}

func NewExerciseNotFoundError(exerciseID string) *DomainError {
	return NewError(CodeExerciseNotFound, fmt.Sprintf("Exercise not found with ID: %s", exerciseID), nil)
}

func NewImageNotFoundError(path string) *DomainError {
	return NewError(CodeImageNotFound, fmt.Sprintf("Image not found at path: %s", path), nil)
}

func NewMarkdownNotFoundError(examID string) *DomainError {
	return NewError(CodeMarkdownNotFound, fmt.Sprintf("Markdown not found for exam: %s", examID), nil)
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Code    ErrorCode `json:"code"`
	Field   string    `json:"field"`
	Message string    `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field-level validation failures.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", e[0].Error())
}

// NewValidationError creates a generic validation error without a field.
func NewValidationError(message string) ValidationError {
	return ValidationError{Code: CodeValidation, Message: message}
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Code: CodeMissingField, Field: field, Message: fmt.Sprintf("%s is required", field)}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Code: CodeInvalidFormat, Field: field, Message: fmt.Sprintf("invalid format: %s", value)}
}

func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{Code: CodeOutOfRange, Field: field, Message: fmt.Sprintf("%d is out of range [%d, %d]", value, min, max)}
}
