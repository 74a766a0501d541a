package scheduling

import (
	"errors"
	"fmt"
)

// Error codes carried to clients as a structured kind field. Conflict
// detection keys off the code, never off marker strings in the message.
const (
	CodeValidation        = "VALIDATION"
	CodeSlotConflict      = "SLOT_CONFLICT"
	CodeNotAuthorized     = "NOT_AUTHORIZED"
	CodeIllegalTransition = "ILLEGAL_TRANSITION"
	CodeNotFound          = "NOT_FOUND"
)

// SchedulingError is a coded failure from the scheduling engine.
type SchedulingError struct {
	Code    string
	Message string
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &SchedulingError{Code: CodeValidation, Message: msg}
}

// NewConflictError carries a human-readable description of the clashing
// appointment so the caller can present a confirmation step.
func NewConflictError(description string) error {
	return &SchedulingError{Code: CodeSlotConflict, Message: description}
}

func NewAuthorizationError(msg string) error {
	return &SchedulingError{Code: CodeNotAuthorized, Message: msg}
}

func NewIllegalTransitionError(msg string) error {
	return &SchedulingError{Code: CodeIllegalTransition, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &SchedulingError{Code: CodeNotFound, Message: msg}
}

// CodeOf extracts the scheduling error code, or "" for untyped errors.
func CodeOf(err error) string {
	var se *SchedulingError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsConflict reports whether the error is a soft slot conflict that the
// caller may resolve with an explicit force override.
func IsConflict(err error) bool {
	return CodeOf(err) == CodeSlotConflict
}

func IsValidation(err error) bool {
	return CodeOf(err) == CodeValidation
}

func IsAuthorization(err error) bool {
	code := CodeOf(err)
	return code == CodeNotAuthorized || code == CodeIllegalTransition
}

func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}
