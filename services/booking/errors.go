package booking

import (
	"errors"
	"fmt"
)

// Error codes for the scheduling engine. Conflict is the only code callers
// are expected to retry, and only with a different slot.
const (
	CodeUnauthorized       = "unauthorized"
	CodeNotFound           = "not_found"
	CodeInvalidInput       = "invalid_input"
	CodePreconditionFailed = "precondition_failed"
	CodeConflict           = "conflict"
)

// Error is a typed engine error carrying a taxonomy code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewUnauthorized(msg string) error {
	return &Error{Code: CodeUnauthorized, Message: msg}
}

func NewNotFound(format string, args ...any) error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewInvalidInput(format string, args ...any) error {
	return &Error{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func NewPreconditionFailed(format string, args ...any) error {
	return &Error{Code: CodePreconditionFailed, Message: fmt.Sprintf(format, args...)}
}

func NewConflict(format string, args ...any) error {
	return &Error{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the taxonomy code of err, or empty for untyped errors.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
