package chainmap

import (
	"errors"
	"fmt"
)

// Error is a chainmap failure carrying a structured error code.
//
// Codes have the form CM-<area>-<number>. Two errors match under errors.Is
// when their codes are equal, so callers compare against the sentinels below
// regardless of attached details.
type Error struct {
	Code    string // Error code (e.g., "CM-MAP-4040")
	Message string // Human-readable message
	Details string // Optional additional details
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is implements errors.Is() support for error comparison.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithDetails returns a copy of the error with additional details.
func (e *Error) WithDetails(details string) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

func newError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// ErrorCode extracts the code from err if it is (or wraps) an *Error.
func ErrorCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

var (
	// ErrInvalidArgument indicates a rejected construction parameter.
	ErrInvalidArgument = newError("CM-MAP-4000", "invalid argument")

	// ErrNotFound indicates the key is not present in the map.
	ErrNotFound = newError("CM-MAP-4040", "key not found")

	// ErrIteratorInvalid indicates an iterator that is end, stale, or
	// bound to a different map where a live position was required.
	ErrIteratorInvalid = newError("CM-ITR-4001", "invalid iterator")

	// ErrOutOfRange indicates a move past end, a move before begin, or a
	// dereference of end.
	ErrOutOfRange = newError("CM-ITR-4160", "iterator out of range")
)
