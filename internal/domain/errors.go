package domain

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a failure so the command boundary can decide what
// to tell the invoker without inspecting platform error types.
type ErrorCode string

const (
	ErrCodeInvalid      ErrorCode = "INVALID"
	ErrCodeDenied       ErrorCode = "DENIED"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeStoreCorrupt ErrorCode = "STORE_CORRUPT"
	ErrCodeStoreRead    ErrorCode = "STORE_READ"
	ErrCodeStoreWrite   ErrorCode = "STORE_WRITE"
	ErrCodeTransport    ErrorCode = "TRANSPORT"
)

// Error is a coded domain error. Message is safe to show to the invoker.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Errorf builds a domain error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Common domain errors.
var (
	ErrNotAuthorized   = NewError(ErrCodeDenied, "❌ You are not allowed to use this command.")
	ErrTaskNotFound    = NewError(ErrCodeNotFound, "⚠️ Task id not found.")
	ErrMemberNotFound  = NewError(ErrCodeNotFound, "⚠️ That user is not a member of this guild.")
	ErrRoleNotFound    = NewError(ErrCodeNotFound, "⚠️ Role not found.")
	ErrChannelNotFound = NewError(ErrCodeNotFound, "⚠️ Channel not found.")
)

// IsDomainError reports whether err carries the given code.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}

// CodeOf extracts the domain code, or empty for foreign errors.
func CodeOf(err error) ErrorCode {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code
	}
	return ""
}
