// Package api
// Author: momentics <momentics@gmail.com>
//
// Error kinds and structured error type for hioload-ring.

package api

import (
	"errors"
	"fmt"
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeCapacityExceeded
	ErrCodeEmptyBuffer
	ErrCodeIndexOutOfRange
	ErrCodeInvalidArgument
	ErrCodeInvalidState
	ErrCodeInternal
)

var codeNames = map[ErrorCode]string{
	ErrCodeOK:               "ok",
	ErrCodeCapacityExceeded: "capacity exceeded",
	ErrCodeEmptyBuffer:      "empty buffer",
	ErrCodeIndexOutOfRange:  "index out of range",
	ErrCodeInvalidArgument:  "invalid argument",
	ErrCodeInvalidState:     "invalid state",
	ErrCodeInternal:         "internal error",
}

// String returns the human-readable name of the code.
func (c ErrorCode) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("error code %d", int(c))
}

// Sentinel errors, one per kind. Match them with errors.Is; wrapped
// errors returned by the ring package still compare equal.
var (
	ErrCapacityExceeded = &Error{Code: ErrCodeCapacityExceeded, Message: "ring capacity exceeded"}
	ErrEmptyBuffer      = &Error{Code: ErrCodeEmptyBuffer, Message: "ring buffer is empty"}
	ErrIndexOutOfRange  = &Error{Code: ErrCodeIndexOutOfRange, Message: "index out of range"}
	ErrInvalidArgument  = &Error{Code: ErrCodeInvalidArgument, Message: "invalid argument"}
	ErrInvalidState     = &Error{Code: ErrCodeInvalidState, Message: "invalid state"}
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Is reports whether target carries the same code, so a contextual
// error built with NewError matches the sentinel of its kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
// Never call it on the package sentinels.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// CodeOf extracts the ErrorCode from err, ErrCodeOK for nil and
// ErrCodeInternal for errors that carry no code.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}
