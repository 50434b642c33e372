// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-threads.

package api

import "fmt"

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodePoolClosed
	ErrCodeSpawnFailed
	ErrCodeInternal
)

// Error represents a structured error with code, context and an optional
// underlying cause.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if len(e.Context) == 0 {
		return msg
	}
	return fmt.Sprintf("%s (context: %+v)", msg, e.Context)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WrapError creates a structured error around an underlying cause.
func WrapError(code ErrorCode, message string, err error) *Error {
	e := NewError(code, message)
	e.Err = err
	return e
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
