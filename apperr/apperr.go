// Package apperr defines the failure kinds service operations report.
// Services return these instead of writing HTTP responses; the error
// translator middleware is the only place they become status codes.
package apperr

import "errors"

// Kind sentinels, matched with errors.Is at the boundary.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("already exists")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// NotFound reports a natural-key or collection lookup miss.
func NotFound(msg string) error { return &kindError{kind: ErrNotFound, msg: msg} }

// Validation reports one or more violated field constraints. msg carries the
// human-readable message for every violation.
func Validation(msg string) error { return &kindError{kind: ErrValidation, msg: msg} }

// Conflict reports a natural-key collision on insert.
func Conflict(msg string) error { return &kindError{kind: ErrConflict, msg: msg} }
