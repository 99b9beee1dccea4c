// Package errors augments the standard errors package with an Error type
// whose Wrap method attaches a cause to a sentinel without mutating it.
// Sentinels declared in pkg/status stay comparable with errors.Is while
// call sites decorate them with the underlying failure.
package errors

import (
	stderr "errors"
)

var _ error = New("")

// New creates a sentinel Error.
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Error carries a message, the sentinel it derives from, and an optional cause.
type Error struct {
	msg  string
	kind *Error
	err  error
}

// Error reports the message, followed by the chain of causes.
func (e *Error) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

// Unwrap yields the nested cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap returns a copy of the sentinel carrying err as its cause.
// The receiver is left untouched, so package-level sentinels remain
// safe to share across goroutines.
func (e *Error) Wrap(err error) *Error {
	kind := e.kind
	if kind == nil {
		kind = e
	}
	return &Error{msg: e.msg, kind: kind, err: err}
}

// Is matches the error itself and the sentinel it was derived from.
func (e *Error) Is(target error) bool {
	return e == target || (e.kind != nil && e.kind == target)
}

// As finds the first error in err's chain matching target
// (a shortcut to the standard library errors.As).
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target
// (a shortcut to the standard library errors.Is).
func Is(err, target error) bool {
	return stderr.Is(err, target)
}
