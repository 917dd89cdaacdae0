// Package apperr defines the stable error taxonomy shared across the
// pipeline. Every failure a caller may want to branch on carries one of
// the kinds below; transport and prompt detail stays wrapped underneath.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind string

const (
	// KindNotFound marks lookups of unknown documents or sessions.
	KindNotFound Kind = "not_found"

	// KindValidation marks rejected caller input.
	KindValidation Kind = "validation"

	// KindOracle marks text-generation calls that failed or returned
	// nothing usable.
	KindOracle Kind = "oracle"

	// KindParse marks oracle output that could not be located or decoded.
	KindParse Kind = "parse"

	// KindSchema marks decoded output that violates its structural
	// contract.
	KindSchema Kind = "schema"

	// KindGuardrail marks generated assessment content that failed a
	// quality rule.
	KindGuardrail Kind = "guardrail"
)

// Error is a kinded error with an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error of the given kind around cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: cause}
}

// NotFound reports a missing entity.
func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, format, args...)
}

// Validation reports rejected caller input.
func Validation(format string, args ...any) *Error {
	return New(KindValidation, format, args...)
}

// Guardrail reports a failed content quality rule.
func Guardrail(format string, args ...any) *Error {
	return New(KindGuardrail, format, args...)
}

// KindOf returns the kind of err, or "" when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
