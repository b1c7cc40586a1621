package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// Kind classifies a coded domain error. Every kind unwraps to one of the
// sentinel errors above.
type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
	KindForbidden  Kind = "forbidden"
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

func (k Kind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindConflict:
		return ErrConflict
	case KindNotFound:
		return ErrNotFound
	case KindForbidden:
		return ErrForbidden
	default:
		return nil
	}
}

// Error is a classified domain failure identified by a stable dotted code
// such as "Column.WipLimit.Violation".
//
// Two *Error values match under errors.Is when their codes are equal, so
// package-level values can be used as identity sentinels:
//
//	errors.Is(err, board.ErrWipLimitViolation) // by code
//	errors.Is(err, domain.ErrConflict)         // by kind
type Error struct {
	Code    string
	Message string
	Kind    Kind
}

// Validation returns a validation-kind error.
func Validation(code, message string) *Error {
	return &Error{Code: code, Message: message, Kind: KindValidation}
}

// Conflict returns a conflict-kind error.
func Conflict(code, message string) *Error {
	return &Error{Code: code, Message: message, Kind: KindConflict}
}

// NotFound returns a not-found-kind error.
func NotFound(code, message string) *Error {
	return &Error{Code: code, Message: message, Kind: KindNotFound}
}

// Forbidden returns a forbidden-kind error.
func Forbidden(code, message string) *Error {
	return &Error{Code: code, Message: message, Kind: KindForbidden}
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Errors carries one or more classified failures from a single operation.
type Errors []*Error

func (es Errors) Error() string {
	parts := make([]string, 0, len(es))
	for _, e := range es {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

func (es Errors) Unwrap() []error {
	out := make([]error, 0, len(es))
	for _, e := range es {
		out = append(out, e)
	}
	return out
}

// Join flattens the given errors into a single failure. Nil entries are
// skipped. It returns nil when nothing remains, the lone *Error when exactly
// one coded error remains, and an Errors value otherwise. Uncoded errors are
// joined with errors.Join after the coded ones.
func Join(errs ...error) error {
	var coded Errors
	var other []error
	for _, err := range errs {
		switch e := err.(type) {
		case nil:
		case *Error:
			coded = append(coded, e)
		case Errors:
			coded = append(coded, e...)
		default:
			other = append(other, err)
		}
	}

	switch {
	case len(other) > 0 && len(coded) > 0:
		return errors.Join(coded, errors.Join(other...))
	case len(other) > 0:
		return errors.Join(other...)
	case len(coded) == 0:
		return nil
	case len(coded) == 1:
		return coded[0]
	default:
		return coded
	}
}

// Codes returns the codes of every *Error reachable from err, in traversal
// order. It returns nil for nil or uncoded errors.
func Codes(err error) []string {
	var codes []string
	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		if coded, ok := e.(*Error); ok {
			codes = append(codes, coded.Code)
			return
		}
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)
	return codes
}

// KindOf returns the kind of the first coded error in err's tree.
func KindOf(err error) (Kind, bool) {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Kind, true
	}
	return "", false
}

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
