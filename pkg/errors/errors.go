// Package errors provides structured error reporting for the modal presenter.
//
// Presenter failures are never fatal: each one is reported to a [Handler]
// and the operation completes as a no-op.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindReleased indicates a continuation fired after its presenter was released.
	KindReleased
	// KindGeometry indicates a content or host view was missing when
	// geometry had to be computed.
	KindGeometry
	// KindConfig indicates an invalid configuration value.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindReleased:
		return "released"
	case KindGeometry:
		return "geometry"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

var (
	// ErrReleased is the cause of KindReleased errors.
	ErrReleased = stderrors.New("modal presenter has been released")
	// ErrMissingGeometry is the cause of KindGeometry errors.
	ErrMissingGeometry = stderrors.New("content or host view is missing")
)

// Error represents a structured presenter error.
type Error struct {
	// Op is the operation that failed (e.g., "presenter.Present").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an Error for op with the given kind and cause.
func New(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "presenter.Dismiss").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors reported by the presenter.
type Handler interface {
	// HandleError is called when an operation degrades to a no-op.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
