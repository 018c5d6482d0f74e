// Package errors provides structured error handling for the Loom toolkit.
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
	// KindProperty indicates a property access failure.
	KindProperty
	// KindTemplate indicates a widget template construction defect.
	KindTemplate
	// KindState indicates a state update failure.
	KindState
	// KindEvent indicates an event dispatch failure.
	KindEvent
	// KindTheme indicates a theme loading or validation error.
	KindTheme
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindProperty:
		return "property"
	case KindTemplate:
		return "template"
	case KindState:
		return "state"
	case KindEvent:
		return "event"
	case KindTheme:
		return "theme"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// LoomError represents a structured error in the Loom toolkit.
type LoomError struct {
	// Op is the operation that failed (e.g., "theme.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Widget is the debug name of the widget involved, if applicable.
	Widget string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LoomError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LoomError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.Dispatch").
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

// PropertyNotFoundError reports access to a property type that a widget
// container never declared.
type PropertyNotFoundError struct {
	// Property is the type name of the missing property.
	Property string
	// Widget is the debug name of the container, if known.
	Widget string
}

func (e *PropertyNotFoundError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("property %s not found on widget %s", e.Property, e.Widget)
	}
	return fmt.Sprintf("property %s not found", e.Property)
}

// IsNotFound reports whether err is a PropertyNotFoundError.
func IsNotFound(err error) bool {
	var notFound *PropertyNotFoundError
	return stderrors.As(err, &notFound)
}

// StateError represents a failure during a widget's state update.
type StateError struct {
	// Widget is the debug name of the widget whose state failed.
	Widget string
	// State is the type name of the state implementation.
	State string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *StateError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s state update (%s): %v", e.Widget, e.State, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s state update (%s): %v", e.Widget, e.State, e.Err)
	}
	return fmt.Sprintf("unknown error in %s state update (%s)", e.Widget, e.State)
}

func (e *StateError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the Loom toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *LoomError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleStateError is called when a widget state update fails.
	HandleStateError(err *StateError)
}
