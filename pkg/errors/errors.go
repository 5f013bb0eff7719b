// Package errors provides structured error handling for the Umbra framework.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInit indicates an initialization error, such as a missing host capability.
	KindInit
	// KindDefine indicates an invalid or conflicting component definition.
	KindDefine
	// KindParse indicates a document parsing failure.
	KindParse
	// KindRender indicates a rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindDefine:
		return "define"
	case KindParse:
		return "parse"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// UmbraError represents a structured error in the Umbra framework.
type UmbraError struct {
	// Op is the operation that failed (e.g., "component.NewRegistry").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Tag is the component tag involved, if applicable.
	Tag string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *UmbraError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("%s [%s] tag=%s: %v", e.Op, e.Kind, e.Tag, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *UmbraError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "scheduler.Flush").
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

// Handler receives errors reported by the Umbra framework.
type Handler interface {
	// HandleError is called when an error occurs.
	HandleError(err *UmbraError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
