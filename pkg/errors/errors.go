// Package errors defines the typed failures surfaced by catalog loading,
// rendering and snapshot tooling.
package errors

import (
	"fmt"
)

// ParseError reports a catalog document that could not be decoded.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a catalog field that failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError reports a button that could not be serialized.
type RenderError struct {
	EntryID string
	Err     error
}

// NewRenderError constructs a RenderError for the catalog entry.
func NewRenderError(entryID string, err error) error {
	return &RenderError{EntryID: entryID, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.EntryID != "" {
		return fmt.Sprintf("render error [%s]: %v", e.EntryID, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SnapshotError reports a failure reading or writing a stored snapshot.
type SnapshotError struct {
	Path string
	Op   string
	Err  error
}

// NewSnapshotError constructs a SnapshotError for op ("read", "write", ...)
// on path.
func NewSnapshotError(op, path string, err error) error {
	return &SnapshotError{Op: op, Path: path, Err: err}
}

func (e *SnapshotError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("snapshot error: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *SnapshotError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
