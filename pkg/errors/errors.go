package errors

import (
	"fmt"
)

// DeclarationError reports a problem registering an attribute declaration at
// definition time: a duplicate name after inclusion, an invalid default, or
// a bad include option.
type DeclarationError struct {
	Attr    string
	Message string
	Err     error
}

// NewDeclarationError constructs a DeclarationError for the named attribute.
func NewDeclarationError(attr, message string, err error) error {
	return &DeclarationError{Attr: attr, Message: message, Err: err}
}

func (e *DeclarationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Attr != "" {
		return fmt.Sprintf("declaration error: %s: %s", e.Attr, e.Message)
	}
	return fmt.Sprintf("declaration error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *DeclarationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a value rejected at assignment time. It carries the
// attribute name, the spec kind that rejected the value, and the value itself
// so callers can see exactly what was refused.
type ValidationError struct {
	Attr  string
	Kind  string
	Value any
	Err   error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(attr, kind string, value any, err error) error {
	return &ValidationError{Attr: attr, Kind: kind, Value: value, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Attr != "" {
		return fmt.Sprintf("validation error: %s (%s): rejected %v: %v", e.Attr, e.Kind, e.Value, e.Err)
	}
	return fmt.Sprintf("validation error: %s: rejected %v: %v", e.Kind, e.Value, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ThemeError captures stylesheet parsing and validation failures with
// optional line metadata.
type ThemeError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewThemeError constructs a ThemeError.
func NewThemeError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ThemeError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ThemeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("theme error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("theme error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ThemeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
