package errors

import (
	"fmt"
)

// ParseError represents a document decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Format  string
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

// NewFormatParseError constructs a ParseError that names the decoder.
func NewFormatParseError(path, format string, line int, err error) error {
	parseErr := NewParseError(path, line, err).(*ParseError)
	parseErr.Format = format
	return parseErr
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	prefix := "parse error"
	if e.Format != "" {
		prefix = e.Format + " parse error"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s:%d: %s", prefix, e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", prefix, e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures document schema violations.
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

// ScriptError reports the edit-script operation that failed.
type ScriptError struct {
	Index int
	Op    string
	Err   error
}

// NewScriptError constructs a ScriptError for the operation at index.
func NewScriptError(index int, op string, err error) error {
	return &ScriptError{Index: index, Op: op, Err: err}
}

func (e *ScriptError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("script error at ops[%d] (%s): %v", e.Index, e.Op, e.Err)
	}
	return fmt.Sprintf("script error at ops[%d]: %v", e.Index, e.Err)
}

// Unwrap exposes the root error.
func (e *ScriptError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
