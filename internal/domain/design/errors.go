package design

import (
	"errors"
	"fmt"
)

// ErrorCode identifies well-known domain error categories used across the
// design document layer.
type ErrorCode string

const (
	ErrCodeComponentNotFound ErrorCode = "COMPONENT_NOT_FOUND"
	ErrCodeInstanceNotFound  ErrorCode = "INSTANCE_NOT_FOUND"
	ErrCodeValidation        ErrorCode = "VALIDATION_ERROR"
	ErrCodeDuplicate         ErrorCode = "DUPLICATE_ID"
	ErrCodeType              ErrorCode = "INVALID_TYPE"
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrCodeCancelled         ErrorCode = "CANCELLED"
	ErrCodeInternal          ErrorCode = "INTERNAL_ERROR"
)

// DomainError represents a typed error enriched with contextual data while
// remaining free from infrastructure dependencies.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is allows errors.Is comparisons against other DomainError values.
func (e *DomainError) Is(target error) bool {
	var domainErr *DomainError
	if !errors.As(target, &domainErr) {
		return false
	}
	return e.Code == domainErr.Code && e.Message == domainErr.Message
}

// WithContext clones the error with additional contextual metadata.
func (e *DomainError) WithContext(ctx map[string]interface{}) *DomainError {
	if e == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Context: merged,
	}
}

// HasCode reports whether err (or anything it wraps) is a DomainError with
// the given code.
func HasCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		return false
	}
	return domainErr.Code == code
}

// IsComponentNotFound reports whether err marks a dangling definition reference.
func IsComponentNotFound(err error) bool {
	return HasCode(err, ErrCodeComponentNotFound)
}

// IsInstanceNotFound reports whether err marks a mutation against an unknown instance.
func IsInstanceNotFound(err error) bool {
	return HasCode(err, ErrCodeInstanceNotFound)
}

func newDomainError(code ErrorCode, message string, cause error, context map[string]interface{}) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// Helper constructors to simplify error creation throughout the domain.

func newComponentNotFoundError(componentID string) *DomainError {
	return newDomainError(ErrCodeComponentNotFound, "component not found", nil, map[string]interface{}{
		"component_id": componentID,
	})
}

func newInstanceNotFoundError(instanceID string) *DomainError {
	return newDomainError(ErrCodeInstanceNotFound, "instance not found", nil, map[string]interface{}{
		"instance_id": instanceID,
	})
}

func newValidationError(message string, context map[string]interface{}) *DomainError {
	return newDomainError(ErrCodeValidation, message, nil, context)
}

func newDuplicateError(kind, identifier string) *DomainError {
	return newDomainError(ErrCodeDuplicate, "duplicate identifier", nil, map[string]interface{}{
		"kind": kind,
		"id":   identifier,
	})
}

func newTypeError(expected string, actual string) *DomainError {
	return newDomainError(ErrCodeType, "invalid type", nil, map[string]interface{}{
		"expected": expected,
		"actual":   actual,
	})
}
