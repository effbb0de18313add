// Package errors provides sentinel errors and structured error details for
// the logpanel CLI.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

// DetailError captures structured error information for display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Field is the configuration key or flag involved (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, field, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewUnresolvedPanelError creates an error for a panel name that does not
// match any module.
func NewUnresolvedPanelError(name string, known []string) error {
	return &DetailError{
		Type:    "unknown panel",
		Message: fmt.Sprintf("panel %q does not match any module", name),
		Context: map[string]string{"Known": strings.Join(known, ", ")},
		Hint:    "Panel names are case-sensitive, e.g. VISITORS or STATUS_CODES",
		Cause:   ErrNameNotResolved,
	}
}

// NewInactivePanelError creates a precondition error for navigation from a
// module that is not in the active registry.
func NewInactivePanelError(name string) error {
	return &DetailError{
		Type:    "inactive panel",
		Message: fmt.Sprintf("panel %q is not active", name),
		Hint:    "Run 'logpanel panels list' to see the active panels",
		Cause:   ErrPrecondition,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
