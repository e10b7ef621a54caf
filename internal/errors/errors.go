// Package errors defines the CLI-facing error taxonomy for spur.
//
// Errors carry a category (what subsystem failed), the operation that was
// underway, and an optional suggestion shown to the user below the error
// message. All errors wrap their cause and work with errors.Is/errors.As.
package errors

import (
	"errors"
	"fmt"
)

// Category classifies an error by the subsystem that produced it.
type Category int

const (
	CategoryValidation Category = iota
	CategoryTemplate
	CategoryConfig
	CategoryProcess
	CategoryIO
)

// String returns the string representation of the category
func (c Category) String() string {
	switch c {
	case CategoryValidation:
		return "validation"
	case CategoryTemplate:
		return "template"
	case CategoryConfig:
		return "config"
	case CategoryProcess:
		return "process"
	case CategoryIO:
		return "io"
	default:
		return "unknown"
	}
}

// CLIError is a user-facing error with category, operation context, and an
// optional remediation suggestion.
type CLIError struct {
	Category   Category
	Op         string // short operation name, e.g. "download template"
	Err        error  // wrapped cause
	Suggestion string // optional one-line hint, empty when none applies
}

// Error implements the error interface
func (e *CLIError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s failed", e.Category, e.Op)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the wrapped cause
func (e *CLIError) Unwrap() error { return e.Err }

// New creates a CLIError wrapping cause.
func New(category Category, op string, cause error) *CLIError {
	return &CLIError{Category: category, Op: op, Err: cause}
}

// WithSuggestion returns a copy of the error carrying a remediation hint.
func (e *CLIError) WithSuggestion(s string) *CLIError {
	dup := *e
	dup.Suggestion = s
	return &dup
}

// SuggestionFor extracts the suggestion from an error chain, if any.
func SuggestionFor(err error) string {
	var ce *CLIError
	if errors.As(err, &ce) {
		return ce.Suggestion
	}
	return ""
}

// CategoryOf reports the category of the first CLIError in the chain.
// Errors outside the taxonomy report CategoryIO.
func CategoryOf(err error) Category {
	var ce *CLIError
	if errors.As(err, &ce) {
		return ce.Category
	}
	return CategoryIO
}
