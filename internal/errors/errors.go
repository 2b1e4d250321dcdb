package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents an input validation failure
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// UserError represents an error caused by user input or configuration.
// Suggestion can provide a concrete fix for the user.
type UserError struct {
	Message    string
	Suggestion string
	Err        error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a UserError with a message and optional suggestion.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion}
}

// WrapUserError wraps an underlying error with a user-facing message and suggestion.
func WrapUserError(err error, message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion, Err: err}
}

// ShapeError reports a mismatch between the column count and the number of
// values supplied for a row or column. Want is the count the table expected,
// Got the count it received.
type ShapeError struct {
	Op      string
	Want    int
	Got     int
	Message string
}

func (e *ShapeError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: expected %d values, got %d", e.Op, e.Want, e.Got)
}

// NewShapeError creates a ShapeError for a count mismatch.
func NewShapeError(op string, want, got int) *ShapeError {
	return &ShapeError{Op: op, Want: want, Got: got}
}

// IndexError reports a column index outside the valid range [0, Len).
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: column index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

// InvalidSelectorError reports an unrecognized render style.
type InvalidSelectorError struct {
	Value string
}

func (e *InvalidSelectorError) Error() string {
	return fmt.Sprintf("invalid table style %q", e.Value)
}

// SourceError attaches the input source (file path or "stdin") and, when
// known, a 1-based line number to a decoding error.
type SourceError struct {
	Source string
	Line   int
	Err    error
}

// WrapSource wraps err with its input location.
// Line can be 0 if the position is unknown.
// Returns nil if err is nil.
func WrapSource(source string, line int, err error) error {
	if err == nil {
		return nil
	}
	return &SourceError{Source: source, Line: line, Err: err}
}

func (e *SourceError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Type checkers
func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}

func IsShapeError(err error) bool {
	var e *ShapeError
	return errors.As(err, &e)
}

func IsIndexError(err error) bool {
	var e *IndexError
	return errors.As(err, &e)
}

func IsInvalidSelectorError(err error) bool {
	var e *InvalidSelectorError
	return errors.As(err, &e)
}

func IsSourceError(err error) bool {
	var e *SourceError
	return errors.As(err, &e)
}

// IsUsageError reports whether err was caused by the caller's input rather
// than the environment.
func IsUsageError(err error) bool {
	return IsUserError(err) || IsValidationError(err) || IsShapeError(err) ||
		IsIndexError(err) || IsInvalidSelectorError(err)
}

// UserSuggestion returns a suggestion string for errors that carry or imply one.
func UserSuggestion(err error) string {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Suggestion
	}
	var se *InvalidSelectorError
	if errors.As(err, &se) {
		return "Use one of: default, markdown, alternative, minimal"
	}
	var ie *IndexError
	if errors.As(err, &ie) && ie.Len > 0 {
		return fmt.Sprintf("Column indexes are zero-based; valid values are 0..%d", ie.Len-1)
	}
	return ""
}
