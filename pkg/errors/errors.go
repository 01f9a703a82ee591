// Package errors provides the typed errors used across ptadiff. They
// enable programmatic error checking via errors.Is and carry enough
// context (column label, sheet row) to render precise user messages.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the ptadiff system
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAmbiguous indicates that a match key was not unique within a snapshot
	ErrAmbiguous = errors.New("ambiguous match key")
)

// ValidationError represents a precondition failure on an input file,
// snapshot, or schema.
type ValidationError struct {
	Column  string // header label or schema field involved, if any
	Row     int    // 1-based sheet row, if any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	switch {
	case e.Column != "" && e.Row > 0:
		return fmt.Sprintf("validation failed for column %q at row %d: %s", e.Column, e.Row, e.Message)
	case e.Column != "":
		return fmt.Sprintf("validation failed for column %q: %s", e.Column, e.Message)
	case e.Row > 0:
		return fmt.Sprintf("validation failed at row %d: %s", e.Row, e.Message)
	default:
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(column string, row int, message string) *ValidationError {
	return &ValidationError{Column: column, Row: row, Message: message}
}

// MissingColumnsError reports required header labels absent from a sheet.
type MissingColumnsError struct {
	File    string
	Sheet   string
	Columns []string
}

// Error implements the error interface
func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("sheet %q in %s is missing required columns: %s",
		e.Sheet, e.File, strings.Join(e.Columns, ", "))
}

// Is implements errors.Is support
func (e *MissingColumnsError) Is(target error) bool {
	return target == ErrInvalidInput
}

// AmbiguityError reports a match key occurring on more than one row of a
// snapshot. The engine resolves it deterministically (first occurrence by
// row position) and reports the shadowed positions.
type AmbiguityError struct {
	Key       string
	Positions []int // all sheet rows carrying the key, in order
}

// Error implements the error interface
func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("match key %q occurs on %d rows %v; first occurrence wins",
		e.Key, len(e.Positions), e.Positions)
}

// Is implements errors.Is support
func (e *AmbiguityError) Is(target error) bool {
	return target == ErrAmbiguous
}

// ParseError represents an error when parsing file content
type ParseError struct {
	Format  string // "xlsx", "yaml", etc.
	File    string
	Row     int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Row > 0 {
		return fmt.Sprintf("parse error in %s file %s at row %d: %s", e.Format, e.File, e.Row, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, row int, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Row: row, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "open", "stat"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{Operation: operation, Path: path, Message: message, Err: err}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Helper functions for error checking

// IsValidation checks if an error is an invalid input error
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAmbiguous checks if an error reports a non-unique match key
func IsAmbiguous(err error) bool {
	return errors.Is(err, ErrAmbiguous)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, 0, err.Error(), err)
}
