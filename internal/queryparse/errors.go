package queryparse

import (
	"errors"
	"fmt"

	"github.com/marbledb/marble/internal/edn"
)

// ParseError represents a failure to lower a query tree into a
// specification.
//
// Parse errors include:
//   - Invalid input: a tree node did not match the grammar expected at
//     its position
//   - Missing field: a mandatory clause (:find or :where) is absent
//   - Read error: the textual reader failed before parsing began
//
// ParseError includes the offending value or clause for diagnostics.
type ParseError struct {
	// Code identifies the error category.
	Code ParseErrorCode

	// Message is a human-readable description.
	Message string

	// Value is the offending tree node (invalid-input errors).
	Value edn.Value

	// Clause names the absent clause keyword (missing-field errors).
	Clause string

	// Err is the underlying reader error (read errors).
	Err error
}

// ParseErrorCode categorizes parse errors.
type ParseErrorCode string

const (
	// ErrCodeInvalidInput indicates a tree node that doesn't match the
	// grammar at its position.
	ErrCodeInvalidInput ParseErrorCode = "INVALID_INPUT"

	// ErrCodeMissingField indicates an absent mandatory clause.
	ErrCodeMissingField ParseErrorCode = "MISSING_FIELD"

	// ErrCodeRead indicates a lower-level reader failure, passed through
	// for uniform propagation.
	ErrCodeRead ParseErrorCode = "READ_ERROR"
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch {
	case e.Value != nil:
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, edn.WriteString(e.Value))
	case e.Clause != "":
		return fmt.Sprintf("%s: %s: :%s", e.Code, e.Message, e.Clause)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// Unwrap exposes the underlying reader error, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsInvalidInput returns true if the error is an invalid-input parse
// error. Uses errors.As to handle wrapped errors.
func IsInvalidInput(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Code == ErrCodeInvalidInput
}

// IsMissingField returns true if the error is a missing-field parse
// error. Uses errors.As to handle wrapped errors.
func IsMissingField(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Code == ErrCodeMissingField
}

// IsReadError returns true if the error wraps a lower-level reader
// failure. Uses errors.As to handle wrapped errors.
func IsReadError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Code == ErrCodeRead
}

// newInvalidInput creates a ParseError for a node that doesn't match the
// grammar at its position.
func newInvalidInput(message string, v edn.Value) *ParseError {
	return &ParseError{
		Code:    ErrCodeInvalidInput,
		Message: message,
		Value:   v,
	}
}

// newMissingField creates a ParseError for an absent mandatory clause.
func newMissingField(clause string) *ParseError {
	return &ParseError{
		Code:    ErrCodeMissingField,
		Message: "query is missing a mandatory clause",
		Clause:  clause,
	}
}

// newReadError wraps a reader failure for uniform propagation.
func newReadError(err error) *ParseError {
	return &ParseError{
		Code:    ErrCodeRead,
		Message: "could not read query",
		Err:     err,
	}
}
