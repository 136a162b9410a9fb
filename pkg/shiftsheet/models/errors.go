package models

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates the requested worksheet is absent from a workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// LayoutError indicates a required landmark row or column is missing.
// It is fatal for the file it was raised on.
type LayoutError struct {
	Reason string
}

func (e *LayoutError) Error() string {
	return "layout error: " + e.Reason
}

// NewLayoutError creates a new LayoutError.
func NewLayoutError(format string, args ...interface{}) *LayoutError {
	return &LayoutError{Reason: fmt.Sprintf(format, args...)}
}

// ParseError indicates a time-of-day or rate value failed to convert.
type ParseError struct {
	Kind  string // "time", "rate", "date"
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s %q: %v", e.Kind, e.Value, e.Err)
	}
	return fmt.Sprintf("parse %s %q", e.Kind, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(kind, value string, err error) *ParseError {
	return &ParseError{Kind: kind, Value: value, Err: err}
}
