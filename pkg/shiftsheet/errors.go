package shiftsheet

import (
	"errors"
	"fmt"

	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/models"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrNoData indicates no input file produced usable shifts.
var ErrNoData = errors.New("no usable timesheet data")

// ErrSheetNotFound indicates the requested tab is absent from a workbook.
var ErrSheetNotFound = models.ErrSheetNotFound

// LayoutError indicates a required landmark row or column is missing.
type LayoutError = models.LayoutError

// ParseError indicates a time-of-day or rate value failed to convert.
type ParseError = models.ParseError

// FileError represents a failure while processing one input file.
type FileError struct {
	File  string
	Stage string // "read", "locate", "extract"
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file %q (%s): %v", e.File, e.Stage, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError.
func NewFileError(file, stage string, err error) *FileError {
	return &FileError{
		File:  file,
		Stage: stage,
		Err:   err,
	}
}
