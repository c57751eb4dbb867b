package parser

import (
	"errors"
	"fmt"
)

// ErrMalformedInput matches every MalformedInputError via errors.Is.
var ErrMalformedInput = errors.New("malformed input")

// Reasons reported by MalformedInputError.
const (
	ReasonNoWorksheet   = "no worksheet present"
	ReasonTooFewColumns = "at least 3 columns are required: name, class and measurement areas"
	ReasonNoCommonAreas = "no common measurement areas between periods"
	ReasonUnreadable    = "workbook cannot be read"
)

// MalformedInputError reports a workbook that violates the expected shape.
type MalformedInputError struct {
	SheetName string
	Reason    string
	Err       error
}

func (e *MalformedInputError) Error() string {
	msg := e.Reason
	if e.SheetName != "" {
		msg = fmt.Sprintf("sheet %q: %s", e.SheetName, e.Reason)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return "malformed input: " + msg
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// NewMalformedInputError creates a new MalformedInputError.
func NewMalformedInputError(sheetName, reason string, err error) *MalformedInputError {
	return &MalformedInputError{
		SheetName: sheetName,
		Reason:    reason,
		Err:       err,
	}
}
