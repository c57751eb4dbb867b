package scorecard

import (
	"errors"

	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/export"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/parser"
)

// MalformedInputError reports a workbook that cannot be loaded.
type MalformedInputError = parser.MalformedInputError

// ExportFailure reports an aborted export run.
type ExportFailure = export.Failure

// ErrMalformedInput matches every MalformedInputError via errors.Is.
var ErrMalformedInput = parser.ErrMalformedInput

// ErrNoArtifact indicates that no export archive is ready for the scope.
var ErrNoArtifact = errors.New("no export artifact ready")

// ErrNoStudents indicates that the current filter leaves nothing to show.
var ErrNoStudents = errors.New("no students in the current selection")

// ErrUnknownStudent indicates a student name not present in the selection.
var ErrUnknownStudent = errors.New("unknown student")

// ErrUnknownClass indicates a class label not present in the workbook.
var ErrUnknownClass = errors.New("unknown class")
