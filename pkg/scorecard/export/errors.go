package export

import "fmt"

// Export stages reported by Failure.
const (
	StageStart     = "start"
	StageRender    = "render"
	StageRasterize = "rasterize"
	StagePackage   = "package"
)

// Failure aborts an export run. Nothing of the run is kept.
type Failure struct {
	Stage string
	// File is the report being produced when the run failed, if any.
	File string
	Err  error
}

func (e *Failure) Error() string {
	if e.File != "" {
		return fmt.Sprintf("export failed at %s (%s): %v", e.Stage, e.File, e.Err)
	}
	return fmt.Sprintf("export failed at %s: %v", e.Stage, e.Err)
}

func (e *Failure) Unwrap() error {
	return e.Err
}

// NewFailure creates a new Failure.
func NewFailure(stage, file string, err error) *Failure {
	return &Failure{
		Stage: stage,
		File:  file,
		Err:   err,
	}
}
