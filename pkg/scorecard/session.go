package scorecard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/logger"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/aggregate"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/chart"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/export"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/models"
)

// Scope selects which students an export covers.
type Scope string

const (
	// ScopeFiltered exports the students passing the class filter.
	ScopeFiltered Scope = "filtered"
	// ScopeAll exports every student of the workbook.
	ScopeAll Scope = "all"
)

// ParseScope validates a scope name.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeFiltered, ScopeAll:
		return Scope(s), nil
	default:
		return "", fmt.Errorf("invalid scope: %s (must be filtered or all)", s)
	}
}

// ArchiveName is the download file name of the scope's archive.
func (s Scope) ArchiveName() string {
	if s == ScopeAll {
		return "diagramok_minden_osztaly.zip"
	}
	return "diagramok_szurt.zip"
}

// Artifact is the session's export archive. Ready is false until an export
// run completes, and again after a failed run.
type Artifact struct {
	Ready bool     `json:"ready"`
	ID    string   `json:"id,omitempty"`
	Name  string   `json:"name,omitempty"`
	Scope Scope    `json:"scope,omitempty"`
	Data  []byte   `json:"-"`
	Files []string `json:"files,omitempty"`
	Pairs int      `json:"pairs"`
}

// Size is the archive length in bytes.
func (a Artifact) Size() int {
	return len(a.Data)
}

// Session holds one loaded workbook and the state derived from user
// selections. It is not safe for concurrent use.
type Session struct {
	opts     Options
	log      logger.Logger
	workbook *models.Workbook
	records  []models.ScoreRecord

	classFilter string
	artifact    Artifact
}

// Workbook returns the loaded workbook.
func (s *Session) Workbook() *models.Workbook { return s.workbook }

// Areas returns the effective measurement areas in canonical order.
func (s *Session) Areas() []string { return s.workbook.Areas }

// Periods returns the period labels in canonical order.
func (s *Session) Periods() []string { return s.workbook.Periods }

// Records returns every long-form record of the workbook.
func (s *Session) Records() []models.ScoreRecord { return s.records }

// Classes returns every class of the workbook.
func (s *Session) Classes() []string { return aggregate.Classes(s.records) }

// ClassFilter returns the active class filter; empty means all classes.
func (s *Session) ClassFilter() string { return s.classFilter }

// SetClassFilter restricts views and filtered exports to class. An empty
// class or aggregate.AllClasses clears the filter. A ready filtered-scope
// artifact is discarded when the filter changes.
func (s *Session) SetClassFilter(class string) error {
	if class == aggregate.AllClasses {
		class = ""
	}
	if class != "" && !contains(s.Classes(), class) {
		return fmt.Errorf("%w: %s", ErrUnknownClass, class)
	}
	if class != s.classFilter && s.artifact.Scope == ScopeFiltered {
		s.artifact = Artifact{}
	}
	s.classFilter = class
	return nil
}

// Filtered returns the records passing the class filter.
func (s *Session) Filtered() []models.ScoreRecord {
	return aggregate.FilterClass(s.records, s.classFilter)
}

// Students returns the students passing the class filter.
func (s *Session) Students() []string {
	return aggregate.Students(s.Filtered())
}

// Export renders every student of scope into a fresh archive, replacing any
// previous artifact. On failure the session is left with no artifact.
func (s *Session) Export(ctx context.Context, scope Scope, progress export.Progress) (*Artifact, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := s.log.Named("export")
	s.artifact = Artifact{}

	records := s.records
	if scope != ScopeAll {
		scope = ScopeFiltered
		records = s.Filtered()
	}

	log.Info(ctx, "export started",
		logger.String("run_id", runID),
		logger.String("scope", string(scope)),
		logger.String("format", string(s.format())))

	res, err := s.build(ctx, records, progress)
	if s.opts.Observer != nil {
		files, size := 0, 0
		if res != nil {
			files, size = len(res.Files), len(res.Data)
		}
		s.opts.Observer.ObserveExport(err, files, size, time.Since(start))
	}
	if err != nil {
		log.Error(ctx, "export failed", logger.String("run_id", runID), logger.Error(err))
		return nil, err
	}

	s.artifact = Artifact{
		Ready: true,
		ID:    runID,
		Name:  scope.ArchiveName(),
		Scope: scope,
		Data:  res.Data,
		Files: res.Files,
		Pairs: res.Pairs,
	}
	log.Info(ctx, "export finished",
		logger.String("run_id", runID),
		logger.String("archive", s.artifact.Name),
		logger.Int("pairs", res.Pairs),
		logger.Int("bytes", s.artifact.Size()))

	a := s.artifact
	return &a, nil
}

func (s *Session) build(ctx context.Context, records []models.ScoreRecord, progress export.Progress) (*export.Result, error) {
	b := &export.Builder{
		Format:      s.format(),
		Areas:       s.workbook.Areas,
		Periods:     s.workbook.Periods,
		TitlePrefix: s.opts.TitlePrefix,
		Chart: chart.Options{
			Footer:     s.opts.Footer,
			Width:      s.opts.PNGWidth,
			Height:     s.opts.PNGHeight,
			AssetsHost: s.opts.AssetsHost,
		},
		Scale:    s.opts.PNGScale,
		Progress: progress,
		Log:      s.log.Named("export"),
	}

	if b.Format == export.FormatPNG {
		r, release, err := s.opts.rasterizerFactory()(ctx)
		if err != nil {
			return nil, export.NewFailure(export.StageStart, "", err)
		}
		defer release()
		b.Rasterizer = r
	}

	return b.Build(ctx, records)
}

func (s *Session) format() export.Format {
	if s.opts.Format == "" {
		return export.FormatHTML
	}
	return s.opts.Format
}

// Artifact returns the ready archive of scope, or ErrNoArtifact.
func (s *Session) Artifact(scope Scope) (Artifact, error) {
	if !s.artifact.Ready || s.artifact.Scope != scope {
		return Artifact{}, ErrNoArtifact
	}
	return s.artifact, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
