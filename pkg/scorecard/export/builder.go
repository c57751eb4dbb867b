package export

import (
	"context"
	"errors"

	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/logger"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/aggregate"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/chart"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/models"
)

// Progress is called before each student's charts are rendered.
type Progress func(done, total int, p Pair)

// Builder renders a chart pair for every student and packs the archive.
type Builder struct {
	// Format of each report file.
	Format Format
	// Areas and Periods fix the chart category orders.
	Areas   []string
	Periods []string
	// TitlePrefix starts each student's chart title.
	TitlePrefix string
	// Chart carries footer, size and assets settings; Title is set per student.
	Chart chart.Options
	// Scale multiplies the PNG pixel density.
	Scale float64
	// Rasterizer is required for FormatPNG.
	Rasterizer Rasterizer
	// Progress is optional.
	Progress Progress
	// Log is optional.
	Log logger.Logger
}

// Result is a finished archive.
type Result struct {
	Data []byte
	// Files lists the report file names in archive order, README excluded.
	Files []string
	// Pairs is the number of students exported.
	Pairs int
}

// Build runs the export loop over records. Any failure aborts the whole run
// and is returned as *Failure.
func (b *Builder) Build(ctx context.Context, records []models.ScoreRecord) (*Result, error) {
	log := b.Log
	if log == nil {
		log = logger.Nop()
	}
	format := b.Format
	if format == "" {
		format = FormatHTML
	}
	if format == FormatPNG && b.Rasterizer == nil {
		return nil, NewFailure(StageStart, "", ErrRendererUnavailable)
	}

	pairs := Pairs(records)
	files := make([]File, 0, 2*len(pairs)+1)
	names := make([]string, 0, 2*len(pairs))

	for i, p := range pairs {
		if b.Progress != nil {
			b.Progress(i+1, len(pairs), p)
		}
		log.Debug(ctx, "Feldolgozás",
			logger.String("class", p.Class),
			logger.String("name", p.Name),
			logger.Int("done", i+1),
			logger.Int("total", len(pairs)))

		one := aggregate.FilterPair(records, p.Name, p.Class)
		if len(one) == 0 {
			continue
		}
		pivot := aggregate.Pivot(aggregate.PointsFromScores(one), b.Areas, b.Periods)

		opts := b.Chart
		opts.Title = chart.StudentTitle(b.TitlePrefix, p.Name)

		for _, kind := range chart.Kinds {
			name := ReportName(p.Class, p.Name, string(kind), format.Ext())

			page, err := chart.RenderHTML(kind, pivot, opts)
			if err != nil {
				return nil, NewFailure(StageRender, name, err)
			}
			data := page
			if format == FormatPNG {
				data, err = b.Rasterizer.Rasterize(ctx, page, opts.Width, opts.Height, b.scale())
				if err != nil {
					return nil, NewFailure(StageRasterize, name, err)
				}
			}
			files = append(files, File{Name: name, Data: data})
		}
	}

	files = append(files, File{Name: ReadmeName, Data: []byte(Readme(format))})
	archive, err := WriteArchive(files)
	if err != nil {
		return nil, NewFailure(StagePackage, "", err)
	}

	// WriteArchive may have renamed colliding entries; report final names.
	final, err := archiveNames(archive)
	if err != nil {
		return nil, NewFailure(StagePackage, "", err)
	}
	for _, n := range final {
		if n != ReadmeName {
			names = append(names, n)
		}
	}

	return &Result{Data: archive, Files: names, Pairs: len(pairs)}, nil
}

func (b *Builder) scale() float64 {
	if b.Scale <= 0 {
		return 1
	}
	return b.Scale
}

// IsFailure reports whether err is an export failure.
func IsFailure(err error) bool {
	var f *Failure
	return errors.As(err, &f)
}
