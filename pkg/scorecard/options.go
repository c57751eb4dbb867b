// Package scorecard loads two-period competency workbooks and serves chart
// views and bulk exports over them.
package scorecard

import (
	"context"
	"time"

	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/logger"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/export"
)

// Observer receives load and export outcomes, e.g. for metrics.
type Observer interface {
	ObserveLoad(err error, records int)
	ObserveExport(err error, files, size int, d time.Duration)
}

// RasterizerFactory starts a PNG backend for one export run. The returned
// func releases it.
type RasterizerFactory func(ctx context.Context) (export.Rasterizer, func(), error)

// Options configures a Session.
type Options struct {
	// Format is the export report format (html or png).
	Format export.Format
	// TitlePrefix starts every chart title.
	TitlePrefix string
	// Footer is embedded in exported charts.
	Footer string
	// PNGWidth, PNGHeight and PNGScale size exported charts.
	PNGWidth  int
	PNGHeight int
	PNGScale  float64
	// AssetsHost overrides where chart pages load echarts from.
	AssetsHost string
	// ChromePath and RenderTimeout configure the default PNG backend.
	ChromePath    string
	RenderTimeout time.Duration
	// NewRasterizer replaces the default headless Chrome backend.
	NewRasterizer RasterizerFactory
	// Logger defaults to a discarding logger.
	Logger logger.Logger
	// Observer is optional.
	Observer Observer
}

// DefaultOptions returns default session options.
func DefaultOptions() Options {
	return Options{
		Format:      export.FormatHTML,
		TitlePrefix: "Személyes és társas kompetencia",
		Footer:      "Készítette: Sulyok István Ált. Iskola és AMI 2026. Pálfi Gergő",
		PNGWidth:    1400,
		PNGHeight:   950,
		PNGScale:    2,
	}
}

func (o Options) logger() logger.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logger.Nop()
}

func (o Options) rasterizerFactory() RasterizerFactory {
	if o.NewRasterizer != nil {
		return o.NewRasterizer
	}
	return func(ctx context.Context) (export.Rasterizer, func(), error) {
		r, err := export.NewChromeRasterizer(ctx, export.ChromeOptions{
			ExecPath: o.ChromePath,
			Timeout:  o.RenderTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return r, r.Close, nil
	}
}
