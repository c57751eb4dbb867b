package scorecard

import (
	"context"

	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/logger"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/aggregate"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/models"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/parser"
)

// Load parses workbook bytes and starts a session over them.
func Load(ctx context.Context, data []byte, opts Options) (*Session, error) {
	wb, err := parser.ReadPeriods(data)
	return newSession(ctx, wb, err, opts)
}

// LoadFile parses the workbook at path and starts a session over it.
func LoadFile(ctx context.Context, path string, opts Options) (*Session, error) {
	wb, err := parser.ReadFile(path)
	return newSession(ctx, wb, err, opts)
}

func newSession(ctx context.Context, wb *models.Workbook, err error, opts Options) (*Session, error) {
	log := opts.logger().Named("load")
	if err != nil {
		log.Error(ctx, "workbook rejected", logger.Error(err))
		if opts.Observer != nil {
			opts.Observer.ObserveLoad(err, 0)
		}
		return nil, err
	}

	records := aggregate.FromWorkbook(wb)
	log.Info(ctx, "workbook loaded",
		logger.Any("periods", wb.Periods),
		logger.Int("areas", len(wb.Areas)),
		logger.Int("records", len(records)))
	if opts.Observer != nil {
		opts.Observer.ObserveLoad(nil, len(records))
	}

	return &Session{
		opts:     opts,
		log:      opts.logger(),
		workbook: wb,
		records:  records,
	}, nil
}
