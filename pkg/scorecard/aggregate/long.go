// Package aggregate reshapes period tables into long-form percentage records
// and computes group means over them.
package aggregate

import (
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/models"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/parser"
)

// MaxPoints is the maximum attainable raw score per measurement area.
const MaxPoints = 70

// Percent converts a raw score to a percentage of MaxPoints.
func Percent(raw models.Measure) models.Measure {
	if !raw.Valid {
		return models.Missing
	}
	return models.Number(raw.Value / MaxPoints * 100)
}

// ToLongPercent melts a wide period table into one record per
// (student, area), area-major, tagging every record with period.
// Cells that are not numeric keep their row with a missing score.
func ToLongPercent(table *models.PeriodTable, period string, areas []string) []models.ScoreRecord {
	out := make([]models.ScoreRecord, 0, len(areas)*len(table.Rows))
	for _, area := range areas {
		col := table.AreaIndex(area)
		for _, row := range table.Rows {
			raw := models.Missing
			if col >= 0 && col < len(row.Scores) {
				raw = parser.ParseNumber(row.Scores[col])
			}
			out = append(out, models.ScoreRecord{
				Name:    row.Name,
				Class:   row.Class,
				Area:    area,
				Period:  period,
				Raw:     raw,
				Percent: Percent(raw),
			})
		}
	}
	return out
}

// FromWorkbook reshapes every period of wb and concatenates them in
// canonical period order.
func FromWorkbook(wb *models.Workbook) []models.ScoreRecord {
	tables := wb.Tables()
	parts := make([][]models.ScoreRecord, len(tables))
	for i := range tables {
		parts[i] = ToLongPercent(&tables[i], wb.Periods[i], wb.Areas)
	}
	return Concat(parts...)
}

// Concat joins record sets without deduplication.
func Concat(parts ...[]models.ScoreRecord) []models.ScoreRecord {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]models.ScoreRecord, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
