// Package parser reads period score sheets out of xlsx workbooks.
package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/models"
	"github.com/xuri/excelize/v2"
)

// MinColumns is the narrowest acceptable period sheet: name, class, one area.
const MinColumns = 3

// ReadSheet reads one period sheet. The first non-blank row is the header;
// column 1 is the student name and column 2 the class, by position. Every
// further column is a measurement area named by its header cell.
func ReadSheet(f *excelize.File, sheetName string) (*models.PeriodTable, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, NewMalformedInputError(sheetName, ReasonUnreadable, err)
	}

	// the header is the first non-blank row
	for len(rows) > 0 && isBlankRow(rows[0]) {
		rows = rows[1:]
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if len(rows) == 0 || width < MinColumns {
		return nil, NewMalformedInputError(sheetName, ReasonTooFewColumns, nil)
	}

	labels := headerLabels(rows[0], width)
	table := &models.PeriodTable{
		Period: sheetName,
		Areas:  labels[2:],
	}

	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		rec := models.StudentRecord{
			Name:   cellAt(row, 0),
			Class:  cellAt(row, 1),
			Scores: make([]string, width-2),
		}
		for col := 2; col < width; col++ {
			rec.Scores[col-2] = cellAt(row, col)
		}
		table.Rows = append(table.Rows, rec)
	}

	return table, nil
}

// headerLabels names every column. Blank headers become "Unnamed: <index>"
// and repeated labels get a ".<n>" suffix so that each label is unique.
func headerLabels(header []string, width int) []string {
	labels := make([]string, width)
	seen := make(map[string]int, width)
	for i := 0; i < width; i++ {
		label := cellAt(header, i)
		if strings.TrimSpace(label) == "" {
			label = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, ok := seen[label]; ok {
			base := label
			for {
				n++
				label = fmt.Sprintf("%s.%d", base, n)
				if _, taken := seen[label]; !taken {
					break
				}
			}
			seen[base] = n
		}
		seen[label] = 0
		labels[i] = label
	}
	return labels
}

func cellAt(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ParseNumber coerces a cell value to a number. Text that does not parse,
// and non-finite numbers, are missing.
func ParseNumber(s string) models.Measure {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Missing
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Number(float64(i))
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return models.Missing
	}
	return models.Number(f)
}
