package parser

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/models"
	"github.com/xuri/excelize/v2"
)

// ReadPeriods parses workbook bytes into one or two period tables.
//
// The first sheet is period 1 and the second, if any, period 2; further
// sheets are ignored. With two periods the areas are narrowed to those
// present in both, keeping the first sheet's order.
func ReadPeriods(data []byte) (*models.Workbook, error) {
	return Read(bytes.NewReader(data))
}

// ReadFile parses the workbook at path.
func ReadFile(path string) (*models.Workbook, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	wb, err := Read(file)
	if err != nil {
		return nil, err
	}
	wb.BookName = filepath.Base(path)
	return wb, nil
}

// Read parses a workbook from r.
func Read(r io.Reader) (*models.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, NewMalformedInputError("", ReasonUnreadable, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, NewMalformedInputError("", ReasonNoWorksheet, nil)
	}

	first, err := ReadSheet(f, sheetList[0])
	if err != nil {
		return nil, err
	}

	wb := &models.Workbook{
		First:   *first,
		Areas:   append([]string(nil), first.Areas...),
		Periods: []string{sheetList[0]},
	}
	if len(sheetList) < 2 {
		return wb, nil
	}

	second, err := ReadSheet(f, sheetList[1])
	if err != nil {
		return nil, err
	}

	common := IntersectAreas(first.Areas, second.Areas)
	if len(common) == 0 {
		return nil, NewMalformedInputError(sheetList[1], ReasonNoCommonAreas, nil)
	}

	firstSel := first.Select(common)
	secondSel := second.Select(common)
	wb.First = firstSel
	wb.Second = &secondSel
	wb.Areas = common
	wb.Periods = append(wb.Periods, sheetList[1])
	return wb, nil
}

// IntersectAreas returns the areas of a that also occur in b, in a's order.
func IntersectAreas(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, area := range b {
		inB[area] = struct{}{}
	}
	var common []string
	for _, area := range a {
		if _, ok := inB[area]; ok {
			common = append(common, area)
		}
	}
	return common
}
