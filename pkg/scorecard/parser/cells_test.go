package parser

import (
	"testing"

	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/models"
	"github.com/xuri/excelize/v2"
)

func TestReadSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Tanuló neve")
	f.SetCellValue(sheetName, "B1", "Csoport")
	f.SetCellValue(sheetName, "C1", "Önismeret")
	f.SetCellValue(sheetName, "D1", "Empátia")
	f.SetCellValue(sheetName, "A2", "Kiss Anna")
	f.SetCellValue(sheetName, "B2", "5.a")
	f.SetCellValue(sheetName, "C2", 35)
	f.SetCellValue(sheetName, "D2", "N/A")
	// row 3 left blank
	f.SetCellValue(sheetName, "A4", "Nagy Béla")
	f.SetCellValue(sheetName, "B4", "5.b")
	f.SetCellValue(sheetName, "C4", 70.5)

	table, err := ReadSheet(f, sheetName)
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}

	if table.Period != sheetName {
		t.Errorf("Expected period %q, got %q", sheetName, table.Period)
	}
	if len(table.Areas) != 2 || table.Areas[0] != "Önismeret" || table.Areas[1] != "Empátia" {
		t.Errorf("Unexpected areas: %v", table.Areas)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0].Name != "Kiss Anna" || table.Rows[0].Class != "5.a" {
		t.Errorf("Unexpected identity columns: %+v", table.Rows[0])
	}
	if table.Rows[0].Scores[0] != "35" || table.Rows[0].Scores[1] != "N/A" {
		t.Errorf("Unexpected scores: %v", table.Rows[0].Scores)
	}
	if table.Rows[1].Scores[0] != "70.5" || table.Rows[1].Scores[1] != "" {
		t.Errorf("Unexpected scores: %v", table.Rows[1].Scores)
	}
}

func TestReadSheetTooFewColumns(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Név")
	f.SetCellValue("Sheet1", "B1", "Osztály")
	f.SetCellValue("Sheet1", "A2", "Kiss Anna")

	_, err := ReadSheet(f, "Sheet1")
	if err == nil {
		t.Fatal("Expected error for a two-column sheet")
	}
	mie, ok := err.(*MalformedInputError)
	if !ok {
		t.Fatalf("Expected *MalformedInputError, got %T", err)
	}
	if mie.Reason != ReasonTooFewColumns || mie.SheetName != "Sheet1" {
		t.Errorf("Unexpected error: %v", mie)
	}
}

func TestHeaderLabels(t *testing.T) {
	tests := []struct {
		header   []string
		width    int
		expected []string
	}{
		{[]string{"Név", "Osztály", "A"}, 3, []string{"Név", "Osztály", "A"}},
		{[]string{"Név", "", "A"}, 4, []string{"Név", "Unnamed: 1", "A", "Unnamed: 3"}},
		{[]string{"x", "y", "A", "A", "A"}, 5, []string{"x", "y", "A", "A.1", "A.2"}},
		{[]string{"x", "y", "A", "A.1", "A"}, 5, []string{"x", "y", "A", "A.1", "A.2"}},
	}

	for _, tt := range tests {
		result := headerLabels(tt.header, tt.width)
		if len(result) != len(tt.expected) {
			t.Errorf("headerLabels(%q) = %q, expected %q", tt.header, result, tt.expected)
			continue
		}
		for i := range result {
			if result[i] != tt.expected[i] {
				t.Errorf("headerLabels(%q) = %q, expected %q", tt.header, result, tt.expected)
				break
			}
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Measure
	}{
		{"35", models.Number(35)},
		{"35.5", models.Number(35.5)},
		{" 70 ", models.Number(70)},
		{"-1", models.Number(-1)},
		{"1e1", models.Number(10)},
		{"N/A", models.Missing},
		{"", models.Missing},
		{"hiányzott", models.Missing},
		{"35,5", models.Missing},
		{"NaN", models.Missing},
		{"Inf", models.Missing},
	}

	for _, tt := range tests {
		result := ParseNumber(tt.input)
		if result != tt.expected {
			t.Errorf("ParseNumber(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}
}
