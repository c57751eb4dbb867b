package models

// Display labels of the identity columns. The first two sheet columns are
// read by position into Name and Class, whatever their header says.
const (
	ColumnName  = "Név"
	ColumnClass = "Osztály"
)

// StudentRecord represents one wide-form row of a period sheet.
type StudentRecord struct {
	// Name is the student name (first column).
	Name string `json:"name"`
	// Class is the class label (second column).
	Class string `json:"class"`
	// Scores holds the raw cell text per measurement area, aligned with
	// the owning PeriodTable's Areas.
	Scores []string `json:"scores"`
}
