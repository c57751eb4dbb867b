package models

// Workbook represents an ingested workbook with one or two periods.
type Workbook struct {
	// BookName is the workbook file name (no path), if known.
	BookName string `json:"book_name,omitempty"`
	// First is the period read from the first sheet.
	First PeriodTable `json:"first"`
	// Second is the period read from the second sheet, nil if absent.
	Second *PeriodTable `json:"second,omitempty"`
	// Areas is the effective measurement area list used downstream.
	Areas []string `json:"areas"`
	// Periods lists the period labels in canonical order.
	Periods []string `json:"periods"`
}

// Tables returns the period tables in canonical order.
func (w *Workbook) Tables() []PeriodTable {
	if w.Second == nil {
		return []PeriodTable{w.First}
	}
	return []PeriodTable{w.First, *w.Second}
}
