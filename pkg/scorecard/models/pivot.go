package models

// PivotTable arranges percentages with areas as rows and periods as columns.
type PivotTable struct {
	// Areas are the row labels in canonical order.
	Areas []string `json:"areas"`
	// Periods are the column labels in canonical order.
	Periods []string `json:"periods"`
	// Cells is indexed [area][period].
	Cells [][]Measure `json:"cells"`
}

// Series returns the column of the given period, one value per area.
func (p PivotTable) Series(period int) []Measure {
	out := make([]Measure, len(p.Areas))
	for i := range p.Areas {
		if i < len(p.Cells) && period < len(p.Cells[i]) {
			out[i] = p.Cells[i][period]
		}
	}
	return out
}
