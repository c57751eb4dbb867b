package models

// PeriodTable represents the wide-form score table of one measurement period.
type PeriodTable struct {
	// Period is the source sheet name.
	Period string `json:"period"`
	// Areas lists the measurement area column labels in sheet order.
	Areas []string `json:"areas"`
	// Rows contains one record per non-blank sheet row.
	Rows []StudentRecord `json:"rows"`
}

// AreaIndex returns the column position of area within Scores, or -1.
func (t *PeriodTable) AreaIndex(area string) int {
	for i, a := range t.Areas {
		if a == area {
			return i
		}
	}
	return -1
}

// Select returns a copy of the table restricted to areas, in the given order.
// Areas absent from the table yield empty cells.
func (t *PeriodTable) Select(areas []string) PeriodTable {
	idx := make([]int, len(areas))
	for i, a := range areas {
		idx[i] = t.AreaIndex(a)
	}

	out := PeriodTable{
		Period: t.Period,
		Areas:  append([]string(nil), areas...),
		Rows:   make([]StudentRecord, len(t.Rows)),
	}
	for r, row := range t.Rows {
		scores := make([]string, len(areas))
		for i, j := range idx {
			if j >= 0 && j < len(row.Scores) {
				scores[i] = row.Scores[j]
			}
		}
		out.Rows[r] = StudentRecord{Name: row.Name, Class: row.Class, Scores: scores}
	}
	return out
}
