// Package output serializes views for the command line.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/models"
)

// ToJSON serializes v, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ViewToJSON serializes a view.
func ViewToJSON(v *scorecard.View, pretty bool) ([]byte, error) {
	return ToJSON(v, pretty)
}

// WritePivot writes p as a text table: one row per area, one column per
// period, cells as percentages with missing means shown as N/A.
func WritePivot(w io.Writer, p models.PivotTable) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(append([]string{"Terület"}, p.Periods...))

	align := make([]int, len(p.Periods)+1)
	align[0] = tablewriter.ALIGN_LEFT
	for i := 1; i < len(align); i++ {
		align[i] = tablewriter.ALIGN_RIGHT
	}
	table.SetColumnAlignment(align)

	for i, area := range p.Areas {
		row := make([]string, 0, len(p.Periods)+1)
		row = append(row, area)
		for j := range p.Periods {
			row = append(row, p.Cells[i][j].Percent())
		}
		table.Append(row)
	}
	table.Render()
}

// WriteScores writes one row per score record under the identity column
// labels, raw points and percentage.
func WriteScores(w io.Writer, records []models.ScoreRecord) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{models.ColumnName, models.ColumnClass, "Időszak", "Terület", "Pont", "Százalék"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})
	for _, rec := range records {
		table.Append([]string{rec.Name, rec.Class, rec.Period, rec.Area, rec.Raw.String(), rec.Percent.Percent()})
	}
	table.Render()
}

// WriteView writes the view title followed by its pivot table and, for a
// student view, the student's score records.
func WriteView(w io.Writer, v *scorecard.View) error {
	if _, err := fmt.Fprintln(w, v.Title); err != nil {
		return err
	}
	WritePivot(w, v.Pivot)
	if len(v.Scores) > 0 {
		WriteScores(w, v.Scores)
	}
	return nil
}
