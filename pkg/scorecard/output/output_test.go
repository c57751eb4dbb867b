package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePivot() models.PivotTable {
	return models.PivotTable{
		Areas:   []string{"Önismeret", "Empátia"},
		Periods: []string{"Ősz", "Tavasz"},
		Cells: [][]models.Measure{
			{models.Number(50), models.Number(57.14285714)},
			{models.Missing, models.Number(100)},
		},
	}
}

func TestWritePivot(t *testing.T) {
	var buf bytes.Buffer
	WritePivot(&buf, samplePivot())

	out := buf.String()
	assert.Contains(t, out, "Terület")
	assert.Contains(t, out, "Tavasz")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "57.1%")
	assert.Contains(t, out, "100.0%")
	assert.Contains(t, out, "N/A")
	assert.Less(t, strings.Index(out, "Önismeret"), strings.Index(out, "Empátia"))
}

func TestViewToJSON(t *testing.T) {
	v := &scorecard.View{
		Mode:  scorecard.ViewOverall,
		Title: "Átlag",
		Averages: []models.AggregateRecord{
			{Period: "Ősz", Area: "Empátia", MeanPercent: models.Missing},
		},
		Pivot: samplePivot(),
	}

	data, err := ViewToJSON(v, false)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"mean_percent":null`)
	assert.Contains(t, string(data), `"mode":"overall"`)
	assert.Contains(t, string(data), `[50,57.14285714]`)

	pretty, err := ViewToJSON(v, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"title\"")
}

func TestWriteView(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteView(&buf, &scorecard.View{Title: "Cím", Pivot: samplePivot()}))
	assert.True(t, strings.HasPrefix(buf.String(), "Cím\n"))
}

func TestWriteView_StudentScores(t *testing.T) {
	v := &scorecard.View{
		Mode:    scorecard.ViewStudent,
		Title:   "Cím",
		Student: "Kiss Anna",
		Scores: []models.ScoreRecord{
			{Name: "Kiss Anna", Class: "5.a", Area: "Önismeret", Period: "Ősz", Raw: models.Number(35), Percent: models.Number(50)},
			{Name: "Kiss Anna", Class: "5.a", Area: "Empátia", Period: "Ősz", Raw: models.Missing, Percent: models.Missing},
		},
		Pivot: samplePivot(),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteView(&buf, v))

	out := buf.String()
	assert.Contains(t, out, models.ColumnName)
	assert.Contains(t, out, models.ColumnClass)
	assert.Contains(t, out, "Kiss Anna")
	assert.Contains(t, out, "35.0")
	assert.Less(t, strings.Index(out, "Terület"), strings.Index(out, models.ColumnName))
}
