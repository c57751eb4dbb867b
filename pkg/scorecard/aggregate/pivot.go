package aggregate

import "github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/models"

// PointsFromScores projects score records onto chartable points.
func PointsFromScores(records []models.ScoreRecord) []models.Point {
	out := make([]models.Point, len(records))
	for i, rec := range records {
		out[i] = models.Point{Period: rec.Period, Area: rec.Area, Percent: rec.Percent}
	}
	return out
}

// PointsFromAggregates projects aggregate records onto chartable points.
func PointsFromAggregates(aggs []models.AggregateRecord) []models.Point {
	out := make([]models.Point, len(aggs))
	for i, agg := range aggs {
		out[i] = models.Point{Period: agg.Period, Area: agg.Area, Percent: agg.MeanPercent}
	}
	return out
}

// Pivot lays points out as an areas x periods grid in the given orders.
// Points sharing a cell are averaged, missing values excluded; points whose
// area or period is not listed are dropped.
func Pivot(points []models.Point, areas, periods []string) models.PivotTable {
	areaIdx := make(map[string]int, len(areas))
	for i, a := range areas {
		areaIdx[a] = i
	}
	periodIdx := make(map[string]int, len(periods))
	for i, p := range periods {
		periodIdx[p] = i
	}

	acc := make([][]accumulator, len(areas))
	for i := range acc {
		acc[i] = make([]accumulator, len(periods))
	}
	for _, pt := range points {
		a, ok := areaIdx[pt.Area]
		if !ok {
			continue
		}
		p, ok := periodIdx[pt.Period]
		if !ok {
			continue
		}
		if pt.Percent.Valid {
			acc[a][p].sum += pt.Percent.Value
			acc[a][p].n++
		}
	}

	table := models.PivotTable{
		Areas:   append([]string(nil), areas...),
		Periods: append([]string(nil), periods...),
		Cells:   make([][]models.Measure, len(areas)),
	}
	for i := range acc {
		table.Cells[i] = make([]models.Measure, len(periods))
		for j := range acc[i] {
			table.Cells[i][j] = acc[i][j].mean()
		}
	}
	return table
}
