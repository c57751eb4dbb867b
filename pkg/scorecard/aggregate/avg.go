package aggregate

import (
	"sort"

	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/models"
)

// Level selects the grouping key of AvgView.
type Level string

const (
	// LevelOverall groups by (period, area).
	LevelOverall Level = "overall"
	// LevelClass groups by (period, class, area).
	LevelClass Level = "class"
)

type groupKey struct {
	period string
	class  string
	area   string
}

type accumulator struct {
	sum float64
	n   int
}

func (a accumulator) mean() models.Measure {
	if a.n == 0 {
		return models.Missing
	}
	return models.Number(a.sum / float64(a.n))
}

// AvgView averages PercentScore per group, skipping missing values.
//
// A group whose records are all missing yields a record with a missing
// MeanPercent. At LevelClass, records without a class are left out.
// Output is ordered by period and area in order of first appearance, and by
// class ascending.
func AvgView(records []models.ScoreRecord, level Level) []models.AggregateRecord {
	periodRank := make(map[string]int)
	areaRank := make(map[string]int)
	groups := make(map[groupKey]*accumulator)
	var keys []groupKey

	for _, rec := range records {
		if _, ok := periodRank[rec.Period]; !ok {
			periodRank[rec.Period] = len(periodRank)
		}
		if _, ok := areaRank[rec.Area]; !ok {
			areaRank[rec.Area] = len(areaRank)
		}

		key := groupKey{period: rec.Period, area: rec.Area}
		if level == LevelClass {
			if rec.Class == "" {
				continue
			}
			key.class = rec.Class
		}

		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{}
			groups[key] = acc
			keys = append(keys, key)
		}
		if rec.Percent.Valid {
			acc.sum += rec.Percent.Value
			acc.n++
		}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if periodRank[a.period] != periodRank[b.period] {
			return periodRank[a.period] < periodRank[b.period]
		}
		if a.class != b.class {
			return a.class < b.class
		}
		return areaRank[a.area] < areaRank[b.area]
	})

	out := make([]models.AggregateRecord, len(keys))
	for i, key := range keys {
		out[i] = models.AggregateRecord{
			Period:      key.period,
			Class:       key.class,
			Area:        key.area,
			MeanPercent: groups[key].mean(),
		}
	}
	return out
}
