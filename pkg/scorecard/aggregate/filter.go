package aggregate

import (
	"sort"

	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/models"
)

// AllClasses is the class filter value that keeps every class.
const AllClasses = "(mind)"

// FilterClass keeps the records of class. An empty class or AllClasses keeps
// everything.
func FilterClass(records []models.ScoreRecord, class string) []models.ScoreRecord {
	if class == "" || class == AllClasses {
		return append([]models.ScoreRecord(nil), records...)
	}
	var out []models.ScoreRecord
	for _, rec := range records {
		if rec.Class == class {
			out = append(out, rec)
		}
	}
	return out
}

// FilterStudent keeps the records whose name is name.
func FilterStudent(records []models.ScoreRecord, name string) []models.ScoreRecord {
	var out []models.ScoreRecord
	for _, rec := range records {
		if rec.Name == name {
			out = append(out, rec)
		}
	}
	return out
}

// FilterPair keeps the records of one (name, class) pair.
func FilterPair(records []models.ScoreRecord, name, class string) []models.ScoreRecord {
	var out []models.ScoreRecord
	for _, rec := range records {
		if rec.Name == name && rec.Class == class {
			out = append(out, rec)
		}
	}
	return out
}

// FilterAggregateClass keeps the aggregates of class.
func FilterAggregateClass(aggs []models.AggregateRecord, class string) []models.AggregateRecord {
	var out []models.AggregateRecord
	for _, agg := range aggs {
		if agg.Class == class {
			out = append(out, agg)
		}
	}
	return out
}

// Classes returns the distinct non-blank classes, sorted.
func Classes(records []models.ScoreRecord) []string {
	return distinct(records, func(r models.ScoreRecord) string { return r.Class })
}

// Students returns the distinct non-blank names, sorted.
func Students(records []models.ScoreRecord) []string {
	return distinct(records, func(r models.ScoreRecord) string { return r.Name })
}

func distinct(records []models.ScoreRecord, field func(models.ScoreRecord) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, rec := range records {
		v := field(rec)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
