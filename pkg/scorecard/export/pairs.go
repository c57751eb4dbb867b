package export

import (
	"sort"

	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/models"
)

// Pair identifies one student report.
type Pair struct {
	Name  string `json:"name"`
	Class string `json:"class"`
}

// Pairs returns the distinct (name, class) pairs of records, sorted by class
// then name. Pairs with a blank name or class are skipped.
func Pairs(records []models.ScoreRecord) []Pair {
	seen := make(map[Pair]struct{})
	var out []Pair
	for _, rec := range records {
		if rec.Name == "" || rec.Class == "" {
			continue
		}
		p := Pair{Name: rec.Name, Class: rec.Class}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Class != out[j].Class {
			return out[i].Class < out[j].Class
		}
		return out[i].Name < out[j].Name
	})
	return out
}
