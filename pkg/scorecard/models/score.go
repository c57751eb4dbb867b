package models

// ScoreRecord is one long-form (student, area, period) score.
type ScoreRecord struct {
	// Name is the student name.
	Name string `json:"name"`
	// Class is the class label.
	Class string `json:"class"`
	// Area is the measurement area label.
	Area string `json:"area"`
	// Period is the period label.
	Period string `json:"period"`
	// Raw is the coerced raw score, missing if the cell was not numeric.
	Raw Measure `json:"raw"`
	// Percent is Raw relative to the maximum attainable points.
	Percent Measure `json:"percent"`
}

// AggregateRecord is the mean percent of a group of score records.
type AggregateRecord struct {
	// Period is the period label.
	Period string `json:"period"`
	// Class is the class label; empty at the overall level.
	Class string `json:"class,omitempty"`
	// Area is the measurement area label.
	Area string `json:"area"`
	// MeanPercent is missing when no record in the group had a score.
	MeanPercent Measure `json:"mean_percent"`
}

// Point is a single chartable (period, area) percentage.
type Point struct {
	Period  string  `json:"period"`
	Area    string  `json:"area"`
	Percent Measure `json:"percent"`
}
