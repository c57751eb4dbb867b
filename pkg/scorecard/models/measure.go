// Package models defines data structures for competency score reporting.
package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Measure is a numeric value that may be missing.
// The zero value is missing.
type Measure struct {
	// Value holds the number when Valid is true.
	Value float64
	// Valid reports whether Value is present.
	Valid bool
}

// Missing is the undefined measure.
var Missing = Measure{}

// Number wraps v as a present measure. Non-finite values are missing.
func Number(v float64) Measure {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Missing
	}
	return Measure{Value: v, Valid: true}
}

// Float64 returns the value, or NaN when missing.
func (m Measure) Float64() float64 {
	if !m.Valid {
		return math.NaN()
	}
	return m.Value
}

// String formats the measure with one decimal, or "N/A" when missing.
func (m Measure) String() string {
	if !m.Valid {
		return "N/A"
	}
	return strconv.FormatFloat(m.Value, 'f', 1, 64)
}

// Percent formats the measure as "12.3%", or "N/A" when missing.
func (m Measure) Percent() string {
	if !m.Valid {
		return "N/A"
	}
	return m.String() + "%"
}

func (m Measure) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

func (m *Measure) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = Missing
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Number(v)
	return nil
}
