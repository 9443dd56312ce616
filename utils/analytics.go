package utils

import (
	"math"
	"sort"
)

// StatisticalSummary describes a series of ledger amounts.
type StatisticalSummary struct {
	Count  int     `json:"count"`
	Sum    float64 `json:"sum"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// Summarize computes summary statistics over values. An empty series
// yields the zero summary.
func Summarize(values []float64) StatisticalSummary {
	s := StatisticalSummary{Count: len(values)}
	if s.Count == 0 {
		return s
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	for _, v := range sorted {
		s.Sum += v
	}
	s.Mean = s.Sum / float64(s.Count)

	mid := s.Count / 2
	if s.Count%2 == 0 {
		s.Median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		s.Median = sorted[mid]
	}

	var sq float64
	for _, v := range sorted {
		d := v - s.Mean
		sq += d * d
	}
	s.StdDev = math.Sqrt(sq / float64(s.Count))

	return s
}
