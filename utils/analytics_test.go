package utils

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{-600, 0, 100, 0})
	if s.Count != 4 {
		t.Errorf("count = %d, want 4", s.Count)
	}
	if s.Sum != -500 {
		t.Errorf("sum = %v, want -500", s.Sum)
	}
	if s.Mean != -125 {
		t.Errorf("mean = %v, want -125", s.Mean)
	}
	if s.Median != 0 {
		t.Errorf("median = %v, want 0", s.Median)
	}
	if s.Min != -600 || s.Max != 100 {
		t.Errorf("min/max = %v/%v, want -600/100", s.Min, s.Max)
	}

	// Population standard deviation of {-600, 0, 0, 100} around -125.
	want := math.Sqrt((475*475 + 125*125 + 125*125 + 225*225) / 4.0)
	if math.Abs(s.StdDev-want) > 1e-9 {
		t.Errorf("stdDev = %v, want %v", s.StdDev, want)
	}
}

func TestSummarizeOddCount(t *testing.T) {
	s := Summarize([]float64{3, 1, 2})
	if s.Median != 2 {
		t.Errorf("median = %v, want 2", s.Median)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s != (StatisticalSummary{}) {
		t.Errorf("empty series = %+v, want zero summary", s)
	}
}
