// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distmath

import (
	"errors"
	"math"
	"testing"
)

// uniform returns the integers [0, n).
func uniform(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

func TestNewHistogram(t *testing.T) {
	h, err := NewHistogram(uniform(100), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(h.Edges) != 11 || len(h.Density) != 10 || len(h.CDF) != 10 {
		t.Fatalf("got %d edges, %d densities, %d CDF entries", len(h.Edges), len(h.Density), len(h.CDF))
	}
	if h.Edges[0] != 0 || h.Edges[10] != 99 {
		t.Errorf("edges span [%v, %v], want [0, 99]", h.Edges[0], h.Edges[10])
	}

	// 100 evenly spread samples over 10 bins: each bin holds 10
	// samples, so the density is 10/(100×9.9) in every bin and the
	// CDF climbs by exactly 0.1.
	width := 99.0 / 10
	for i := range h.Density {
		if want := 10 / (100 * width); math.Abs(h.Density[i]-want) > 1e-12 {
			t.Errorf("Density[%d] = %v, want %v", i, h.Density[i], want)
		}
		if want := float64(i+1) / 10; h.CDF[i] != want {
			t.Errorf("CDF[%d] = %v, want %v", i, h.CDF[i], want)
		}
	}
	if last := h.CDF[len(h.CDF)-1]; last != 1 {
		t.Errorf("final CDF entry = %v, want exactly 1", last)
	}
}

func TestNewHistogramDensityIntegratesToOne(t *testing.T) {
	xs := []float64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	h, err := NewHistogram(xs, 7)
	if err != nil {
		t.Fatal(err)
	}
	var mass float64
	for i, d := range h.Density {
		mass += d * (h.Edges[i+1] - h.Edges[i])
	}
	if math.Abs(mass-1) > 1e-9 {
		t.Errorf("total density mass = %v, want 1", mass)
	}
}

func TestNewHistogramDegenerate(t *testing.T) {
	// A single-valued sample widens the range by ±0.5.
	h, err := NewHistogram([]float64{5, 5, 5}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if h.Edges[0] != 4.5 || h.Edges[4] != 5.5 {
		t.Errorf("edges span [%v, %v], want [4.5, 5.5]", h.Edges[0], h.Edges[4])
	}
	// All mass lands in the bin whose left edge is 5.
	if h.CDF[1] != 0 || h.CDF[2] != 1 {
		t.Errorf("CDF = %v, want mass in bin 2", h.CDF)
	}
}

func TestNewHistogramErrors(t *testing.T) {
	if _, err := NewHistogram(nil, 10); !errors.Is(err, ErrNoSamples) {
		t.Errorf("empty sample: got %v, want ErrNoSamples", err)
	}
	if _, err := NewHistogram(uniform(10), 0); err == nil {
		t.Error("zero bins: got nil error")
	}
}

func TestTopPercentValue(t *testing.T) {
	// With [0,99) over 10 bins, the CDF reaches 0.5 in bin 4, and
	// the estimator returns the right edge of bin 5: 5×9.9 = 49.5.
	got, err := TopPercentValue(uniform(100), 50, 10)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-49.5) > 1e-9 {
		t.Errorf("TopPercentValue(50) = %v, want 49.5", got)
	}

	// The one-past-the-qualifying-bin edge biases the estimate
	// high: the exact 50th-percentile value is below the result.
	if got < 49.5 {
		t.Errorf("estimate %v understates the 50th percentile", got)
	}
}

func TestTopPercentValueMonotonic(t *testing.T) {
	xs := []float64{1, 1, 2, 2, 2, 3, 7, 9, 40, 41, 42, 80, 300}
	prev := math.Inf(-1)
	for pct := 5.0; pct <= 100; pct += 5 {
		v, err := TopPercentValue(xs, pct, 100)
		if err != nil {
			t.Fatalf("pct %v: %v", pct, err)
		}
		if v < prev {
			t.Errorf("pct %v: cutoff %v below previous %v", pct, v, prev)
		}
		prev = v
	}
}

func TestTopPercentValueBounds(t *testing.T) {
	// The final CDF entry is exactly 1, so the 100th percentile
	// resolves to the last bin edge: the sample maximum.
	got, err := TopPercentValue(uniform(100), 100, 10)
	if err != nil {
		t.Fatal(err)
	}
	if got != 99 {
		t.Errorf("TopPercentValue(100) = %v, want 99", got)
	}

	// Past the represented mass, the search lands past the last
	// edge.
	_, err = TopPercentValue(uniform(100), 101, 10)
	var berr *BoundsError
	if !errors.As(err, &berr) {
		t.Fatalf("TopPercentValue(101): got %v, want *BoundsError", err)
	}
	if berr.Percent != 101 || berr.Bins != 10 {
		t.Errorf("BoundsError = %+v", berr)
	}
}

func TestBinCounts(t *testing.T) {
	counts, err := BinCounts([]float64{1, 2, 3, 10, 100, -5}, 0, 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	var total float64
	for _, c := range counts {
		total += c
	}
	// 100 and -5 fall outside [0, 10]; 10 itself counts toward the
	// last bin.
	if total != 4 {
		t.Errorf("total count = %v, want 4", total)
	}
	if counts[9] != 1 {
		t.Errorf("last bin = %v, want 1 (the range maximum)", counts[9])
	}

	if _, err := BinCounts(nil, 3, 3, 10); err == nil {
		t.Error("empty range: got nil error")
	}
}

func TestSummarize(t *testing.T) {
	xs := uniform(1000)
	sum, err := Summarize(xs, 99.5, 100)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(sum.Mean-499.5) > 1e-9 {
		t.Errorf("Mean = %v, want 499.5", sum.Mean)
	}
	// Sample stddev of 0..999 is sqrt(n(n+1)/12 × n/(n-1)) ≈ 288.82.
	if math.Abs(sum.StdDev-288.82) > 0.01 {
		t.Errorf("StdDev = %v, want ≈288.82", sum.StdDev)
	}
	if sum.Cutoff < 990 || sum.Cutoff > 999 {
		t.Errorf("Cutoff = %v, want within the top bins", sum.Cutoff)
	}
	if len(sum.Counts) != 100 {
		t.Errorf("got %d bins, want 100", len(sum.Counts))
	}

	if _, err := Summarize([]float64{1}, 99.5, 100); !errors.Is(err, ErrTooFewSamples) {
		t.Errorf("single sample: got %v, want ErrTooFewSamples", err)
	}
}
