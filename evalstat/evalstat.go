// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package evalstat aggregates filter-stage counters across a
// collection of evaluation queries.
//
// The aggregation is a pure function over six parallel counter
// sequences, separate from the report printer, so the ratio and
// moment computations are testable on their own.
package evalstat

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/benchpost/distmath"
	"golang.org/x/benchpost/evalfmt"
)

// ErrNoFiltered is returned when every filtered counter is zero across
// the whole collection: the filtered-category ratios divide by the
// total filtered count and are undefined.
var ErrNoFiltered = errors.New("no filtered queries: filtered ratios are undefined")

// Counts holds the six counters of a record collection as parallel
// sequences, one entry per query.
type Counts struct {
	LengthFiltered   []float64
	PrefixFiltered   []float64
	PositionFiltered []float64
	Verified         []float64
	Undefined        []float64
	Accepted         []float64
}

// NewCounts extracts the counter sequences from records.
func NewCounts(records []evalfmt.Record) Counts {
	c := Counts{
		LengthFiltered:   make([]float64, len(records)),
		PrefixFiltered:   make([]float64, len(records)),
		PositionFiltered: make([]float64, len(records)),
		Verified:         make([]float64, len(records)),
		Undefined:        make([]float64, len(records)),
		Accepted:         make([]float64, len(records)),
	}
	for i, r := range records {
		c.LengthFiltered[i] = float64(r.LengthFiltered)
		c.PrefixFiltered[i] = float64(r.PrefixFiltered)
		c.PositionFiltered[i] = float64(r.PositionFiltered)
		c.Verified[i] = float64(r.Verified)
		c.Undefined[i] = float64(r.Undefined)
		c.Accepted[i] = float64(r.Accepted)
	}
	return c
}

// FilterStats is the aggregate of a record collection: the share of
// each filter stage among all filtered outcomes, the raw verified and
// undefined totals, and the per-query accepted mean and sample
// standard deviation.
type FilterStats struct {
	LengthRatio    float64
	PrefixRatio    float64
	PositionRatio  float64
	Verified       int64
	Undefined      int64
	AcceptedMean   float64
	AcceptedStdDev float64
}

// Aggregate computes FilterStats over records. It fails with
// ErrNoFiltered when the total filtered count is zero, and with
// distmath.ErrTooFewSamples when fewer than two records are present.
// Everything is computed before anything is reported, so a failing
// aggregate produces no partial output.
func Aggregate(records []evalfmt.Record) (*FilterStats, error) {
	c := NewCounts(records)

	length := sum(c.LengthFiltered)
	prefix := sum(c.PrefixFiltered)
	position := sum(c.PositionFiltered)
	total := length + prefix + position
	if total == 0 {
		return nil, ErrNoFiltered
	}

	mean := distmath.Mean(c.Accepted)
	stddev, err := distmath.StdDev(c.Accepted)
	if err != nil {
		return nil, err
	}

	return &FilterStats{
		LengthRatio:    length / total,
		PrefixRatio:    prefix / total,
		PositionRatio:  position / total,
		Verified:       int64(sum(c.Verified)),
		Undefined:      int64(sum(c.Undefined)),
		AcceptedMean:   mean,
		AcceptedStdDev: stddev,
	}, nil
}

func sum(xs []float64) float64 {
	var t float64
	for _, x := range xs {
		t += x
	}
	return t
}

// FormatText writes the fixed-order filter-stage report to w.
func FormatText(w io.Writer, s *FilterStats) {
	fmt.Fprintf(w, "[all_filters]\n")
	fmt.Fprintf(w, "length_filtered_ratio: %.3f\n", s.LengthRatio)
	fmt.Fprintf(w, "prefix_filtered_ratio: %.3f\n", s.PrefixRatio)
	fmt.Fprintf(w, "position_filtered_ratio: %.3f\n", s.PositionRatio)
	fmt.Fprintf(w, "verified: %d\n", s.Verified)
	fmt.Fprintf(w, "undefined: %d\n", s.Undefined)
	fmt.Fprintf(w, "accepted_per_query: %.2f ± %.2f\n", s.AcceptedMean, s.AcceptedStdDev)
}
