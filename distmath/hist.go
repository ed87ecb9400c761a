// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distmath

import (
	"fmt"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Histogram is a density-normalized fixed-bin histogram of a sample
// set: equal-width bins spanning the observed range, each bin's
// probability density, and the cumulative distribution across bins.
type Histogram struct {
	// Edges are the bin boundaries in ascending order. Bin i
	// spans [Edges[i], Edges[i+1]); the last bin is closed on
	// the right. len(Edges) == len(Density)+1.
	Edges []float64

	// Density is each bin's probability density:
	// count / (total × bin width).
	Density []float64

	// CDF is the cumulative sample mass at or below each bin's
	// right edge. It is non-decreasing and its last entry is
	// exactly 1.
	CDF []float64
}

// A BoundsError reports a percentile request whose answer lies past
// the last represented bin edge.
type BoundsError struct {
	Percent float64
	Bins    int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("percentile %v of %d bins is past the last bin edge", e.Percent, e.Bins)
}

// NewHistogram bins xs into the given number of equal-width bins over
// [min(xs), max(xs)]. A degenerate single-valued sample is widened by
// ±0.5 around the value.
func NewHistogram(xs []float64, bins int) (*Histogram, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("non-positive bin count %d", bins)
	}
	if len(xs) == 0 {
		return nil, ErrNoSamples
	}
	min, max := stats.Bounds(xs)
	if min == max {
		min, max = min-0.5, max+0.5
	}
	width := (max - min) / float64(bins)

	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = min + width*float64(i)
	}
	edges[bins] = max

	counts := make([]float64, bins)
	for _, x := range xs {
		i := int((x - min) / width)
		// The maximum lands past the end; fold it into the
		// last bin.
		if i >= bins {
			i = bins - 1
		}
		if i < 0 {
			i = 0
		}
		counts[i]++
	}

	h := &Histogram{
		Edges:   edges,
		Density: make([]float64, bins),
		CDF:     make([]float64, bins),
	}
	total := float64(len(xs))
	cum := 0.0
	for i, c := range counts {
		h.Density[i] = c / (total * width)
		cum += c
		h.CDF[i] = cum / total
	}
	return h, nil
}

// TopPercentValue approximates the value at or below which pct percent
// of the sample mass lies, using a fixed-bin histogram instead of
// exact order statistics.
//
// The lookup is a lower-bound search over the CDF for pct/100, and the
// result is the right edge of the bin after the qualifying one. The
// one-bin bias is deliberate: a clip range chosen from the result must
// not understate the tail. pct == 100 resolves to the last bin's right
// edge (the sample maximum); anything above that is a *BoundsError.
func TopPercentValue(xs []float64, pct float64, bins int) (float64, error) {
	h, err := NewHistogram(xs, bins)
	if err != nil {
		return 0, err
	}
	i := sort.SearchFloat64s(h.CDF, pct/100)
	if i+1 >= len(h.Edges) {
		return 0, &BoundsError{Percent: pct, Bins: bins}
	}
	return h.Edges[i+1], nil
}

// BinCounts counts xs into equal-width bins over the explicit range
// [min, max]. Samples outside the range are excluded; a sample equal
// to max counts toward the last bin.
func BinCounts(xs []float64, min, max float64, bins int) ([]float64, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("non-positive bin count %d", bins)
	}
	if max <= min {
		return nil, fmt.Errorf("empty bin range [%v, %v]", min, max)
	}
	width := (max - min) / float64(bins)
	counts := make([]float64, bins)
	for _, x := range xs {
		if x < min || x > max {
			continue
		}
		i := int((x - min) / width)
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}
	return counts, nil
}
