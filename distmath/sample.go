// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distmath provides statistics over distributions of raw
// sample values: moment statistics, fixed-bin histograms, and the
// histogram-based percentile estimator used to choose display ranges.
//
// The estimator trades precision for an O(bins) lookup; it is meant
// for picking a chart clip range, not for exact reporting.
package distmath

import (
	"errors"

	"github.com/aclements/go-moremath/stats"
)

// ErrNoSamples is returned when a statistic or histogram is requested
// over an empty sample set.
var ErrNoSamples = errors.New("no samples")

// ErrTooFewSamples is returned when a sample standard deviation is
// requested for fewer than two samples. The n-1 divisor leaves it
// undefined there.
var ErrTooFewSamples = errors.New("need at least two samples to estimate a standard deviation")

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) float64 {
	return stats.Mean(xs)
}

// StdDev returns the sample standard deviation of xs (divisor n-1).
func StdDev(xs []float64) (float64, error) {
	if len(xs) < 2 {
		return 0, ErrTooFewSamples
	}
	return stats.StdDev(xs), nil
}
