// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distmath

// A Summary is the numeric summary of a sample distribution that a
// clipped histogram chart is drawn from: the mean and sample standard
// deviation of the full sample, a high-percentile cutoff for the
// display range, and the bin counts over [0, Cutoff].
type Summary struct {
	Mean   float64
	StdDev float64
	Cutoff float64
	Counts []float64
}

// Summarize computes the Summary of xs: the pct-percentile cutoff via
// TopPercentValue and bin counts over [0, cutoff]. Statistics cover
// the whole sample; only the binning is clipped.
func Summarize(xs []float64, pct float64, bins int) (*Summary, error) {
	sd, err := StdDev(xs)
	if err != nil {
		return nil, err
	}
	cutoff, err := TopPercentValue(xs, pct, bins)
	if err != nil {
		return nil, err
	}
	counts, err := BinCounts(xs, 0, cutoff, bins)
	if err != nil {
		return nil, err
	}
	return &Summary{
		Mean:   Mean(xs),
		StdDev: sd,
		Cutoff: cutoff,
		Counts: counts,
	}, nil
}
