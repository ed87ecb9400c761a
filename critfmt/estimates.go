// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critfmt

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
)

// Estimates is the timing estimate for one method variant, as read
// from a Criterion estimates.json. Both values are in nanoseconds.
type Estimates struct {
	// Mean is the central point estimate of the mean duration.
	Mean float64

	// StandardError is the standard error of the point estimate
	// (sampling uncertainty, not the sample standard deviation).
	StandardError float64
}

// EstimatesPath returns the path of the estimate record for a method
// variant, relative to the tree root.
func EstimatesPath(group, method string) string {
	return path.Join(group, method, "new", "estimates.json")
}

// ReadEstimates loads the estimate record at name from fsys. A missing
// file, malformed JSON, or a missing required key is reported as a
// *DataError naming the path.
func ReadEstimates(fsys fs.FS, name string) (*Estimates, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &DataError{name, err.Error()}
	}
	// Required fields are decoded through pointers so an absent
	// key is distinguishable from a zero value.
	var doc struct {
		Mean *struct {
			PointEstimate *float64 `json:"point_estimate"`
			StandardError *float64 `json:"standard_error"`
		} `json:"mean"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DataError{name, err.Error()}
	}
	if doc.Mean == nil {
		return nil, &DataError{name, missingKey("mean")}
	}
	if doc.Mean.PointEstimate == nil {
		return nil, &DataError{name, missingKey("mean.point_estimate")}
	}
	if doc.Mean.StandardError == nil {
		return nil, &DataError{name, missingKey("mean.standard_error")}
	}
	return &Estimates{
		Mean:          *doc.Mean.PointEstimate,
		StandardError: *doc.Mean.StandardError,
	}, nil
}

func missingKey(key string) string {
	return fmt.Sprintf("missing key %q", key)
}
