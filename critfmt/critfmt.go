// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package critfmt reads Criterion-style benchmark result trees.
//
// Criterion lays its results out as a two-level directory tree: each
// immediate subdirectory of the root names a benchmark group, each
// subdirectory of a group names a method variant, and the most recent
// timing estimate for a method lives at
// <group>/<method>/new/estimates.json. A reserved "report" directory
// holds a generated HTML bundle and is not a group.
//
// This package treats that layout as an explicit mapping from group
// names to ordered method names, built over an injected fs.FS so the
// discovery and aggregation logic can be tested without touching the
// real filesystem.
package critfmt

import "fmt"

// A DataError reports a missing or malformed input record.
// It names the offending file so batch runs fail with a usable
// diagnostic.
type DataError struct {
	File string
	Msg  string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%s: %s", e.File, e.Msg)
}
