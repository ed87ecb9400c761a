// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critfmt

import (
	"fmt"
	"io"
	"io/fs"

	"golang.org/x/benchpost/timeunit"
)

// A MethodResult is one method variant and its loaded timing estimate.
type MethodResult struct {
	Name      string
	Estimates Estimates
}

// A GroupResult is one benchmark group with the estimates of all its
// method variants, in method name order.
type GroupResult struct {
	Name    string
	Methods []MethodResult
}

// Load discovers the groups of a result tree and loads every method's
// estimate record. The first failing record aborts the whole load;
// there is no partial result.
func Load(fsys fs.FS) ([]GroupResult, error) {
	groups, err := Discover(fsys)
	if err != nil {
		return nil, err
	}
	results := make([]GroupResult, 0, len(groups))
	for _, g := range groups {
		gr := GroupResult{Name: g.Name}
		for _, method := range g.Methods {
			est, err := ReadEstimates(fsys, EstimatesPath(g.Name, method))
			if err != nil {
				return nil, err
			}
			gr.Methods = append(gr.Methods, MethodResult{Name: method, Estimates: *est})
		}
		results = append(results, gr)
	}
	return results, nil
}

// FormatText writes one tab-separated table per group to w: a
// "# <group>" header, a column header row, one row per method with
// mean and error in milliseconds and seconds at two decimals, and a
// trailing blank line.
func FormatText(w io.Writer, groups []GroupResult) {
	for _, g := range groups {
		fmt.Fprintf(w, "# %s\n", g.Name)
		fmt.Fprintf(w, "title\tmean_ms\terror_ms\tmean_sec\terror_sec\n")
		for _, m := range g.Methods {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				m.Name,
				timeunit.Millis.Format(m.Estimates.Mean),
				timeunit.Millis.Format(m.Estimates.StandardError),
				timeunit.Secs.Format(m.Estimates.Mean),
				timeunit.Secs.Format(m.Estimates.StandardError))
		}
		fmt.Fprintln(w)
	}
}
