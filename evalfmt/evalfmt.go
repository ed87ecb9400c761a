// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package evalfmt reads the JSON outputs of the search evaluation
// tools: per-query filter-stage logs and the sample-distribution stats
// file consumed by the distribution plotter.
//
// Inputs are trusted but unvalidated machine output; a missing key or
// malformed record fails the whole read with a *DataError rather than
// defaulting silently.
package evalfmt

import (
	"encoding/json"
	"fmt"
	"io"
)

// A DataError reports a missing or malformed field in an input file.
type DataError struct {
	File string
	Msg  string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%s: %s", e.File, e.Msg)
}

// A Record is the filter-stage counters of one evaluation query. The
// three *Filtered counters are assumed to be mutually exclusive and
// jointly exhaustive of that query's filtered outcomes.
type Record struct {
	LengthFiltered   int64
	PrefixFiltered   int64
	PositionFiltered int64
	Verified         int64
	Undefined        int64
	Accepted         int64
}

// rawRecord decodes counters through pointers so absent keys are
// distinguishable from zeroes.
type rawRecord struct {
	LengthFiltered   *int64 `json:"length_filtered"`
	PrefixFiltered   *int64 `json:"prefix_filtered"`
	PositionFiltered *int64 `json:"position_filtered"`
	Verified         *int64 `json:"verified"`
	Undefined        *int64 `json:"undefined"`
	Accepted         *int64 `json:"accepted"`
}

// ReadLog reads an evaluation log: a JSON object whose "all_filters"
// key holds one record per query. name is used in error messages; it
// is purely diagnostic.
//
// Every counter key is required on every record and must be
// non-negative.
func ReadLog(r io.Reader, name string) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DataError{name, err.Error()}
	}
	var doc struct {
		AllFilters *[]rawRecord `json:"all_filters"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DataError{name, err.Error()}
	}
	if doc.AllFilters == nil {
		return nil, &DataError{name, `missing key "all_filters"`}
	}

	records := make([]Record, 0, len(*doc.AllFilters))
	for i, raw := range *doc.AllFilters {
		var rec Record
		for _, c := range []struct {
			key string
			src *int64
			dst *int64
		}{
			{"length_filtered", raw.LengthFiltered, &rec.LengthFiltered},
			{"prefix_filtered", raw.PrefixFiltered, &rec.PrefixFiltered},
			{"position_filtered", raw.PositionFiltered, &rec.PositionFiltered},
			{"verified", raw.Verified, &rec.Verified},
			{"undefined", raw.Undefined, &rec.Undefined},
			{"accepted", raw.Accepted, &rec.Accepted},
		} {
			if c.src == nil {
				return nil, &DataError{name, fmt.Sprintf("record %d: missing key %q", i, c.key)}
			}
			if *c.src < 0 {
				return nil, &DataError{name, fmt.Sprintf("record %d: negative %q: %d", i, c.key, *c.src)}
			}
			*c.dst = *c.src
		}
		records = append(records, rec)
	}
	return records, nil
}
