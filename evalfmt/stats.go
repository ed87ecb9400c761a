// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evalfmt

import (
	"encoding/json"
	"io"
)

// Metadata describes the run that produced a stats file. MaxN is
// required (it names the output charts); the remaining fields are
// informational and may be absent.
type Metadata struct {
	InputText string `json:"input_txt"`
	MaxN      int    `json:"max_n"`
	NumInput  int    `json:"n_input"`
	NumElems  int    `json:"n_elems"`
}

// Stats is a sample-distribution input: the lengths of the extracted
// sets and the per-element occurrence frequencies in descending rank
// order (index = element rank).
type Stats struct {
	Metadata  Metadata
	Lengths   []float64
	ElemFreqs []float64
}

// ReadStats reads a stats file from r. name is used in error messages;
// it is purely diagnostic.
func ReadStats(r io.Reader, name string) (*Stats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DataError{name, err.Error()}
	}
	var doc struct {
		Metadata *struct {
			InputText string `json:"input_txt"`
			MaxN      *int   `json:"max_n"`
			NumInput  int    `json:"n_input"`
			NumElems  int    `json:"n_elems"`
		} `json:"metadata"`
		Lengths   *[]float64 `json:"lengths"`
		ElemFreqs *[]float64 `json:"elem_freqs"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DataError{name, err.Error()}
	}
	switch {
	case doc.Metadata == nil:
		return nil, &DataError{name, `missing key "metadata"`}
	case doc.Metadata.MaxN == nil:
		return nil, &DataError{name, `missing key "metadata.max_n"`}
	case doc.Lengths == nil:
		return nil, &DataError{name, `missing key "lengths"`}
	case doc.ElemFreqs == nil:
		return nil, &DataError{name, `missing key "elem_freqs"`}
	}
	return &Stats{
		Metadata: Metadata{
			InputText: doc.Metadata.InputText,
			MaxN:      *doc.Metadata.MaxN,
			NumInput:  doc.Metadata.NumInput,
			NumElems:  doc.Metadata.NumElems,
		},
		Lengths:   *doc.Lengths,
		ElemFreqs: *doc.ElemFreqs,
	}, nil
}
