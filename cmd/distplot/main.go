// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Distplot turns a sample-distribution stats file into comparative
// charts.
//
// Usage:
//
//	distplot stats.json outdir
//
// It writes two PNGs into outdir (created if absent): a histogram of
// the length distribution clipped at the 99.5th percentile with the
// mean marked, and the per-rank element frequencies on a log axis.
// The files are named after the run's max_n:
//
//	length_distribution.max_n=<N>.png
//	elem_freq_distribution.max_n=<N>.png
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/benchpost/distmath"
	"golang.org/x/benchpost/distplot"
	"golang.org/x/benchpost/evalfmt"
)

const (
	clipPercent = 99.5
	histBins    = 100
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: distplot stats.json outdir\n")
	os.Exit(2)
}

func main() {
	log.SetPrefix("distplot: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
	}

	if err := run(os.Stdout, flag.Arg(0), flag.Arg(1)); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, statPath, outDir string) error {
	f, err := os.Open(statPath)
	if err != nil {
		return err
	}
	stats, err := evalfmt.ReadStats(f, statPath)
	f.Close()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0777); err != nil {
		return err
	}

	md := stats.Metadata
	fmt.Fprintf(w, "input_txt: %s\tmax_n: %d\tn_input: %d\tn_elems: %d\n",
		md.InputText, md.MaxN, md.NumInput, md.NumElems)

	sum, err := distmath.Summarize(stats.Lengths, clipPercent, histBins)
	if err != nil {
		return err
	}
	name := filepath.Join(outDir, fmt.Sprintf("length_distribution.max_n=%d.png", md.MaxN))
	if err := distplot.LengthHist(sum, name); err != nil {
		return err
	}

	name = filepath.Join(outDir, fmt.Sprintf("elem_freq_distribution.max_n=%d.png", md.MaxN))
	return distplot.FreqCurve(stats.ElemFreqs, name)
}
