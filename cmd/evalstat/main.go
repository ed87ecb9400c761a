// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Evalstat summarizes the filter-stage counters of an evaluation log.
//
// Usage:
//
//	evalstat eval.json
//
// The report shows each filter stage's share of all filtered
// outcomes, the raw verified and undefined totals, and the per-query
// accepted count as mean ± sample standard deviation.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/benchpost/evalfmt"
	"golang.org/x/benchpost/evalstat"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: evalstat eval.json\n")
	os.Exit(2)
}

func main() {
	log.SetPrefix("evalstat: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
	}

	if err := run(os.Stdout, flag.Arg(0)); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := evalfmt.ReadLog(f, path)
	if err != nil {
		return err
	}
	stats, err := evalstat.Aggregate(records)
	if err != nil {
		return err
	}
	evalstat.FormatText(w, stats)
	return nil
}
