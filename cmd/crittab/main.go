// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Crittab flattens a Criterion-style benchmark result tree into
// per-group timing tables.
//
// Usage:
//
//	crittab resultdir
//
// For each benchmark group under resultdir, crittab prints a
// tab-separated table with one row per method variant: the mean and
// its standard error in milliseconds and in seconds. Groups and
// methods are listed in lexicographic order; the generated "report"
// bundle is skipped.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/benchpost/critfmt"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: crittab resultdir\n")
	os.Exit(2)
}

func main() {
	log.SetPrefix("crittab: ")
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

func run(w io.Writer, root string) error {
	groups, err := critfmt.Load(os.DirFS(root))
	if err != nil {
		return err
	}
	critfmt.FormatText(w, groups)
	return nil
}
