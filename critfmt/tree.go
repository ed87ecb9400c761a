// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critfmt

import (
	"io/fs"
	"sort"
)

// reportDir is the reserved directory name Criterion uses for its
// generated report bundle. It appears at both levels of the tree and
// is never a group or method name.
const reportDir = "report"

// A Group is one benchmark group discovered in a result tree: a group
// name and its method variant names in lexicographic order.
type Group struct {
	Name    string
	Methods []string
}

// Discover enumerates the benchmark groups and method variants of a
// result tree rooted at fsys. Groups and methods are returned in
// lexicographic order with the reserved report bundle excluded.
func Discover(fsys fs.FS) ([]Group, error) {
	names, err := subdirs(fsys, ".")
	if err != nil {
		return nil, err
	}
	groups := make([]Group, 0, len(names))
	for _, name := range names {
		methods, err := subdirs(fsys, name)
		if err != nil {
			return nil, err
		}
		groups = append(groups, Group{Name: name, Methods: methods})
	}
	return groups, nil
}

// subdirs lists the immediate subdirectories of dir, sorted, with the
// reserved report name removed. Plain files are ignored.
func subdirs(fsys fs.FS, dir string) ([]string, error) {
	ents, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, ent := range ents {
		if !ent.IsDir() || ent.Name() == reportDir {
			continue
		}
		names = append(names, ent.Name())
	}
	// fs.ReadDir returns sorted entries, but an injected fs.FS is
	// not required to honor that.
	sort.Strings(names)
	return names, nil
}
