// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeunit

import "testing"

func TestFormat(t *testing.T) {
	check := func(s Scaler, ns float64, want string) {
		t.Helper()
		if got := s.Format(ns); got != want {
			t.Errorf("Format(%v) = %q, want %q", ns, got, want)
		}
	}

	check(Millis, 2500000, "2.50")
	check(Millis, 50000, "0.05")
	check(Millis, 0, "0.00")
	check(Millis, 1236000, "1.24")
	check(Millis, 1e9, "1000.00")

	check(Secs, 2500000, "0.00")
	check(Secs, 2.5e9, "2.50")
	check(Secs, 50000, "0.00")

	// Suffixes are appended after the formatted number.
	check(Scaler{Prec: 1, Factor: 1e6, Suffix: "ms"}, 2500000, "2.5ms")
}

func TestFormatMillisVsSecs(t *testing.T) {
	// A value formatted as seconds is the milliseconds value
	// divided by 1000, at the displayed precision.
	raw := Scaler{Prec: 2, Factor: 1}
	for _, ns := range []float64{0, 50000, 2500000, 3.75e9, 1.23456e10} {
		ms := ns / 1e6
		sec := ms / 1000
		if got, want := Millis.Format(ns), raw.Format(ms); got != want {
			t.Errorf("Millis.Format(%v) = %q, want %q", ns, got, want)
		}
		if got, want := Secs.Format(ns), raw.Format(sec); got != want {
			t.Errorf("Secs.Format(%v) = %q, want %q", ns, got, want)
		}
	}
}
