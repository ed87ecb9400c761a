// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timeunit provides fixed-factor scaling of nanosecond-scale
// benchmark measurements for display.
//
// Unlike general SI scaling, the factors here are fixed by the output
// format: a timing table always shows milliseconds and seconds side by
// side, regardless of the magnitude of the values.
package timeunit

import "strconv"

// A Scaler represents a fixed scaling factor for a nanosecond value
// and the precision to display it with.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Nanoseconds per displayed unit (e.g., 1e6 for ms)
	Suffix string  // Unit suffix ("ms", "s", or empty for bare numbers)
}

// Format formats a nanosecond value according to the given scale.
// For example, Millis.Format(2500000) returns "2.50".
//
// The scaling is a pure linear transform; no rounding happens until
// the final decimal formatting.
func (s Scaler) Format(ns float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, ns/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Suffix...)
	return string(buf)
}

// Millis formats nanoseconds as milliseconds with two decimal digits.
var Millis = Scaler{Prec: 2, Factor: 1e6}

// Secs formats nanoseconds as seconds with two decimal digits.
var Secs = Scaler{Prec: 2, Factor: 1e9}
