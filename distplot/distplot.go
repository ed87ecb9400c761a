// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distplot renders distribution summaries to PNG charts.
//
// This is a presentation layer: it accepts only already-computed
// numeric summaries (bin counts, raw sequences) and owns nothing but
// the pixels. The statistics live in distmath.
package distplot

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"golang.org/x/benchpost/distmath"
)

// LengthHist renders a clipped histogram of a length distribution to a
// PNG at path: bars over [0, sum.Cutoff] and a red vertical marker at
// the mean, labeled "Mean = m ± s" in the legend.
func LengthHist(sum *distmath.Summary, path string) error {
	if len(sum.Counts) == 0 {
		return fmt.Errorf("empty bin counts")
	}

	width := sum.Cutoff / float64(len(sum.Counts))
	bins := make([]plotter.HistogramBin, len(sum.Counts))
	var peak float64
	for i, c := range sum.Counts {
		bins[i] = plotter.HistogramBin{
			Min:    width * float64(i),
			Max:    width * float64(i+1),
			Weight: c,
		}
		if c > peak {
			peak = c
		}
	}
	hist := &plotter.Histogram{
		Bins:      bins,
		Width:     sum.Cutoff,
		FillColor: color.NRGBA{0x4c, 0x72, 0xb0, 0xff},
		LineStyle: plotter.DefaultLineStyle,
	}

	marker, err := plotter.NewLine(plotter.XYs{
		{X: sum.Mean, Y: 0},
		{X: sum.Mean, Y: peak},
	})
	if err != nil {
		return err
	}
	marker.Color = color.NRGBA{0xff, 0, 0, 0xff}

	pl := plot.New()
	pl.X.Label.Text = "Length"
	pl.Y.Label.Text = "Frequency"
	pl.Add(hist, marker)
	pl.Legend.Add(fmt.Sprintf("Mean = %.0f ± %.1f", sum.Mean, sum.StdDev), marker)
	pl.Legend.Top = true

	return savePNG(pl, path)
}

// FreqCurve renders an ordered frequency sequence as index vs. value
// on a base-10 logarithmic frequency axis. The sequence is passed
// through unchanged; a non-positive value cannot be placed on a log
// scale and fails the render.
func FreqCurve(freqs []float64, path string) error {
	pts := make(plotter.XYs, len(freqs))
	for i, f := range freqs {
		if f <= 0 {
			return fmt.Errorf("frequency %v at rank %d is not positive; log scale requires positive values", f, i)
		}
		pts[i] = plotter.XY{X: float64(i), Y: f}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}

	pl := plot.New()
	pl.X.Label.Text = "Elements"
	pl.Y.Label.Text = "Frequency"
	pl.Y.Scale = plot.LogScale{}
	pl.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	pl.Add(line)

	return savePNG(pl, path)
}

// savePNG draws pl onto a PNG canvas and writes it to path.
func savePNG(pl *plot.Plot, path string) error {
	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(16*vg.Centimeter, 12*vg.Centimeter),
		vgimg.UseDPI(150),
		vgimg.UseBackgroundColor(color.White),
	)}
	pl.Draw(draw.New(can))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
