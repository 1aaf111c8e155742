// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"github.com/aclements/go-vizcore/bars"
	"github.com/aclements/go-vizcore/normalize"
	"github.com/aclements/go-vizcore/scales"
	"github.com/aclements/go-vizcore/vizconfig"
)

// Box is the geometry of one box of a box plot. Vertical positions
// are in pixels.
type Box struct {
	Category string
	X, Width float64

	LowerWhisker, Q1, Median, Q3, UpperWhisker float64

	// Outliers is empty if the config hides outliers.
	Outliers []float64
}

func boxGeometry(res *Result, opts Options) error {
	x, ok := res.Scales.X.(*scales.Ordinal)
	if !ok {
		return vizconfig.Missing("band x scale")
	}
	y, ok := res.Scales.Y.(*scales.Continuous)
	if !ok {
		return vizconfig.Missing("continuous y scale")
	}
	bp := res.Config.BoxPlot
	for i, p := range bp.Plots {
		b := Box{Width: x.Bandwidth()}
		switch {
		case i < len(bp.Categories):
			b.Category = bp.Categories[i]
		case len(p.Columns) > 0:
			b.Category = p.Columns[0]
		}
		b.X, _ = x.Map(b.Category)
		b.LowerWhisker = y.Map(p.ColumnLowerBounds.Float())
		b.Q1 = y.Map(p.ColumnQ1.Float())
		b.Median = y.Map(p.ColumnMedian.Float())
		b.Q3 = y.Map(p.ColumnQ3.Float())
		b.UpperWhisker = y.Map(p.ColumnUpperBounds.Float())
		if !bp.HideOutliers {
			for _, o := range p.ColumnOutliers {
				b.Outliers = append(b.Outliers, y.Map(o))
			}
		}
		res.Boxes = append(res.Boxes, b)
	}
	return nil
}

// pairedGeometry lays out a paired bar chart: for each row, the first
// series grows left from the center and the second grows right.
// Negative values draw as 0.
func pairedGeometry(res *Result, opts Options) error {
	cfg := res.Config
	set := res.Scales
	center, _ := set.G2X.PixelRange()
	thick, space := cfg.BarHeight.Float(), cfg.BarSpace.Float()
	keys := [2]string{cfg.Series[0].DataKey, cfg.Series[1].DataKey}

	r := &bars.Result{HasTotalHeight: true}
	for i, row := range res.Rows {
		g := bars.Group{
			Index:    i,
			Category: bars.Category(cfg, row),
			Y:        float64(i) * (thick + space),
			Height:   thick,
		}
		for j, k := range keys {
			v := math.Max(0, normalize.NumberOr(row[k], 0))
			b := bars.Bar{Index: j, Key: k, Value: v, Y: g.Y, Height: thick}
			if j == 0 {
				b.X = set.G1X.Map(v)
				b.Width = center - b.X
			} else {
				b.X = center
				b.Width = set.G2X.Map(v) - center
			}
			if len(opts.SeriesColors) > j {
				b.Color = opts.SeriesColors[j]
			}
			g.Bars = append(g.Bars, b)
		}
		r.Groups = append(r.Groups, g)
	}
	r.TotalHeight = float64(len(res.Rows)) * (thick + space)
	res.Bars = r
	res.Height = r.TotalHeight
	return nil
}

// Slice is one slice of a pie chart. Angles are in radians, clockwise
// from 12 o'clock.
type Slice struct {
	Category   string
	Value      float64
	Percent    float64
	StartAngle float64
	EndAngle   float64
	Color      string
}

// pieGeometry divides the circle between rows in row order, in
// proportion to the first series. Non-numeric and negative values get
// empty slices.
func pieGeometry(res *Result, opts Options) error {
	cfg := res.Config
	keys := cfg.SeriesKeys()
	if len(keys) == 0 {
		return vizconfig.Missing("runtime.seriesKeys")
	}
	colors := opts.SeriesColors
	if len(colors) == 0 {
		colors = opts.Palette
	}

	vals := make([]float64, len(res.Rows))
	total := 0.0
	for i, r := range res.Rows {
		vals[i] = math.Max(0, normalize.NumberOr(r[keys[0]], 0))
		total += vals[i]
	}
	angle := 0.0
	for i, r := range res.Rows {
		s := Slice{Category: bars.Category(cfg, r), Value: vals[i], StartAngle: angle}
		if total > 0 {
			s.Percent = vals[i] / total * 100
			angle += vals[i] / total * 2 * math.Pi
		}
		s.EndAngle = angle
		if len(colors) > 0 {
			s.Color = colors[i%len(colors)]
		}
		res.Slices = append(res.Slices, s)
	}
	return nil
}
