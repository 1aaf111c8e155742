// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bars

import (
	"math"

	"github.com/aclements/go-vizcore/dataset"
	"github.com/aclements/go-vizcore/normalize"
	"github.com/aclements/go-vizcore/scales"
	"github.com/aclements/go-vizcore/vizconfig"
)

// slotFill is the fraction of a vertical category slot covered by
// bars.
const slotFill = 0.8

// Layout returns one group per row with bars placed by set.
//
// Horizontal bars get their value-axis extent (X and Width) here;
// Reduce gives them their row slot. Vertical bars are placed fully:
// each category's slot is centered on its x position and split evenly
// between grouped series. Stacked bars start where the previous
// series ended. Non-numeric cells draw as 0.
func Layout(cfg *vizconfig.Config, rows []dataset.Row, set *scales.Set) []Group {
	keys := cfg.Runtime.BarSeriesKeys
	if len(keys) == 0 {
		keys = cfg.SeriesKeys()
	}
	horizontal := cfg.IsHorizontal()
	slot := slotWidth(set.X, len(rows))

	groups := make([]Group, len(rows))
	for i, r := range rows {
		g := Group{Index: i, Category: Category(cfg, r)}
		var left, width float64
		if !horizontal {
			center, _ := set.X.Position(xValue(cfg, set.X, r, g.Category))
			left, width = center-slot*slotFill/2, slot*slotFill
			if !cfg.IsStacked() && len(keys) > 0 {
				width /= float64(len(keys))
			}
		}

		sum := 0.0
		for j, k := range keys {
			b := Bar{Index: j, Key: k, Value: normalize.NumberOr(r[k], 0)}
			lo, hi := 0.0, b.Value
			if cfg.IsStacked() {
				lo, hi = sum, sum+b.Value
				sum = hi
			}
			if horizontal {
				x0, x1 := position(set.X, lo), position(set.X, hi)
				b.X, b.Width = math.Min(x0, x1), math.Abs(x1-x0)
			} else {
				y0, y1 := position(set.Y, lo), position(set.Y, hi)
				b.Y, b.Height = math.Min(y0, y1), math.Abs(y1-y0)
				b.X, b.Width = left, width
				if !cfg.IsStacked() {
					b.X += float64(j) * width
				}
			}
			g.Bars = append(g.Bars, b)
		}
		groups[i] = g
	}
	return groups
}

// position returns the pixel position of v on s. Values outside a
// log scale's domain map to the start of the range.
func position(s scales.Scale, v float64) float64 {
	if p, ok := s.Position(v); ok {
		return p
	}
	r0, _ := s.PixelRange()
	return r0
}

// slotWidth returns the width of one category on the x scale.
func slotWidth(x scales.Scale, n int) float64 {
	if o, ok := x.(*scales.Ordinal); ok {
		return o.Step()
	}
	r0, r1 := x.PixelRange()
	return math.Abs(r1-r0) / math.Max(1, float64(n))
}

// xValue returns the value of row to look up on the x scale.
func xValue(cfg *vizconfig.Config, x scales.Scale, row dataset.Row, category string) any {
	switch x.Type() {
	case scales.Time:
		raw := dataset.String(row[cfg.XAxis.DataKey])
		if t, err := dataset.ParseDate(cfg.XAxis.DateParseFormat, raw); err == nil {
			return t
		}
	case scales.Linear, scales.Log:
		return row[cfg.XAxis.DataKey]
	}
	return category
}
