// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bars computes the geometry and decoration of the bars of a
// bar chart: position and size, corner rounding, color, highlight,
// lollipop caps, and value labels.
//
// Layout places bars from rows and scales. Reduce then assigns each
// category its row slot, rounds, colors, and labels the bars, and
// returns the total height the chart needs.
package bars

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/aclements/go-vizcore/dataset"
	"github.com/aclements/go-vizcore/vizconfig"
)

// A Corner is a set of bar corners.
type Corner uint8

const (
	TopLeft Corner = 1 << iota
	TopRight
	BottomRight
	BottomLeft

	AllCorners = TopLeft | TopRight | BottomRight | BottomLeft
)

// CSS returns c as a CSS border-radius value with the given radius.
func (c Corner) CSS(radius float64) string {
	var parts [4]string
	for i, bit := range []Corner{TopLeft, TopRight, BottomRight, BottomLeft} {
		if c&bit != 0 {
			parts[i] = fmt.Sprintf("%gpx", radius)
		} else {
			parts[i] = "0"
		}
	}
	return strings.Join(parts[:], " ")
}

// Cap is the marker at the end of a lollipop stem.
type Cap struct {
	// Shape is "circle" or "square".
	Shape string
	X, Y  float64
	Size  float64
}

// Label is a positioned piece of text.
type Label struct {
	Text   string
	X, Y   float64
	Dx     float64
	Anchor string // start, middle, or end
	Fill   string
}

// Bar is one drawn bar.
type Bar struct {
	// Index is the bar's series index within its group.
	Index int
	Key   string
	Value float64

	X, Y, Width, Height float64

	Color       string
	Highlighted bool

	Corners Corner
	Radius  float64

	Cap   *Cap
	Label *Label
}

// Group is the bars of one category.
type Group struct {
	Index    int
	Category string

	// Y and Height are the group's row slot.
	Y, Height float64

	// Label is the category label, set when labels render below
	// horizontal bars.
	Label *Label

	Bars []Bar
}

// Options supply the colors Reduce assigns.
type Options struct {
	// SeriesColors are the bar colors by series index. If empty,
	// bars keep the color they already have.
	SeriesColors []string

	// Palette is the active palette used to color bars by column.
	// The config's custom colors take precedence.
	Palette []string

	// Rows are the table rows whose color column colors the bars.
	Rows []dataset.Row
}

// Result is the output of Reduce.
type Result struct {
	Groups []Group

	// TotalHeight is the height the bars need. It is only
	// meaningful if HasTotalHeight is set, which is the case for
	// horizontal charts.
	TotalHeight    float64
	HasTotalHeight bool
}

const (
	// DefaultHighlight is the color of a highlighted bar that does
	// not configure one.
	DefaultHighlight = "rgba(255,102,1)"

	// BorderWidth is the width of a bar border, when enabled.
	BorderWidth = 1

	defaultFontSize = 18
	labelPad        = 6
)

// LollipopWidth returns the stem width for a lollipop size tier.
func LollipopWidth(size string) float64 {
	switch size {
	case "large":
		return 7
	case "medium":
		return 6
	}
	return 5
}

// CapSize returns the cap diameter for a lollipop size tier.
func CapSize(size string) float64 {
	switch size {
	case "large":
		return 14
	case "medium":
		return 12
	}
	return 10
}

// FontSize returns the pixel size of a font size tier.
func FontSize(tier string) float64 {
	switch tier {
	case "small":
		return 16
	case "medium":
		return 18
	case "large":
		return 20
	}
	return defaultFontSize
}

// Radius returns the corner radius of a rounding style.
func Radius(style string) float64 {
	switch style {
	case "standard":
		return 8
	case "shallow":
		return 5
	case "finger":
		return 15
	}
	return 0
}

// Thickness returns the thickness of one category's bars. Grouped
// bars share the slot, so their thickness is the per-series thickness
// times the number of series.
func Thickness(cfg *vizconfig.Config) float64 {
	if cfg.IsStacked() {
		return cfg.BarHeight.Float()
	}
	per := cfg.BarHeight.Float()
	if cfg.IsLollipopChart {
		per = LollipopWidth(cfg.LollipopSize)
	}
	return per * float64(len(cfg.SeriesKeys()))
}

// LabelHeight returns the height reserved below each bar for its
// label, which is 0 unless labels render below the bar.
func LabelHeight(cfg *vizconfig.Config) float64 {
	if cfg.YAxis.LabelPlacement != vizconfig.LabelBelowBar {
		return 0
	}
	return FontSize(cfg.FontSize) * 1.2
}

// Rounding returns the rounded corners of the bar at index within a
// stack of stackCount bars. Index -1 names the base of an unstacked
// bar. Only the ends of a stack are ever rounded.
func Rounding(cfg *vizconfig.Config, index, stackCount int) Corner {
	if cfg.BarStyle != "rounded" {
		return 0
	}
	stacked, full := cfg.IsStacked(), cfg.TipRounding == "full"
	tip, base := TopLeft|TopRight, BottomLeft|BottomRight
	if cfg.IsHorizontal() {
		tip, base = TopRight|BottomRight, TopLeft|BottomLeft
	}

	var c Corner
	if stacked && index+1 == stackCount || !stacked {
		c = tip
	}
	if !stacked && index == -1 {
		c = base
	}
	if full && stacked && index == 0 && stackCount > 1 {
		c = base
	}
	if full && (stacked && index == 0 && stackCount == 1 || !stacked) {
		c = AllCorners
	}
	return c
}

// FormatValue formats a bar value for display.
func FormatValue(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}

// Reduce assigns row slots, rounding, colors, caps, and labels to
// groups. It returns new groups and leaves its argument unchanged.
//
// Bar charts and horizontal charts get one row slot per group, of
// height Thickness plus the bar space plus LabelHeight. Horizontal
// charts also get a total height.
func Reduce(groups []Group, cfg *vizconfig.Config, opts Options) Result {
	out := make([]Group, len(groups))
	for i, g := range groups {
		g.Bars = append([]Bar(nil), g.Bars...)
		out[i] = g
	}
	res := Result{Groups: out}

	stackCount := len(cfg.SeriesKeys())
	thick := Thickness(cfg)
	labelH := LabelHeight(cfg)
	space := cfg.BarSpace.Float()
	horizontal := cfg.IsHorizontal()

	if cfg.VisualizationType == vizconfig.Bar || horizontal {
		for i := range out {
			g := &out[i]
			g.Y = float64(i) * (thick + space + labelH)
			g.Height = thick
			if horizontal {
				placeInSlot(g, cfg, thick, stackCount)
			}
		}
	}
	if horizontal {
		res.TotalHeight = float64(len(out)) * (thick + labelH + space)
		res.HasTotalHeight = true
	}

	var columnColors []string
	if colorByColumn(cfg) {
		palette := opts.Palette
		if len(cfg.CustomColors) > 0 {
			palette = cfg.CustomColors
		}
		columnColors = ColorByColumn(opts.Rows, cfg.Legend.ColorCode, palette, len(out))
	}
	radius := Radius(cfg.RoundingStyle)

	for i := range out {
		g := &out[i]
		if horizontal && labelH > 0 {
			g.Label = &Label{Text: g.Category, Y: g.Y + thick + FontSize(cfg.FontSize), Anchor: "start"}
		}
		for j := range g.Bars {
			b := &g.Bars[j]
			switch {
			case len(columnColors) > 0:
				b.Color = columnColors[i]
			case len(opts.SeriesColors) > 0:
				b.Color = opts.SeriesColors[b.Index%len(opts.SeriesColors)]
			}
			if c, ok := HighlightColor(cfg, g.Category); ok {
				b.Color, b.Highlighted = c, true
			}
			b.Corners = Rounding(cfg, b.Index, stackCount)
			if b.Corners != 0 {
				b.Radius = radius
			}
			if cfg.IsLollipopChart {
				b.Cap = capFor(cfg, b)
			}
			if cfg.YAxis.DisplayNumbersOnBar {
				b.Label = valueLabel(cfg, b)
			}
		}
	}
	return res
}

// placeInSlot sets the y extent of a horizontal group's bars within
// the group's row slot.
func placeInSlot(g *Group, cfg *vizconfig.Config, thick float64, stackCount int) {
	per := thick
	if !cfg.IsStacked() && stackCount > 0 {
		per = thick / float64(stackCount)
	}
	for j := range g.Bars {
		b := &g.Bars[j]
		b.Height = per
		b.Y = g.Y
		if !cfg.IsStacked() {
			b.Y += float64(b.Index) * per
		}
	}
}

// valueEnd returns the pixel position of the value end of b along
// the value axis.
func valueEnd(b *Bar, horizontal bool) float64 {
	if horizontal {
		if b.Value < 0 {
			return b.X
		}
		return b.X + b.Width
	}
	if b.Value < 0 {
		return b.Y + b.Height
	}
	return b.Y
}

func capFor(cfg *vizconfig.Config, b *Bar) *Cap {
	c := &Cap{Shape: cfg.LollipopShape, Size: CapSize(cfg.LollipopSize)}
	if c.Shape == "" {
		c.Shape = "circle"
	}
	if cfg.IsHorizontal() {
		c.X, c.Y = valueEnd(b, true), b.Y+b.Height/2
	} else {
		c.X, c.Y = b.X+b.Width/2, valueEnd(b, false)
	}
	return c
}

func valueLabel(cfg *vizconfig.Config, b *Bar) *Label {
	l := &Label{Text: FormatValue(b.Value), Fill: "#000000"}
	pad := float64(labelPad)
	if cfg.IsLollipopChart {
		pad += CapSize(cfg.LollipopSize)
	}
	if cfg.IsHorizontal() {
		l.X, l.Y = valueEnd(b, true), b.Y+b.Height/2
		l.Anchor, l.Dx = "start", pad
		if b.Value < 0 {
			l.Anchor, l.Dx = "end", -pad
		}
		return l
	}
	l.X, l.Anchor = b.X+b.Width/2, "middle"
	l.Y = valueEnd(b, false) - pad
	if b.Value < 0 {
		l.Y = valueEnd(b, false) + pad + FontSize(cfg.FontSize)
	}
	return l
}
