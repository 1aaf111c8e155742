// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scales builds the pixel scales of a chart from its
// configuration and data extent.
//
// Build first builds the scales for the chart's orientation, then
// replaces some of them for date axes and for the visualization types
// that need their own layout (deviation bars, scatter plots, box
// plots, paired bars, and forest plots). Scales are never modified
// once built.
package scales

import (
	"errors"
	"math"
	"time"

	"github.com/aclements/go-vizcore/dataset"
	"github.com/aclements/go-vizcore/extent"
	"github.com/aclements/go-vizcore/normalize"
	"github.com/aclements/go-vizcore/vizconfig"
)

// ErrLogDomain is returned when a logarithmic scale is requested over
// a domain that touches or crosses zero.
var ErrLogDomain = errors.New("log scale domain includes zero")

// MobileWidth is the widest screen that uses the mobile forest plot
// offsets.
const MobileWidth = 480

const (
	horizontalMinOffset = 1.03
	deviationMinOffset  = 1.03
	lollipopMinOffset   = 1.05
	pairedMaxOffset     = 1.02
	forestPadding       = 5
	boxPadding          = 0.4
)

// Set is the scales of one chart. Fields a chart does not use are
// nil.
type Set struct {
	X, Y Scale

	// Series places the series of a grouped chart within one
	// category slot.
	Series *Ordinal

	// G1X and G2X are the back-to-back scales of a paired bar
	// chart. G1X grows leftward from the center, G2X rightward.
	G1X, G2X *Continuous
}

// Input is the data a Set is built from.
type Input struct {
	Extent extent.Extent

	// Categories are the x-axis values in row order.
	Categories []string

	// Dates are the parsed x-axis values when the axis is a date
	// axis.
	Dates []time.Time

	// Rows are the filtered data rows.
	Rows []dataset.Row

	// RowCount is the number of unfiltered rows.
	RowCount int

	// XMax and YMax are the width and height of the plot area.
	XMax, YMax float64

	// ScreenWidth is the width of the viewport. 0 means unknown,
	// which is treated as a wide screen.
	ScreenWidth float64
}

// An Override replaces some of the scales in set for one
// visualization type.
type Override func(set *Set, cfg *vizconfig.Config, in Input) error

var overrides = map[vizconfig.Kind]Override{
	vizconfig.DeviationBar: Deviation,
	vizconfig.ScatterPlot:  Scatter,
	vizconfig.BoxPlot:      BoxPlot,
	vizconfig.PairedBar:    Paired,
	vizconfig.ForestPlot:   Forest,
}

// OverrideFor returns the scale override of kind, or nil if kind uses
// the orientation scales unchanged.
func OverrideFor(kind vizconfig.Kind) Override {
	return overrides[kind]
}

// Build returns the scales of cfg over in. cfg should be prepared.
func Build(cfg *vizconfig.Config, in Input) (*Set, error) {
	set, err := Base(cfg, in)
	if err != nil {
		return nil, err
	}
	if o := OverrideFor(cfg.VisualizationType); o != nil {
		if err := o(set, cfg, in); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// Base returns the orientation scales of cfg, with the x scale
// replaced by a time scale if the x axis is a sorted date axis.
func Base(cfg *vizconfig.Config, in Input) (*Set, error) {
	set := new(Set)
	seriesDomain := cfg.Runtime.BarSeriesKeys
	if len(seriesDomain) == 0 {
		seriesDomain = cfg.SeriesKeys()
	}

	if cfg.IsHorizontal() {
		x, err := valueScale(cfg, in.Extent.Min*horizontalMinOffset, in.Extent.Max, 0, in.XMax)
		if err != nil {
			return nil, err
		}
		set.X = x
		if min, max, ok := dateBounds(in.Dates); ok && xAxisType(cfg) == vizconfig.Date {
			set.Y = NewLinear(min, max, 0, in.YMax).Round()
		} else {
			set.Y = NewPoint(in.Categories, 0, in.YMax, 0.5).Round()
		}
		set.Series = NewPoint(seriesDomain, 0, in.YMax, 0)
	} else {
		set.X = NewPoint(in.Categories, 0, in.XMax, 0.5)
		y, err := valueScale(cfg, in.Extent.Min, in.Extent.Max, in.YMax, 0)
		if err != nil {
			return nil, err
		}
		set.Y = y
		set.Series = NewPoint(seriesDomain, 0, in.XMax, 0)
	}

	if cfg.XAxis.Type == vizconfig.Date && cfg.XAxis.SortDates {
		if min, max, ok := dateBounds(in.Dates); ok {
			set.X = NewLinear(min, max, 0, in.XMax).withType(Time)
		}
	}
	return set, nil
}

// LogMin returns the domain minimum used for a log scale whose data
// minimum is min. Minimums in [0, 1) are shifted up by 0.1.
func LogMin(min float64) float64 {
	if min >= 0 && min < 1 {
		return min + 0.1
	}
	return min
}

// valueScale returns the linear or, if cfg uses a log scale, niced
// logarithmic scale over [min, max].
func valueScale(cfg *vizconfig.Config, min, max, r0, r1 float64) (*Continuous, error) {
	if !cfg.UseLogScale {
		return NewLinear(min, max, r0, r1), nil
	}
	s, err := NewLog(LogMin(min), max, r0, r1)
	if err != nil {
		return nil, err
	}
	return s.Nice(), nil
}

// Deviation lays out a deviation bar chart: bands down the y axis
// and a rounded, niced x scale that always includes the target.
func Deviation(set *Set, cfg *vizconfig.Config, in Input) error {
	offset := deviationMinOffset
	if cfg.IsLollipopChart {
		offset = lollipopMinOffset
	}
	set.Y = NewBand(in.Categories, 0, in.YMax, 0)
	max := math.Max(cfg.XAxis.Target.Float(), in.Extent.Max)
	set.X = NewLinear(in.Extent.Min*offset, max, 0, in.XMax).Nice().Round()
	return nil
}

// Scatter replaces the x scale of a continuous-axis scatter plot with
// a linear scale from 0 to the largest x value.
func Scatter(set *Set, cfg *vizconfig.Config, in Input) error {
	if cfg.XAxis.Type != vizconfig.Continuous {
		return nil
	}
	max := 0.0
	for _, c := range in.Categories {
		if x, ok := normalize.Number(c); ok {
			max = math.Max(max, x)
		}
	}
	set.X = NewLinear(0, max, 0, in.XMax)
	return nil
}

// BoxPlot extends the extent to cover outliers (unless hidden) and
// whisker bounds, and lays out one band per box plot category.
func BoxPlot(set *Set, cfg *vizconfig.Config, in Input) error {
	bp := cfg.BoxPlot
	min, max := in.Extent.Min, in.Extent.Max
	for _, p := range bp.Plots {
		if !bp.HideOutliers {
			for _, o := range p.ColumnOutliers {
				min, max = math.Min(min, o), math.Max(max, o)
			}
		}
		min = math.Min(min, p.ColumnLowerBounds.Float())
		max = math.Max(max, p.ColumnUpperBounds.Float())
	}
	set.Y = NewLinear(min, max, in.YMax, 0).Round()
	set.X = NewBand(bp.Categories, 0, in.XMax, boxPadding).Round()
	return nil
}

// Paired builds the two half-width scales of a paired bar chart over
// a shared domain.
func Paired(set *Set, cfg *vizconfig.Config, in Input) error {
	if len(cfg.Series) < 2 {
		return vizconfig.Missing("series[1]")
	}
	max := 0.0
	for _, s := range cfg.Series[:2] {
		if m := extent.ColumnMax(in.Rows, s.DataKey); !math.IsInf(m, 0) {
			max = math.Max(max, m)
		}
	}
	max *= pairedMaxOffset
	set.G1X = NewLinear(0, max, in.XMax/2, 0)
	set.G2X = NewLinear(0, max, in.XMax/2, in.XMax).Nice()
	return nil
}

// Forest lays out a forest plot: one y unit per unfiltered row below
// two header rows, and an x scale over the confidence bounds inset
// by the configured percentage offsets.
func Forest(set *Set, cfg *vizconfig.Config, in Input) error {
	fp := cfg.ForestPlot
	if fp.Lower == "" {
		return vizconfig.Missing("forestPlot.lower")
	}
	if fp.Upper == "" {
		return vizconfig.Missing("forestPlot.upper")
	}

	rowHeight := fp.RowHeight.Float()
	y1 := in.YMax
	if fp.Regression.ShowDiamond || fp.Regression.Description != "" {
		y1 -= rowHeight
	}
	set.Y = NewLinear(0, float64(in.RowCount), rowHeight*2, y1)

	lo, _ := numericBounds(in.Rows, fp.Lower)
	_, hi := numericBounds(in.Rows, fp.Upper)

	left, right := fp.LeftWidthOffset.Float(), fp.RightWidthOffset.Float()
	if in.ScreenWidth > 0 && in.ScreenWidth <= MobileWidth {
		left, right = fp.LeftWidthOffsetMobile.Float(), fp.RightWidthOffsetMobile.Float()
	}
	set.X = NewLinear(lo-forestPadding, hi+forestPadding, left/100*in.XMax, in.XMax-right/100*in.XMax)
	return nil
}

func xAxisType(cfg *vizconfig.Config) string {
	if t := cfg.Runtime.XAxis.Type; t != "" {
		return t
	}
	return cfg.XAxis.Type
}

func dateBounds(dates []time.Time) (min, max float64, ok bool) {
	if len(dates) == 0 {
		return 0, 0, false
	}
	min, max = math.Inf(1), math.Inf(-1)
	for _, d := range dates {
		ms := dataset.Millis(d)
		min, max = math.Min(min, ms), math.Max(max, ms)
	}
	return min, max, true
}

// numericBounds returns the smallest and largest numeric value of
// column key, or 0, 0 if there are none.
func numericBounds(rows []dataset.Row, key string) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, r := range rows {
		if x, ok := normalize.Number(r[key]); ok {
			min, max = math.Min(min, x), math.Max(max, x)
		}
	}
	if math.IsInf(min, 1) {
		return 0, 0
	}
	return min, max
}
