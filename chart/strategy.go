// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"github.com/aclements/go-vizcore/bars"
	"github.com/aclements/go-vizcore/dataset"
	"github.com/aclements/go-vizcore/extent"
	"github.com/aclements/go-vizcore/scales"
	"github.com/aclements/go-vizcore/vizconfig"
)

// A Strategy says how to compute one visualization type.
type Strategy struct {
	// Prepare, if non-nil, fills in configuration the type derives
	// from the data. It runs before validation.
	Prepare func(cfg *vizconfig.Config, rows []dataset.Row) *vizconfig.Config

	Extent func(cfg *vizconfig.Config, rows []dataset.Row) (extent.Extent, error)

	// Scales is nil for types without axes.
	Scales func(cfg *vizconfig.Config, in scales.Input) (*scales.Set, error)

	// Geometry, if non-nil, fills in the geometry fields of res.
	Geometry func(res *Result, opts Options) error
}

var strategies = map[vizconfig.Kind]Strategy{
	vizconfig.Bar:          {Extent: extent.Compute, Scales: barScales, Geometry: barGeometry},
	vizconfig.Combo:        {Extent: extent.Compute, Scales: barScales, Geometry: barGeometry},
	vizconfig.Line:         {Extent: extent.Compute, Scales: scales.Build},
	vizconfig.ScatterPlot:  {Extent: extent.Compute, Scales: scales.Build},
	vizconfig.Pie:          {Extent: extent.Compute, Geometry: pieGeometry},
	vizconfig.DeviationBar: {Extent: extent.Compute, Scales: scales.Build, Geometry: deviationGeometry},
	vizconfig.BoxPlot:      {Prepare: summarizeBoxes, Extent: extent.Compute, Scales: scales.Build, Geometry: boxGeometry},
	vizconfig.PairedBar:    {Extent: extent.Compute, Scales: scales.Build, Geometry: pairedGeometry},
	vizconfig.ForestPlot:   {Extent: extent.Compute, Scales: scales.Build},
}

// StrategyFor returns the strategy of kind. Unknown kinds get a
// strategy that only computes the extent.
func StrategyFor(kind vizconfig.Kind) Strategy {
	if s, ok := strategies[kind]; ok {
		return s
	}
	return Strategy{Extent: extent.Compute}
}

// barScales builds the scales of a bar chart over a value domain that
// includes the bars' zero baseline. Stacked charts always start at 0.
func barScales(cfg *vizconfig.Config, in scales.Input) (*scales.Set, error) {
	if cfg.IsStacked() || in.Extent.Min > 0 {
		in.Extent.Min = 0
	}
	return scales.Build(cfg, in)
}

func barGeometry(res *Result, opts Options) error {
	cfg := res.Config
	colors := opts.SeriesColors
	if len(colors) == 0 {
		colors = opts.Palette
	}
	groups := bars.Layout(cfg, res.Rows, res.Scales)
	r := bars.Reduce(groups, cfg, bars.Options{
		SeriesColors: colors,
		Palette:      opts.Palette,
		Rows:         res.Rows,
	})
	res.Bars = &r
	if r.HasTotalHeight {
		res.Height = r.TotalHeight
	}
	return nil
}

func deviationGeometry(res *Result, opts Options) error {
	x, ok := res.Scales.X.(*scales.Continuous)
	if !ok {
		return vizconfig.Missing("continuous x scale")
	}
	d, err := bars.Deviation(res.Config, res.Rows, x, bars.DeviationOptions{
		Colors:  opts.DeviationColors,
		Measure: opts.Measure,
	})
	if err != nil {
		return err
	}
	res.Deviation = d
	res.Height = d.TotalHeight
	return nil
}

// summarizeBoxes derives the box plot summaries from the data when
// the config does not supply them.
func summarizeBoxes(cfg *vizconfig.Config, rows []dataset.Row) *vizconfig.Config {
	keys := cfg.SeriesKeys()
	if len(cfg.BoxPlot.Plots) > 0 || len(keys) == 0 {
		return cfg
	}
	return cfg.With(func(c *vizconfig.Config) {
		hide := c.BoxPlot.HideOutliers
		c.BoxPlot = extent.BoxPlots(dataset.ApplyFilters(rows, c.Filters), c.XAxis.DataKey, keys[0])
		c.BoxPlot.HideOutliers = hide
	})
}
