// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart computes everything a renderer needs to draw a chart:
// the data extent, the scales, and the geometry of the marks.
//
// Each visualization type has one Strategy, looked up once per
// Compute, that says how to derive each of these. Compute is pure: it
// never modifies the config or rows it is given.
package chart

import (
	"fmt"
	"time"

	"github.com/aclements/go-vizcore/bars"
	"github.com/aclements/go-vizcore/dataset"
	"github.com/aclements/go-vizcore/extent"
	"github.com/aclements/go-vizcore/internal/textmetrics"
	"github.com/aclements/go-vizcore/scales"
	"github.com/aclements/go-vizcore/vizconfig"
)

// Dimensions is the size of the plot area, in pixels.
type Dimensions struct {
	Width, Height float64

	// ScreenWidth is the width of the viewport, or 0 if unknown.
	ScreenWidth float64
}

// Options supply the colors and text metrics used for geometry.
type Options struct {
	// SeriesColors color bars by series index. If empty, Palette
	// is used.
	SeriesColors []string

	// Palette is the active palette, used when coloring by column.
	Palette []string

	// DeviationColors are the colors of deviation bars below and
	// above the target.
	DeviationColors [2]string

	// Measure measures label text. If nil, textmetrics.Width is
	// used.
	Measure textmetrics.Measurer
}

// Result is a computed chart.
type Result struct {
	// Config is the prepared configuration the chart was computed
	// from.
	Config *vizconfig.Config

	// Rows are the rows remaining after the config's filters.
	Rows []dataset.Row

	Extent extent.Extent

	// Scales is nil for charts without axes.
	Scales *scales.Set

	// At most one of the geometry fields is set, depending on the
	// visualization type.
	Bars      *bars.Result
	Deviation *bars.DeviationResult
	Boxes     []Box
	Slices    []Slice

	// Height is the height the chart needs. It is the height of
	// the plot area unless the bars determine their own height.
	Height float64
}

// Compute prepares and validates cfg, filters rows, and computes the
// chart's extent, scales, and geometry.
func Compute(cfg *vizconfig.Config, rows []dataset.Row, dims Dimensions, opts Options) (*Result, error) {
	cfg = cfg.Prepare()
	s := StrategyFor(cfg.VisualizationType)
	if s.Prepare != nil {
		cfg = s.Prepare(cfg, rows)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		Config: cfg,
		Rows:   dataset.ApplyFilters(rows, cfg.Filters),
		Height: dims.Height,
	}

	var err error
	if res.Extent, err = s.Extent(cfg, res.Rows); err != nil {
		return nil, fmt.Errorf("extent: %w", err)
	}
	if s.Scales != nil {
		in := scales.Input{
			Extent:      res.Extent,
			Categories:  categories(cfg, res.Rows),
			Dates:       dates(cfg, res.Rows),
			Rows:        res.Rows,
			RowCount:    len(rows),
			XMax:        dims.Width,
			YMax:        dims.Height,
			ScreenWidth: dims.ScreenWidth,
		}
		if res.Scales, err = s.Scales(cfg, in); err != nil {
			return nil, fmt.Errorf("scales: %w", err)
		}
	}
	if s.Geometry != nil {
		if err := s.Geometry(res, opts); err != nil {
			return nil, fmt.Errorf("geometry: %w", err)
		}
	}
	return res, nil
}

// categories returns the displayed x-axis value of each row.
func categories(cfg *vizconfig.Config, rows []dataset.Row) []string {
	cats := make([]string, len(rows))
	for i, r := range rows {
		cats[i] = bars.Category(cfg, r)
	}
	return cats
}

// dates returns the parsed x-axis dates of rows, skipping values that
// do not parse, or nil if the x axis is not a date axis.
func dates(cfg *vizconfig.Config, rows []dataset.Row) []time.Time {
	axis := cfg.Runtime.XAxis
	if axis.Type == "" {
		axis = cfg.XAxis
	}
	if axis.Type != vizconfig.Date {
		return nil
	}
	var ds []time.Time
	for _, r := range rows {
		t, err := dataset.ParseDate(axis.DateParseFormat, dataset.String(r[cfg.XAxis.DataKey]))
		if err == nil {
			ds = append(ds, t)
		}
	}
	return ds
}
