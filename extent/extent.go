// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package extent computes the numeric domain of a chart's data.
//
// Compute picks one way of deriving the maximum for the chart's
// visualization type and subtype, and always derives the minimum and
// the positive-value flag the same way. Non-numeric cells never
// produce NaN: they count as 0 toward maxima and are ignored by the
// minimum.
package extent

import (
	"math"

	"github.com/aclements/go-vizcore/dataset"
	"github.com/aclements/go-vizcore/normalize"
	"github.com/aclements/go-vizcore/vizconfig"
)

// MinSentinel stands in for non-numeric cells when computing the
// minimum so they never win.
const MinSentinel = 1e9

// Extent is the numeric domain of a chart's series data.
type Extent struct {
	Min, Max float64

	// HasPositive is true if any series cell is >= 0.
	HasPositive bool

	// Fallback is true if the data had no numeric series cells
	// and Min and Max are the default [0, 1].
	Fallback bool
}

// fallback is the extent used when there is no numeric data.
var fallback = Extent{Min: 0, Max: 1, Fallback: true}

// A MaxRule computes the maximum of a chart's data.
type MaxRule func(cfg *vizconfig.Config, rows []dataset.Row) (float64, error)

// MaxRuleFor returns the maximum rule for cfg's visualization type,
// subtype, and series types.
func MaxRuleFor(cfg *vizconfig.Config) MaxRule {
	allBar := len(cfg.Series) > 0 && cfg.AllBarSeries()
	switch {
	case cfg.IsStacked() && (cfg.VisualizationType == vizconfig.Bar || cfg.VisualizationType == vizconfig.Combo && allBar):
		return stackedMax
	case cfg.VisualizationType == vizconfig.Bar && len(cfg.Series) == 1:
		return columnMax
	case cfg.IsStacked() && cfg.VisualizationType == vizconfig.Combo:
		return comboStackedMax
	}
	return seriesMax
}

// Compute returns the extent of rows under cfg. rows must be fully
// materialized; cfg should be prepared (see vizconfig.Config.Prepare).
//
// If rows holds no numeric series cell, Compute returns the fallback
// extent [0, 1]. The only error is a missing configuration field
// required by the chosen maximum rule, which wraps
// vizconfig.ErrMissingConfig.
func Compute(cfg *vizconfig.Config, rows []dataset.Row) (Extent, error) {
	keys := cfg.SeriesKeys()
	max, err := MaxRuleFor(cfg)(cfg, rows)
	if err != nil {
		return Extent{}, err
	}
	if !anyNumeric(rows, keys) {
		return fallback, nil
	}
	return Extent{
		Min:         SeriesMin(rows, keys),
		Max:         max,
		HasPositive: HasPositive(rows, keys),
	}, nil
}

func stackedMax(cfg *vizconfig.Config, rows []dataset.Row) (float64, error) {
	return StackedMax(rows, cfg.SeriesKeys()), nil
}

func columnMax(cfg *vizconfig.Config, rows []dataset.Row) (float64, error) {
	return ColumnMax(rows, cfg.Series[0].DataKey), nil
}

func seriesMax(cfg *vizconfig.Config, rows []dataset.Row) (float64, error) {
	return SeriesMax(rows, cfg.SeriesKeys()), nil
}

func comboStackedMax(cfg *vizconfig.Config, rows []dataset.Row) (float64, error) {
	barKeys, lineKeys := cfg.Runtime.BarSeriesKeys, cfg.Runtime.LineSeriesKeys
	if len(barKeys) == 0 {
		return 0, vizconfig.Missing("runtime.barSeriesKeys")
	}
	if len(lineKeys) == 0 {
		return 0, vizconfig.Missing("runtime.lineSeriesKeys")
	}
	return math.Max(StackedMax(rows, barKeys), SeriesMax(rows, lineKeys)), nil
}

// StackedMax returns the largest per-row sum of keys.
func StackedMax(rows []dataset.Row, keys []string) float64 {
	max := math.Inf(-1)
	for _, r := range rows {
		total := 0.0
		for _, k := range keys {
			total += normalize.NumberOr(r[k], 0)
		}
		max = math.Max(max, total)
	}
	return max
}

// ColumnMax returns the largest value of column key.
func ColumnMax(rows []dataset.Row, key string) float64 {
	return SeriesMax(rows, []string{key})
}

// SeriesMax returns the largest value of any of keys in any row.
func SeriesMax(rows []dataset.Row, keys []string) float64 {
	max := math.Inf(-1)
	for _, r := range rows {
		for _, k := range keys {
			max = math.Max(max, normalize.NumberOr(r[k], 0))
		}
	}
	return max
}

// SeriesMin returns the smallest numeric value of any of keys in any
// row, or MinSentinel if there is none.
func SeriesMin(rows []dataset.Row, keys []string) float64 {
	min := math.Inf(1)
	for _, r := range rows {
		for _, k := range keys {
			min = math.Min(min, normalize.NumberOr(r[k], MinSentinel))
		}
	}
	if math.IsInf(min, 1) {
		return MinSentinel
	}
	return min
}

// HasPositive reports whether any numeric cell of keys is >= 0.
func HasPositive(rows []dataset.Row, keys []string) bool {
	for _, k := range keys {
		for _, r := range rows {
			if x, ok := normalize.Number(r[k]); ok && x >= 0 {
				return true
			}
		}
	}
	return false
}

func anyNumeric(rows []dataset.Row, keys []string) bool {
	for _, r := range rows {
		for _, k := range keys {
			if normalize.IsNumeric(r[k]) {
				return true
			}
		}
	}
	return false
}
