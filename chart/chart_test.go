// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-vizcore/bars"
	"github.com/aclements/go-vizcore/dataset"
	"github.com/aclements/go-vizcore/vizconfig"
)

func fixedWidth(text string, size float64, bold bool) float64 {
	return float64(len(text)) * 8
}

func TestEveryKindHasStrategy(t *testing.T) {
	for _, k := range vizconfig.Kinds {
		if _, ok := strategies[k]; !ok {
			t.Errorf("no strategy for %q", k)
		}
	}
}

func TestHorizontalBar(t *testing.T) {
	cfg, err := vizconfig.Parse([]byte(`{
		"visualizationType": "Bar",
		"orientation": "horizontal",
		"series": [{"dataKey": "a", "type": "Bar"}],
		"xAxis": {"dataKey": "c"},
		"barSpace": "5"
	}`))
	require.NoError(t, err)
	rows := []dataset.Row{
		{"c": "x", "a": "1,000"},
		{"c": "y", "a": 250.0},
		{"c": "z", "a": "n/a"},
	}

	res, err := Compute(cfg, rows, Dimensions{Width: 300, Height: 200}, Options{Palette: []string{"#123456"}})
	require.NoError(t, err)
	assert.Nil(t, cfg.Runtime.SeriesKeys, "Compute modified its config")

	assert.Equal(t, 1000.0, res.Extent.Max)
	require.NotNil(t, res.Bars)
	require.Len(t, res.Bars.Groups, 3)
	assert.InDelta(t, 3*(25+21.6+5), res.Height, 1e-9)
	assert.Equal(t, res.Bars.TotalHeight, res.Height)

	b := res.Bars.Groups[0].Bars[0]
	assert.Equal(t, "#123456", b.Color)
	assert.InDelta(t, 300, b.X+b.Width, 1e-9)
	assert.Equal(t, 0.0, res.Bars.Groups[2].Bars[0].Width)

	// Bars grow from 0 even though the smallest value is 250.
	assert.Equal(t, 250.0, res.Extent.Min)
	b = res.Bars.Groups[1].Bars[0]
	assert.Equal(t, 0.0, b.X)
	assert.InDelta(t, 75, b.Width, 1e-9)
}

func TestStackedBarsInPlotArea(t *testing.T) {
	rows := []dataset.Row{
		{"c": "a", "q1": 10.0, "q2": 5.0},
		{"c": "b", "q1": 3.0, "q2": 20.0},
	}
	for _, orient := range []string{vizconfig.Vertical, vizconfig.Horizontal} {
		cfg := &vizconfig.Config{
			VisualizationType:    vizconfig.Bar,
			VisualizationSubType: vizconfig.Stacked,
			Orientation:          orient,
			Series:               []vizconfig.Series{{DataKey: "q1", Type: "Bar"}, {DataKey: "q2", Type: "Bar"}},
			XAxis:                vizconfig.Axis{DataKey: "c"},
		}
		dims := Dimensions{Width: 200, Height: 100}
		res, err := Compute(cfg, rows, dims, Options{})
		require.NoError(t, err)
		assert.Equal(t, 23.0, res.Extent.Max)

		for _, g := range res.Bars.Groups {
			for _, b := range g.Bars {
				if orient == vizconfig.Vertical {
					if b.Y < -1e-9 || b.Y+b.Height > dims.Height+1e-9 {
						t.Errorf("%s bar %s/%s spans y [%v, %v], outside [0, %v]", orient, g.Category, b.Key, b.Y, b.Y+b.Height, dims.Height)
					}
				} else if b.X < -1e-9 || b.X+b.Width > dims.Width+1e-9 {
					t.Errorf("%s bar %s/%s spans x [%v, %v], outside [0, %v]", orient, g.Category, b.Key, b.X, b.X+b.Width, dims.Width)
				}
			}
		}

		// The first series of each stack sits on the baseline.
		first := res.Bars.Groups[0].Bars[0]
		if orient == vizconfig.Vertical {
			assert.InDelta(t, dims.Height, first.Y+first.Height, 1e-9)
		} else {
			assert.InDelta(t, 0, first.X, 1e-9)
		}
	}
}

func TestFilters(t *testing.T) {
	cfg := &vizconfig.Config{
		VisualizationType: vizconfig.Line,
		Series:            []vizconfig.Series{{DataKey: "v", Type: "Line"}},
		XAxis:             vizconfig.Axis{DataKey: "c"},
		Filters:           []vizconfig.Filter{{ColumnName: "region", Values: []string{"N", "S"}, Active: "S"}},
	}
	rows := []dataset.Row{
		{"c": "a", "v": 1.0, "region": "N"},
		{"c": "b", "v": 9.0, "region": "S"},
		{"c": "c", "v": 4.0, "region": "S"},
	}
	res, err := Compute(cfg, rows, Dimensions{Width: 100, Height: 100}, Options{})
	require.NoError(t, err)
	assert.Len(t, res.Rows, 2)
	assert.Equal(t, 4.0, res.Extent.Min)
	assert.Equal(t, 9.0, res.Extent.Max)
	assert.Nil(t, res.Bars, "line charts have no bars")
	require.NotNil(t, res.Scales)
	assert.Equal(t, 100.0, res.Height)
}

func TestMissingConfig(t *testing.T) {
	cfg := &vizconfig.Config{VisualizationType: vizconfig.Bar}
	_, err := Compute(cfg, nil, Dimensions{}, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, vizconfig.ErrMissingConfig))

	_, err = Compute(&vizconfig.Config{VisualizationType: "Sunburst"}, nil, Dimensions{}, Options{})
	assert.Error(t, err)
}

func TestEmptyData(t *testing.T) {
	cfg := &vizconfig.Config{
		VisualizationType: vizconfig.Bar,
		Series:            []vizconfig.Series{{DataKey: "v"}},
		XAxis:             vizconfig.Axis{DataKey: "c"},
	}
	res, err := Compute(cfg, nil, Dimensions{Width: 100, Height: 100}, Options{})
	require.NoError(t, err)
	assert.True(t, res.Extent.Fallback)
	assert.Equal(t, 0.0, res.Extent.Min)
	assert.Equal(t, 1.0, res.Extent.Max)
	assert.Empty(t, res.Bars.Groups)
}

func TestDeviationChart(t *testing.T) {
	cfg := &vizconfig.Config{
		VisualizationType: vizconfig.DeviationBar,
		Orientation:       vizconfig.Horizontal,
		Series:            []vizconfig.Series{{DataKey: "v"}},
		XAxis:             vizconfig.Axis{DataKey: "c", Target: 10},
		BarSpace:          5,
	}
	rows := []dataset.Row{{"c": "A", "v": -20.0}, {"c": "B", "v": 40.0}, {"c": "C", "v": 10.0}}
	res, err := Compute(cfg, rows, Dimensions{Width: 160, Height: 90}, Options{
		DeviationColors: [2]string{"#000080", "#ff0000"},
		Measure:         fixedWidth,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Deviation)
	require.Len(t, res.Deviation.Bars, 3)
	assert.Equal(t, bars.Left, res.Deviation.Bars[0].Side)
	assert.Equal(t, bars.Right, res.Deviation.Bars[1].Side)
	assert.Equal(t, 90.0, res.Height)
	assert.True(t, res.Deviation.ShowTargetLine)
	for _, b := range res.Deviation.Bars {
		assert.GreaterOrEqual(t, b.Width, 0.0)
	}
}

func TestBoxPlotFromData(t *testing.T) {
	cfg := &vizconfig.Config{
		VisualizationType: vizconfig.BoxPlot,
		Series:            []vizconfig.Series{{DataKey: "v"}},
		XAxis:             vizconfig.Axis{DataKey: "g"},
	}
	var rows []dataset.Row
	for _, v := range []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100} {
		rows = append(rows, dataset.Row{"g": "a", "v": v})
	}
	for _, v := range []float64{10, 11, 12, 13} {
		rows = append(rows, dataset.Row{"g": "b", "v": v})
	}

	res, err := Compute(cfg, rows, Dimensions{Width: 200, Height: 100}, Options{})
	require.NoError(t, err)
	assert.Empty(t, cfg.BoxPlot.Plots, "Compute modified its config")
	require.Len(t, res.Boxes, 2)

	a := res.Boxes[0]
	assert.Equal(t, "a", a.Category)
	assert.Len(t, a.Outliers, 1)
	assert.LessOrEqual(t, a.Q3, a.Median)
	assert.LessOrEqual(t, a.Median, a.Q1)
	assert.LessOrEqual(t, a.UpperWhisker, a.Q3)
	assert.Greater(t, a.Width, 0.0)
	assert.Less(t, a.X, res.Boxes[1].X)
	assert.Equal(t, 0.0, a.Outliers[0], "the largest outlier is at the top of the plot")
}

func TestPairedChart(t *testing.T) {
	cfg := &vizconfig.Config{
		VisualizationType: vizconfig.PairedBar,
		Series:            []vizconfig.Series{{DataKey: "m"}, {DataKey: "f"}},
		XAxis:             vizconfig.Axis{DataKey: "age"},
		BarSpace:          5,
	}
	rows := []dataset.Row{{"age": "0-9", "m": 10.0, "f": 20.0}, {"age": "10-19", "m": 15.0, "f": -1.0}}
	res, err := Compute(cfg, rows, Dimensions{Width: 200, Height: 100}, Options{SeriesColors: []string{"blue", "pink"}})
	require.NoError(t, err)
	require.Len(t, res.Bars.Groups, 2)

	left, right := res.Bars.Groups[0].Bars[0], res.Bars.Groups[0].Bars[1]
	assert.InDelta(t, 100, left.X+left.Width, 1e-9)
	assert.Greater(t, left.Width, 0.0)
	assert.Equal(t, 100.0, right.X)
	assert.Greater(t, right.Width, 0.0)
	assert.Equal(t, "pink", right.Color)
	assert.Equal(t, 0.0, res.Bars.Groups[1].Bars[1].Width)
	assert.Equal(t, 60.0, res.Height)

	_, err = Compute(cfg.With(func(c *vizconfig.Config) { c.Series = c.Series[:1] }), rows, Dimensions{}, Options{})
	assert.True(t, errors.Is(err, vizconfig.ErrMissingConfig))
}

func TestPie(t *testing.T) {
	cfg := &vizconfig.Config{
		VisualizationType: vizconfig.Pie,
		Series:            []vizconfig.Series{{DataKey: "v"}},
		XAxis:             vizconfig.Axis{DataKey: "c"},
	}
	rows := []dataset.Row{{"c": "a", "v": 1.0}, {"c": "b", "v": "3"}, {"c": "c", "v": -2.0}}
	res, err := Compute(cfg, rows, Dimensions{}, Options{Palette: []string{"p0", "p1"}})
	require.NoError(t, err)
	assert.Nil(t, res.Scales)
	require.Len(t, res.Slices, 3)

	assert.InDelta(t, 25, res.Slices[0].Percent, 1e-9)
	assert.InDelta(t, math.Pi/2, res.Slices[0].EndAngle, 1e-9)
	assert.InDelta(t, 2*math.Pi, res.Slices[1].EndAngle, 1e-9)
	assert.Equal(t, res.Slices[2].StartAngle, res.Slices[2].EndAngle)
	assert.Equal(t, "p0", res.Slices[2].Color)
}
