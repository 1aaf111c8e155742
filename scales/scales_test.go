// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-vizcore/dataset"
	"github.com/aclements/go-vizcore/extent"
	"github.com/aclements/go-vizcore/vizconfig"
)

const delta = 1e-9

func TestLogMin(t *testing.T) {
	for _, test := range []struct{ in, want float64 }{
		{0.05, 0.15},
		{0, 0.1},
		{1, 1},
		{25, 25},
		{-3, -3},
	} {
		if got := LogMin(test.in); got < test.want-delta || got > test.want+delta {
			t.Errorf("LogMin(%v) = %v, want %v", test.in, got, test.want)
		}
	}
}

func TestVerticalLog(t *testing.T) {
	cfg := &vizconfig.Config{VisualizationType: vizconfig.Bar, UseLogScale: true}
	set, err := Build(cfg, Input{Extent: extent.Extent{Min: 0.05, Max: 100}, XMax: 300, YMax: 200})
	require.NoError(t, err)

	y := set.Y.(*Continuous)
	assert.Equal(t, Log, y.Type())
	min, max := y.Domain()
	assert.InDelta(t, 0.1, min, delta, "niced from 0.15")
	assert.InDelta(t, 100, max, delta)
	assert.InDelta(t, 0, y.Map(100), delta)
	assert.InDelta(t, 200, y.Map(0.1), delta)

	_, err = Build(cfg, Input{Extent: extent.Extent{Min: -5, Max: 10}, XMax: 300, YMax: 200})
	assert.True(t, errors.Is(err, ErrLogDomain), "got %v", err)
}

func TestPoint(t *testing.T) {
	p := NewPoint([]string{"a", "b", "c", "b"}, 0, 100, 0.5)
	assert.Equal(t, []string{"a", "b", "c"}, p.Domain())
	assert.Equal(t, 0.0, p.Bandwidth())
	for v, want := range map[string]float64{"a": 100.0 / 6, "b": 50, "c": 500.0 / 6} {
		got, ok := p.Map(v)
		assert.True(t, ok)
		assert.InDelta(t, want, got, delta, "position of %s", v)
	}
	_, ok := p.Map("z")
	assert.False(t, ok)

	// A single value sits in the middle.
	got, _ := NewPoint([]string{"only"}, 0, 80, 0.5).Map("only")
	assert.InDelta(t, 40, got, delta)
}

func TestBand(t *testing.T) {
	b := NewBand([]string{"a", "b"}, 0, 100, 0)
	assert.Equal(t, 50.0, b.Step())
	assert.Equal(t, 50.0, b.Bandwidth())
	x, _ := b.Map("b")
	assert.Equal(t, 50.0, x)

	r := NewBand([]string{"a", "b", "c"}, 0, 100, 0.4).Round()
	assert.Equal(t, 29.0, r.Step())
	assert.Equal(t, 17.0, r.Bandwidth())
	x, _ = r.Map("a")
	assert.Equal(t, 12.0, x)
	x, _ = r.Map("c")
	assert.Equal(t, 70.0, x)

	// Reversed ranges put the first value at the far end.
	rev := NewBand([]string{"a", "b"}, 100, 0, 0)
	x, _ = rev.Map("a")
	assert.Equal(t, 50.0, x)
}

func TestContinuousImmutable(t *testing.T) {
	c := NewLinear(0.5, 9.5, 0, 100)
	n := c.Nice().Round()
	min, max := c.Domain()
	assert.Equal(t, 0.5, min)
	assert.Equal(t, 9.5, max)
	assert.False(t, c.Rounded())
	min, max = n.Domain()
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 10.0, max)
	assert.True(t, n.Rounded())

	assert.InDelta(t, 5, c.Invert(50), delta)
	assert.Equal(t, 50.0, NewLinear(3, 3, 0, 100).Map(3), "degenerate domain maps to the middle")
}

func TestHorizontal(t *testing.T) {
	cfg := &vizconfig.Config{
		VisualizationType: vizconfig.Bar,
		Orientation:       vizconfig.Horizontal,
		Runtime:           vizconfig.Runtime{SeriesKeys: []string{"a", "b"}},
	}
	set, err := Build(cfg, Input{
		Extent:     extent.Extent{Min: 10, Max: 50},
		Categories: []string{"x", "y"},
		XMax:       200,
		YMax:       100,
	})
	require.NoError(t, err)

	x := set.X.(*Continuous)
	min, max := x.Domain()
	assert.InDelta(t, 10.3, min, delta)
	assert.Equal(t, 50.0, max)
	assert.Equal(t, 200.0, x.Map(50))

	assert.Equal(t, Point, set.Y.Type())
	pos, ok := set.Y.Position("y")
	assert.True(t, ok)
	assert.Equal(t, 75.0, pos)

	assert.Equal(t, []string{"a", "b"}, set.Series.Domain())
	r0, r1 := set.Series.PixelRange()
	assert.Equal(t, [2]float64{0, 100}, [2]float64{r0, r1})
}

func TestHorizontalDateAxis(t *testing.T) {
	cfg := &vizconfig.Config{
		VisualizationType: vizconfig.Bar,
		Orientation:       vizconfig.Horizontal,
		XAxis:             vizconfig.Axis{Type: vizconfig.Date},
	}
	d0 := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	set, err := Build(cfg, Input{
		Extent: extent.Extent{Min: 0, Max: 1},
		Dates:  []time.Time{d0, d0.Add(48 * time.Hour)},
		XMax:   100,
		YMax:   100,
	})
	require.NoError(t, err)
	assert.Equal(t, Linear, set.Y.Type())
	pos, ok := set.Y.Position(d0.Add(24 * time.Hour))
	assert.True(t, ok)
	assert.Equal(t, 50.0, pos)
}

func TestSortedDates(t *testing.T) {
	cfg := &vizconfig.Config{
		VisualizationType: vizconfig.Line,
		XAxis:             vizconfig.Axis{Type: vizconfig.Date, SortDates: true},
	}
	d0 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	set, err := Build(cfg, Input{
		Extent: extent.Extent{Min: 0, Max: 10},
		Dates:  []time.Time{d0.AddDate(0, 0, 10), d0},
		XMax:   400,
		YMax:   100,
	})
	require.NoError(t, err)
	assert.Equal(t, Time, set.X.Type())
	pos, _ := set.X.Position(d0.AddDate(0, 0, 5))
	assert.InDelta(t, 200, pos, delta)
}

func TestDeviation(t *testing.T) {
	cfg := &vizconfig.Config{
		VisualizationType: vizconfig.DeviationBar,
		XAxis:             vizconfig.Axis{Target: 50},
	}
	set, err := Build(cfg, Input{
		Extent:     extent.Extent{Min: -20, Max: 40},
		Categories: []string{"a", "b", "c", "d"},
		XMax:       160,
		YMax:       200,
	})
	require.NoError(t, err)

	x := set.X.(*Continuous)
	min, max := x.Domain()
	assert.Equal(t, -30.0, min)
	assert.Equal(t, 50.0, max, "domain includes the target")
	assert.True(t, x.Rounded())
	assert.Equal(t, 60.0, x.Map(0))

	y := set.Y.(*Ordinal)
	assert.Equal(t, Band, y.Type())
	assert.Equal(t, 50.0, y.Bandwidth())
}

func TestScatterContinuous(t *testing.T) {
	cfg := &vizconfig.Config{
		VisualizationType: vizconfig.ScatterPlot,
		XAxis:             vizconfig.Axis{Type: vizconfig.Continuous},
	}
	set, err := Build(cfg, Input{
		Extent:     extent.Extent{Min: 0, Max: 1},
		Categories: []string{"1", "5", "n/a"},
		XMax:       100,
		YMax:       100,
	})
	require.NoError(t, err)
	min, max := set.X.(*Continuous).Domain()
	assert.Equal(t, [2]float64{0, 5}, [2]float64{min, max})
}

func TestBoxPlot(t *testing.T) {
	cfg := &vizconfig.Config{
		VisualizationType: vizconfig.BoxPlot,
		BoxPlot: vizconfig.BoxPlotOptions{
			Categories: []string{"g1", "g2"},
			Plots: []vizconfig.BoxPlotEntry{
				{ColumnOutliers: []float64{20}, ColumnLowerBounds: 1, ColumnUpperBounds: 8},
				{ColumnLowerBounds: 3, ColumnUpperBounds: 9},
			},
		},
	}
	in := Input{Extent: extent.Extent{Min: 2, Max: 8}, XMax: 100, YMax: 100}
	set, err := Build(cfg, in)
	require.NoError(t, err)
	min, max := set.Y.(*Continuous).Domain()
	assert.Equal(t, [2]float64{1, 20}, [2]float64{min, max})
	assert.Equal(t, []string{"g1", "g2"}, set.X.(*Ordinal).Domain())

	cfg = cfg.With(func(c *vizconfig.Config) { c.BoxPlot.HideOutliers = true })
	set, err = Build(cfg, in)
	require.NoError(t, err)
	min, max = set.Y.(*Continuous).Domain()
	assert.Equal(t, [2]float64{1, 9}, [2]float64{min, max})
}

func TestPaired(t *testing.T) {
	cfg := &vizconfig.Config{
		VisualizationType: vizconfig.PairedBar,
		Series:            []vizconfig.Series{{DataKey: "a"}, {DataKey: "b"}},
	}
	rows := []dataset.Row{{"a": 10.0, "b": 40.0}, {"a": "x", "b": 20.0}}
	set, err := Build(cfg, Input{Rows: rows, Extent: extent.Extent{Max: 40}, XMax: 200, YMax: 100})
	require.NoError(t, err)

	_, max := set.G1X.Domain()
	assert.InDelta(t, 40.8, max, delta)
	assert.Equal(t, 100.0, set.G1X.Map(0))
	assert.InDelta(t, 0, set.G1X.Map(40.8), delta)

	_, max = set.G2X.Domain()
	assert.Equal(t, 45.0, max, "second group is niced")
	assert.Equal(t, 200.0, set.G2X.Map(45))

	_, err = Build(cfg.With(func(c *vizconfig.Config) { c.Series = c.Series[:1] }), Input{})
	assert.True(t, errors.Is(err, vizconfig.ErrMissingConfig))
}

func TestForest(t *testing.T) {
	cfg := &vizconfig.Config{
		VisualizationType: vizconfig.ForestPlot,
		ForestPlot: vizconfig.ForestPlotOptions{
			Lower:                  "lo",
			Upper:                  "hi",
			RowHeight:              20,
			LeftWidthOffset:        10,
			RightWidthOffset:       10,
			LeftWidthOffsetMobile:  0,
			RightWidthOffsetMobile: 0,
			Regression:             vizconfig.Regression{ShowDiamond: true},
		},
	}
	rows := []dataset.Row{{"lo": "1", "hi": "8"}, {"lo": 2.0, "hi": "9"}}
	in := Input{Rows: rows, RowCount: 5, XMax: 200, YMax: 300, ScreenWidth: 1024}
	set, err := Build(cfg, in)
	require.NoError(t, err)

	y := set.Y.(*Continuous)
	assert.Equal(t, 40.0, y.Map(0))
	assert.Equal(t, 280.0, y.Map(5))

	x := set.X.(*Continuous)
	min, max := x.Domain()
	assert.Equal(t, [2]float64{-4, 14}, [2]float64{min, max})
	r0, r1 := x.PixelRange()
	assert.Equal(t, [2]float64{20, 180}, [2]float64{r0, r1})

	in.ScreenWidth = 400
	set, err = Build(cfg, in)
	require.NoError(t, err)
	r0, r1 = set.X.PixelRange()
	assert.Equal(t, [2]float64{0, 200}, [2]float64{r0, r1})

	_, err = Build(cfg.With(func(c *vizconfig.Config) { c.ForestPlot.Upper = "" }), in)
	assert.True(t, errors.Is(err, vizconfig.ErrMissingConfig))
}
