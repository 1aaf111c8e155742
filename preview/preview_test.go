// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-vizcore/chart"
	"github.com/aclements/go-vizcore/dataset"
	"github.com/aclements/go-vizcore/vizconfig"
)

func TestWriteSVG(t *testing.T) {
	cfg := &vizconfig.Config{
		VisualizationType: vizconfig.Combo,
		Series: []vizconfig.Series{
			{DataKey: "cases", Type: "Bar", Name: "Cases"},
			{DataKey: "rate", Type: "Line"},
		},
		XAxis: vizconfig.Axis{DataKey: "year", Label: "Year"},
	}
	rows := []dataset.Row{
		{"year": "2019", "cases": "1,200", "rate": 3.5},
		{"year": "2020", "cases": 900.0, "rate": 2.25},
		{"year": "2021", "cases": "n/a", "rate": 4.0},
	}
	res, err := chart.Compute(cfg, rows, chart.Dimensions{Width: 400, Height: 300}, chart.Options{})
	require.NoError(t, err)

	p, err := Plot(res)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, p, 400, 300))
	assert.True(t, strings.Contains(buf.String(), "<svg"), "output is not SVG")
}

func TestLineKeys(t *testing.T) {
	cfg := &vizconfig.Config{
		VisualizationType: vizconfig.Combo,
		Series:            []vizconfig.Series{{DataKey: "a", Type: "Bar"}, {DataKey: "b", Type: "dashed-sm"}},
	}
	assert.Equal(t, map[string]bool{"b": true}, lineKeys(cfg))

	cfg = cfg.With(func(c *vizconfig.Config) { c.VisualizationType = vizconfig.Line })
	assert.Equal(t, map[string]bool{"a": true, "b": true}, lineKeys(cfg))

	cfg = cfg.With(func(c *vizconfig.Config) { c.VisualizationType = vizconfig.Bar })
	assert.Empty(t, lineKeys(cfg))
}

func TestNoData(t *testing.T) {
	cfg := &vizconfig.Config{
		VisualizationType: vizconfig.Line,
		Series:            []vizconfig.Series{{DataKey: "v"}},
		XAxis:             vizconfig.Axis{DataKey: "x"},
	}
	res, err := chart.Compute(cfg, nil, chart.Dimensions{Width: 10, Height: 10}, chart.Options{})
	require.NoError(t, err)
	_, err = Plot(res)
	assert.ErrorIs(t, err, ErrNoData)
}
