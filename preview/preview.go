// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preview renders a quick SVG preview of a computed chart.
//
// The preview is not the chart itself: it plots each series' values
// against the x axis as points (or lines, for line series) so the data
// and the computed extent can be checked by eye.
package preview

import (
	"errors"
	"fmt"
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/aclements/go-vizcore/chart"
	"github.com/aclements/go-vizcore/dataset"
	"github.com/aclements/go-vizcore/vizconfig"
)

// ErrNoData is returned by Plot for a chart with nothing to plot.
var ErrNoData = errors.New("no data to preview")

// Plot returns a plot of res's rows. The y scale always includes the
// computed extent.
func Plot(res *chart.Result) (*gg.Plot, error) {
	cfg := res.Config
	keys := cfg.SeriesKeys()
	if len(res.Rows) == 0 || len(keys) == 0 {
		return nil, ErrNoData
	}
	x := cfg.XAxis.DataKey
	if x == "" {
		return nil, vizconfig.Missing("xAxis.dataKey")
	}

	cols := append([]string{x}, keys...)
	tab := dataset.FloatTable(res.Rows, cols, keys)
	data := table.Unpivot(tab, "series", "value", keys...)

	plot := gg.NewPlot(data)
	plot.Stat(seriesLabels{cfg.Runtime.SeriesLabels})

	plot.SetScale("y", gg.NewLinearScaler().Include(res.Extent.Min).Include(res.Extent.Max))

	lines := lineKeys(cfg)
	if len(lines) > 0 {
		plot.Save()
		plot.SetData(table.Filter(plot.Data(), func(s string) bool { return lines[s] }, "series"))
		plot.Add(gg.LayerLines{X: x, Y: "value", Color: "label"})
		plot.Restore()
	}
	plot.Add(gg.LayerPoints{X: x, Y: "value", Color: "label"})

	plot.Add(gg.Title(string(cfg.VisualizationType)))
	if cfg.XAxis.Label != "" {
		plot.Add(gg.AxisLabel("x", cfg.XAxis.Label))
	}
	if cfg.YAxis.Label != "" {
		plot.Add(gg.AxisLabel("y", cfg.YAxis.Label))
	}
	return plot, nil
}

// WriteSVG renders plot to w at the given size.
func WriteSVG(w io.Writer, plot *gg.Plot, width, height int) error {
	if err := plot.WriteSVG(w, width, height); err != nil {
		return fmt.Errorf("writing preview: %w", err)
	}
	return nil
}

// lineKeys returns the set of series drawn as lines.
func lineKeys(cfg *vizconfig.Config) map[string]bool {
	lines := make(map[string]bool)
	switch cfg.VisualizationType {
	case vizconfig.Line:
		for _, k := range cfg.SeriesKeys() {
			lines[k] = true
		}
	case vizconfig.Combo:
		for _, s := range cfg.Series {
			if s.IsLine() {
				lines[s.DataKey] = true
			}
		}
	}
	return lines
}

// seriesLabels adds a "label" column giving the display name of each
// row's series.
type seriesLabels struct {
	labels map[string]string
}

func (s seriesLabels) F(g table.Grouping) table.Grouping {
	return table.MapCols(g,
		func(series []string, label []string) {
			for i, k := range series {
				if l, ok := s.labels[k]; ok {
					label[i] = l
				} else {
					label[i] = k
				}
			}
		}, "series")("label")
}
