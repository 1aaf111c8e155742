// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vizconfig

import (
	"github.com/gofrs/uuid/v5"
)

// minBarHeight is the smallest bar thickness of a non-lollipop chart.
const minBarHeight = 25

// Prepare returns a copy of c with defaults applied and the Runtime
// section derived from the rest of the configuration. Prepare is
// idempotent: preparing a prepared config yields an equal config.
func (c *Config) Prepare() *Config {
	return c.With(func(n *Config) {
		// Deviation bars only run horizontally.
		if n.VisualizationSubType == Horizontal || n.VisualizationType == DeviationBar {
			n.Orientation = Horizontal
		}
		if n.Orientation == "" {
			n.Orientation = Vertical
		}
		if n.IsHorizontal() && n.YAxis.LabelPlacement == "" {
			n.YAxis.LabelPlacement = LabelBelowBar
		}

		switch n.BarStyle {
		case "lollipop":
			n.IsLollipopChart = true
		case "rounded", "flat":
			n.IsLollipopChart = false
		}
		if !n.IsLollipopChart && n.BarHeight < minBarHeight {
			n.BarHeight = minBarHeight
		}

		rt := &n.Runtime
		if len(rt.SeriesKeys) == 0 {
			rt.SeriesKeys = n.SeriesKeys()
		}
		if n.VisualizationType == Combo && len(rt.BarSeriesKeys) == 0 && len(rt.LineSeriesKeys) == 0 {
			for _, s := range n.Series {
				if s.IsLine() {
					rt.LineSeriesKeys = append(rt.LineSeriesKeys, s.DataKey)
				} else {
					rt.BarSeriesKeys = append(rt.BarSeriesKeys, s.DataKey)
				}
			}
		}
		if rt.SeriesLabels == nil {
			rt.SeriesLabels = make(map[string]string)
		}
		for _, s := range n.Series {
			if _, ok := rt.SeriesLabels[s.DataKey]; ok {
				continue
			}
			if s.Name != "" {
				rt.SeriesLabels[s.DataKey] = s.Name
			} else {
				rt.SeriesLabels[s.DataKey] = s.DataKey
			}
		}
		for _, k := range rt.SeriesKeys {
			if _, ok := rt.SeriesLabels[k]; !ok {
				rt.SeriesLabels[k] = k
			}
		}

		rt.XAxis = n.XAxis
		rt.YAxis = n.YAxis
		rt.OriginalXAxis = n.XAxis

		if rt.UniqueID == "" {
			// Derive the ID from the persisted document so
			// that preparing the same config twice agrees.
			doc, err := n.Export()
			if err != nil {
				doc = []byte(n.VisualizationType)
			}
			rt.UniqueID = uuid.NewV5(uuid.NamespaceOID, string(doc)).String()
		}
	})
}
