// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bars

import (
	"github.com/aclements/go-vizcore/dataset"
	"github.com/aclements/go-vizcore/vizconfig"
)

// colorByColumn reports whether cfg colors bars by the values of a
// column rather than by series.
func colorByColumn(cfg *vizconfig.Config) bool {
	return cfg.Legend.ColorCode != "" && len(cfg.Series) > 1
}

// ColorByColumn returns one color per row: each distinct value of
// column, in first-seen order, takes the next palette color, cycling
// through palette. The result is repeated until it has at least n
// entries.
func ColorByColumn(rows []dataset.Row, column string, palette []string, n int) []string {
	if len(palette) == 0 || len(rows) == 0 {
		return nil
	}
	assigned := make(map[string]string)
	colors := make([]string, 0, len(rows))
	for _, r := range rows {
		v := dataset.String(r[column])
		c, ok := assigned[v]
		if !ok {
			c = palette[len(assigned)%len(palette)]
			assigned[v] = c
		}
		colors = append(colors, c)
	}
	for len(colors) < n {
		colors = append(colors, colors...)
	}
	return colors
}

// HighlightColor returns the color of the bar whose category is value
// if it matches one of cfg's highlighted values. On date axes the
// highlighted value is parsed and reformatted before comparing, so it
// matches the displayed category.
func HighlightColor(cfg *vizconfig.Config, value string) (string, bool) {
	for _, h := range cfg.HighlightedBarValues {
		if h.Value == "" {
			continue
		}
		match := h.Value == value
		if cfg.XAxis.Type == vizconfig.Date {
			t, err := dataset.ParseDate(cfg.XAxis.DateParseFormat, h.Value)
			match = err == nil && dataset.FormatDate(cfg.XAxis.DateDisplayFormat, t) == value
		}
		if !match {
			continue
		}
		if h.Color == "" {
			return DefaultHighlight, true
		}
		return h.Color, true
	}
	return "", false
}

// Category returns the displayed x-axis value of row. Date values
// are reformatted with the axis display format; values that do not
// parse are returned as is.
func Category(cfg *vizconfig.Config, row dataset.Row) string {
	s := dataset.String(row[cfg.XAxis.DataKey])
	if cfg.XAxis.Type != vizconfig.Date {
		return s
	}
	t, err := dataset.ParseDate(cfg.XAxis.DateParseFormat, s)
	if err != nil {
		return s
	}
	return dataset.FormatDate(cfg.XAxis.DateDisplayFormat, t)
}
