// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vizconfig defines the declarative chart configuration.
//
// A Config is the JSON document exchanged between the chart editor and
// the render core. Configs are treated as immutable values: With and
// Prepare return modified copies and never change their receiver.
package vizconfig

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tiendc/go-deepcopy"
)

// Orientations.
const (
	Vertical   = "vertical"
	Horizontal = "horizontal"
)

// Sub-types.
const (
	Regular = "regular"
	Stacked = "stacked"
)

// Axis types.
const (
	Categorical = "categorical"
	Date        = "date"
	Continuous  = "continuous"
)

// Label placements for horizontal bars.
const (
	LabelBelowBar = "Below Bar"
	LabelOnBar    = "On Bar"
)

// Config is a chart configuration.
type Config struct {
	VisualizationType    Kind   `json:"visualizationType"`
	VisualizationSubType string `json:"visualizationSubType,omitempty"`
	Orientation          string `json:"orientation,omitempty"`
	UseLogScale          bool   `json:"useLogScale,omitempty"`

	Series []Series `json:"series,omitempty"`
	XAxis  Axis     `json:"xAxis"`
	YAxis  Axis     `json:"yAxis"`

	IsLollipopChart bool   `json:"isLollipopChart,omitempty"`
	LollipopSize    string `json:"lollipopSize,omitempty"`
	LollipopShape   string `json:"lollipopShape,omitempty"`
	BarHeight       Number `json:"barHeight,omitempty"`
	BarSpace        Number `json:"barSpace,omitempty"`
	BarStyle        string `json:"barStyle,omitempty"`
	BarHasBorder    string `json:"barHasBorder,omitempty"`
	TipRounding     string `json:"tipRounding,omitempty"`
	RoundingStyle   string `json:"roundingStyle,omitempty"`
	FontSize        string `json:"fontSize,omitempty"`

	Palette      string   `json:"palette,omitempty"`
	CustomColors []string `json:"customColors,omitempty"`
	TwoColor     TwoColor `json:"twoColor"`
	Legend       Legend   `json:"legend"`

	HighlightedBarValues []Highlight `json:"highlightedBarValues,omitempty"`

	BoxPlot    BoxPlotOptions    `json:"boxplot"`
	ForestPlot ForestPlotOptions `json:"forestPlot"`

	Regions []Region `json:"regions,omitempty"`
	Filters []Filter `json:"filters,omitempty"`

	// Runtime and NewViz are transient and are dropped by Export.
	Runtime Runtime `json:"runtime"`
	NewViz  bool    `json:"newViz,omitempty"`
}

// Series is one configured data series.
type Series struct {
	DataKey string `json:"dataKey"`
	// Type is "Bar", "Line", or one of the dashed line styles.
	Type string `json:"type,omitempty"`
	Name string `json:"name,omitempty"`
}

// IsLine reports whether s draws as a line.
func (s Series) IsLine() bool {
	switch s.Type {
	case "Line", "dashed-sm", "dashed-md", "dashed-lg":
		return true
	}
	return false
}

// Axis describes one chart axis.
type Axis struct {
	DataKey           string `json:"dataKey,omitempty"`
	Label             string `json:"label,omitempty"`
	Type              string `json:"type,omitempty"`
	SortDates         bool   `json:"sortDates,omitempty"`
	DateParseFormat   string `json:"dateParseFormat,omitempty"`
	DateDisplayFormat string `json:"dateDisplayFormat,omitempty"`
	Size              Number `json:"size,omitempty"`

	// Deviation bar target.
	Target          Number `json:"target,omitempty"`
	TargetLabel     string `json:"targetLabel,omitempty"`
	ShowTargetLabel bool   `json:"showTargetLabel,omitempty"`

	LabelPlacement      string `json:"labelPlacement,omitempty"`
	DisplayNumbersOnBar bool   `json:"displayNumbersOnBar,omitempty"`
}

// TwoColor selects the left/right palette of a deviation bar chart.
type TwoColor struct {
	Palette string `json:"palette,omitempty"`
}

// Legend holds legend options.
type Legend struct {
	// ColorCode names a column whose distinct values pick bar colors.
	ColorCode string `json:"colorCode,omitempty"`
}

// Highlight marks bars whose category equals Value.
type Highlight struct {
	Value string `json:"value"`
	Color string `json:"color,omitempty"`
}

// BoxPlotOptions holds precomputed box plot summaries.
type BoxPlotOptions struct {
	Plots        []BoxPlotEntry `json:"plots,omitempty"`
	Categories   []string       `json:"categories,omitempty"`
	HideOutliers bool           `json:"hideOutliers,omitempty"`
}

// BoxPlotEntry is the summary of one box.
type BoxPlotEntry struct {
	Columns           []string  `json:"columnCategory,omitempty"`
	ColumnMin         Number    `json:"columnMin,omitempty"`
	ColumnQ1          Number    `json:"columnFirstQuartile,omitempty"`
	ColumnMedian      Number    `json:"columnMedian,omitempty"`
	ColumnQ3          Number    `json:"columnThirdQuartile,omitempty"`
	ColumnMax         Number    `json:"columnMax,omitempty"`
	ColumnOutliers    []float64 `json:"columnOutliers,omitempty"`
	ColumnLowerBounds Number    `json:"columnLowerBounds"`
	ColumnUpperBounds Number    `json:"columnUpperBounds"`
}

// ForestPlotOptions configures a forest plot.
type ForestPlotOptions struct {
	Lower     string `json:"lower,omitempty"`
	Upper     string `json:"upper,omitempty"`
	RowHeight Number `json:"rowHeight,omitempty"`

	// Offsets are percentages of the plot width.
	LeftWidthOffset        Number `json:"leftWidthOffset,omitempty"`
	RightWidthOffset       Number `json:"rightWidthOffset,omitempty"`
	LeftWidthOffsetMobile  Number `json:"leftWidthOffsetMobile,omitempty"`
	RightWidthOffsetMobile Number `json:"rightWidthOffsetMobile,omitempty"`

	Regression Regression `json:"regression"`
}

// Regression describes the optional summary row of a forest plot.
type Regression struct {
	ShowDiamond bool   `json:"showDiamond,omitempty"`
	Description string `json:"description,omitempty"`
}

// Region is a shaded annotation region.
type Region struct {
	From  string `json:"from,omitempty"`
	To    string `json:"to,omitempty"`
	Label string `json:"label,omitempty"`
	Color string `json:"color,omitempty"`
}

// Filter restricts rows to those whose ColumnName equals Active.
type Filter struct {
	ColumnName string   `json:"columnName"`
	Values     []string `json:"values,omitempty"`
	Active     string   `json:"active,omitempty"`
}

// Runtime holds values derived from the rest of the configuration.
type Runtime struct {
	SeriesKeys     []string          `json:"seriesKeys,omitempty"`
	BarSeriesKeys  []string          `json:"barSeriesKeys,omitempty"`
	LineSeriesKeys []string          `json:"lineSeriesKeys,omitempty"`
	SeriesLabels   map[string]string `json:"seriesLabels,omitempty"`
	XAxis          Axis              `json:"xAxis"`
	YAxis          Axis              `json:"yAxis"`
	OriginalXAxis  Axis              `json:"originalXAxis"`
	UniqueID       string            `json:"uniqueId,omitempty"`
}

// Parse decodes a configuration document.
func Parse(data []byte) (*Config, error) {
	c := new(Config)
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return c, nil
}

// Load reads and decodes the configuration document at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	var n Config
	if err := deepcopy.Copy(&n, c); err != nil {
		// Copying between identical types cannot fail.
		panic("vizconfig: clone: " + err.Error())
	}
	return &n
}

// With returns a copy of c modified by f. c itself is not changed.
func (c *Config) With(f func(*Config)) *Config {
	n := c.Clone()
	f(n)
	return n
}

// IsHorizontal reports whether bars run horizontally.
func (c *Config) IsHorizontal() bool {
	return c.Orientation == Horizontal
}

// IsStacked reports whether series stack on top of each other.
func (c *Config) IsStacked() bool {
	return c.VisualizationSubType == Stacked
}

// AllBarSeries reports whether every configured series draws as a
// bar. It is true when there are no series.
func (c *Config) AllBarSeries() bool {
	for _, s := range c.Series {
		if s.Type != "Bar" {
			return false
		}
	}
	return true
}

// AllLineSeries reports whether every configured series draws as a
// line. It is true when there are no series.
func (c *Config) AllLineSeries() bool {
	for _, s := range c.Series {
		if !s.IsLine() {
			return false
		}
	}
	return true
}

// SeriesKeys returns the runtime series keys, falling back to the
// data keys of Series.
func (c *Config) SeriesKeys() []string {
	if len(c.Runtime.SeriesKeys) > 0 {
		return c.Runtime.SeriesKeys
	}
	keys := make([]string, 0, len(c.Series))
	for _, s := range c.Series {
		keys = append(keys, s.DataKey)
	}
	return keys
}
