// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package maplegend classifies the values of a choropleth map into
// legend bins and colors map regions by bin.
package maplegend

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/stats"

	"github.com/aclements/go-vizcore/dataset"
	"github.com/aclements/go-vizcore/internal/srgb"
	"github.com/aclements/go-vizcore/normalize"
)

// A Method is a way of dividing values into bins.
type Method int

const (
	// EqualInterval bins span equal ranges of value.
	EqualInterval Method = iota
	// Quantile bins hold roughly equal numbers of values.
	Quantile
)

func (m Method) String() string {
	switch m {
	case EqualInterval:
		return "equalinterval"
	case Quantile:
		return "quantile"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod returns the Method named s.
func ParseMethod(s string) (Method, error) {
	for _, m := range []Method{EqualInterval, Quantile} {
		if s == m.String() {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown classification method %q", s)
}

// ErrNoValues is returned by New when there is nothing to classify.
var ErrNoValues = errors.New("no numeric values to classify")

// DefaultColors are the ends of the default sequential gradient.
var DefaultColors = []string{"#eff3ff", "#08519c"}

const (
	defaultBins = 5

	// Hover and active fills are the bin color darkened by these
	// fractions.
	hoverDarken  = 0.2
	activeDarken = 0.35

	// minTextContrast is the contrast against white text below
	// which labels are drawn dark.
	minTextContrast = 4.5
	darkText        = "#202020"
	lightText       = "#FFF"
)

// Options configure New.
type Options struct {
	Method Method

	// Bins is the number of bins. If 0, 5 bins are used.
	Bins int

	// Colors are the gradient the bin colors are sampled from, low
	// to high. If empty, DefaultColors is used.
	Colors []string
}

// Bin is one legend entry covering [Min, Max].
type Bin struct {
	Min, Max float64
	Color    string
	Count    int
}

// Legend is a classification of values into colored bins.
type Legend struct {
	Method Method
	Bins   []Bin
}

// New classifies values into bins. Non-finite values are ignored.
func New(values []float64, opts Options) (*Legend, error) {
	var xs []float64
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			xs = append(xs, v)
		}
	}
	if len(xs) == 0 {
		return nil, ErrNoValues
	}
	n := opts.Bins
	if n <= 0 {
		n = defaultBins
	}
	grad, err := gradient(opts.Colors)
	if err != nil {
		return nil, err
	}

	s := stats.Sample{Xs: xs}
	s.Sort()
	var breaks []float64
	switch opts.Method {
	case EqualInterval:
		min, max := s.Bounds()
		for i := 0; i <= n; i++ {
			breaks = append(breaks, min+(max-min)*float64(i)/float64(n))
		}
	case Quantile:
		for i := 0; i <= n; i++ {
			breaks = append(breaks, s.Quantile(float64(i)/float64(n)))
		}
	default:
		return nil, fmt.Errorf("unknown classification method %v", opts.Method)
	}

	l := &Legend{Method: opts.Method}
	for i := 0; i < n; i++ {
		lo, hi := breaks[i], breaks[i+1]
		if i > 0 && hi == l.Bins[len(l.Bins)-1].Max {
			// Empty bin from repeated values.
			continue
		}
		l.Bins = append(l.Bins, Bin{Min: lo, Max: hi})
	}
	for i := range l.Bins {
		x := 1.0
		if len(l.Bins) > 1 {
			x = float64(i) / float64(len(l.Bins)-1)
		}
		l.Bins[i].Color = srgb.FromColor(grad.Map(x)).Hex()
	}
	for _, x := range xs {
		if i, ok := l.Classify(x); ok {
			l.Bins[i].Count++
		}
	}
	return l, nil
}

func gradient(colors []string) (palette.RGBGradient, error) {
	if len(colors) == 0 {
		colors = DefaultColors
	}
	var g palette.RGBGradient
	for _, s := range colors {
		c, err := srgb.Parse(s)
		if err != nil {
			return g, err
		}
		g.Colors = append(g.Colors, c.RGBA())
	}
	if len(g.Colors) == 1 {
		g.Colors = append(g.Colors, g.Colors[0])
	}
	return g, nil
}

// Classify returns the index of the bin that holds v. Bins include
// their upper bound; the first bin also includes its lower bound.
func (l *Legend) Classify(v float64) (int, bool) {
	if len(l.Bins) == 0 || math.IsNaN(v) || v < l.Bins[0].Min {
		return 0, false
	}
	for i, b := range l.Bins {
		if v <= b.Max {
			return i, true
		}
	}
	return 0, false
}

// Apply returns the fill, hover, and active colors of a region whose
// value is v. It returns false if v is not numeric or falls outside
// every bin.
func (l *Legend) Apply(v any) ([3]string, bool) {
	x, ok := normalize.Number(v)
	if !ok {
		return [3]string{}, false
	}
	i, ok := l.Classify(x)
	if !ok {
		return [3]string{}, false
	}
	fill := l.Bins[i].Color
	return [3]string{fill, darken(fill, hoverDarken), darken(fill, activeDarken)}, true
}

func darken(c string, by float64) string {
	base, err := srgb.Parse(c)
	if err != nil {
		return c
	}
	g := palette.RGBGradient{Colors: []color.RGBA{base.RGBA(), {0, 0, 0, 255}}}
	return srgb.FromColor(g.Map(by)).Hex()
}

// Swatch renders the legend's bin colors as a width by height strip.
func (l *Legend) Swatch(width, height int) *image.NRGBA {
	var colors []srgb.Color
	for _, b := range l.Bins {
		if c, err := srgb.Parse(b.Color); err == nil {
			colors = append(colors, c)
		}
	}
	return srgb.Strip(colors, width, height)
}

// NoDataColor fills regions without legend data.
const NoDataColor = "#E6E6E6"

// TextColor returns the color of a label drawn over fill: white
// unless that has too little contrast.
func TextColor(fill string) string {
	c, err := srgb.ContrastString(lightText, fill)
	if err == nil && c < minTextContrast {
		return darkText
	}
	return lightText
}

// StrokeColor returns the region border color for a border setting.
func StrokeColor(border string) string {
	if border == "darkGray" {
		return "rgba(0, 0, 0, 0.2)"
	}
	return "rgba(255,255,255,0.7)"
}

// Territory is the styling of one map region.
type Territory struct {
	Geo   string
	Value float64

	// HasData is false if the region's value is missing or falls
	// outside the legend. Such regions are filled with NoDataColor
	// and have no hover or active color.
	HasData bool

	Fill, Hover, Active string
	Text                string
}

// Territories styles one region per row, keyed by the row's geoKey
// column and colored by its valueKey column.
func (l *Legend) Territories(rows []dataset.Row, geoKey, valueKey string) []Territory {
	ts := make([]Territory, 0, len(rows))
	for _, r := range rows {
		t := Territory{Geo: dataset.String(r[geoKey]), Fill: NoDataColor, Text: darkText}
		if x, ok := normalize.Number(r[valueKey]); ok {
			t.Value = x
		}
		if c, ok := l.Apply(r[valueKey]); ok {
			t.HasData = true
			t.Fill, t.Hover, t.Active = c[0], c[1], c[2]
			t.Text = TextColor(t.Fill)
		}
		ts = append(ts, t)
	}
	return ts
}

// Values returns the numeric cells of column key. Rows whose cell is
// not numeric are skipped.
func Values(rows []dataset.Row, key string) []float64 {
	var xs []float64
	for _, r := range rows {
		if x, ok := normalize.Number(r[key]); ok {
			xs = append(xs, x)
		}
	}
	return xs
}
