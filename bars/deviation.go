// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bars

import (
	"fmt"
	"math"
	"strings"

	"github.com/aclements/go-vizcore/dataset"
	"github.com/aclements/go-vizcore/internal/srgb"
	"github.com/aclements/go-vizcore/internal/textmetrics"
	"github.com/aclements/go-vizcore/normalize"
	"github.com/aclements/go-vizcore/scales"
	"github.com/aclements/go-vizcore/vizconfig"
)

// Sides of a deviation bar relative to the target.
const (
	Left  = "left"
	Right = "right"
)

const (
	// darkContrast is the contrast against black below which a
	// bar is dark enough to take white text.
	darkContrast = 4.9

	targetLabelPad = 10
)

// DeviationOptions configure Deviation.
type DeviationOptions struct {
	// Colors are the colors of bars left and right of the target.
	Colors [2]string

	// Measure measures label text. If nil, textmetrics.Width is
	// used.
	Measure textmetrics.Measurer
}

// DeviationBar is one bar of a deviation bar chart.
type DeviationBar struct {
	Bar
	Category string

	// Side is Left if the value is below the target and Right
	// otherwise.
	Side string

	// TextFits reports whether the value label fits inside the
	// bar.
	TextFits bool
}

// TargetLabel is the label drawn next to the target line.
type TargetLabel struct {
	Text    string
	X, Y    float64
	Padding float64
	Show    bool
}

// DeviationResult is the geometry of a deviation bar chart.
type DeviationResult struct {
	Bars []DeviationBar

	// TargetX is the pixel position bars extend from.
	TargetX float64

	ShowTargetLine bool
	TargetLabel    TargetLabel

	TotalHeight float64
}

// Deviation lays out a deviation bar chart: one horizontal bar per
// row, extending from the target value to the row's value on x. cfg
// must have exactly one series.
func Deviation(cfg *vizconfig.Config, rows []dataset.Row, x *scales.Continuous, opts DeviationOptions) (*DeviationResult, error) {
	if len(cfg.Series) != 1 {
		return nil, fmt.Errorf("%w: exactly one series (have %d)", vizconfig.ErrMissingConfig, len(cfg.Series))
	}
	measure := opts.Measure
	if measure == nil {
		measure = textmetrics.Width
	}
	key := cfg.Series[0].DataKey
	target := cfg.XAxis.Target.Float()
	domainMin, maxVal := x.Domain()

	res := &DeviationResult{
		TargetX: math.Max(x.Map(0), math.Min(x.Map(target), x.Map(maxVal))),
	}

	hasNegative := false
	for _, r := range rows {
		if v, ok := normalize.Number(r[key]); ok && v < 0 {
			hasNegative = true
			break
		}
	}
	res.ShowTargetLine = hasNegative || target > 0 || domainMin < 0

	thick := cfg.BarHeight.Float()
	if cfg.IsLollipopChart {
		thick = LollipopWidth(cfg.LollipopSize)
	}
	border := 0.0
	if cfg.BarHasBorder == "true" {
		border = BorderWidth
	}
	step := cfg.BarSpace.Float() + thick + border
	fontSize := FontSize(cfg.FontSize)
	radius := Radius(cfg.RoundingStyle)

	for i, r := range rows {
		v := normalize.NumberOr(r[key], 0)
		baseX := x.Map(v)
		b := DeviationBar{
			Bar: Bar{
				Key:    key,
				Value:  v,
				Y:      float64(i) * step,
				Width:  math.Abs(baseX - res.TargetX),
				Height: thick,
			},
			Category: Category(cfg, r),
			Side:     Right,
		}
		b.X = baseX
		if v > target {
			b.X = res.TargetX
		}
		b.Color = opts.Colors[1]
		if v < target {
			b.Side = Left
			b.Color = opts.Colors[0]
		}
		if cfg.BarStyle == "rounded" {
			b.Corners = deviationCorners(cfg, b.Side)
			b.Radius = radius
		}

		text := FormatValue(v)
		b.TextFits = measure(text, fontSize, false) < b.Width-labelPad
		if cfg.YAxis.DisplayNumbersOnBar {
			b.Label = deviationLabel(cfg, &b, text, baseX, textFill(b.Color))
		}

		if cfg.IsLollipopChart {
			size := CapSize(cfg.LollipopSize)
			c := &Cap{Shape: cfg.LollipopShape, Size: size, X: baseX, Y: b.Y + thick/2}
			if c.Shape == "square" {
				c.Y = b.Y - thick/2
			} else {
				c.Shape = "circle"
			}
			b.Cap = c
		}
		res.Bars = append(res.Bars, b)
	}
	res.TotalHeight = step * float64(len(rows))

	if len(rows) > 0 {
		res.TargetLabel = targetLabel(cfg, rows[0], key, target, thick, res.TargetX, x.Map(maxVal), measure)
	}
	return res, nil
}

func deviationCorners(cfg *vizconfig.Config, side string) Corner {
	if cfg.TipRounding == "full" {
		return AllCorners
	}
	if side == Left {
		return TopLeft | BottomLeft
	}
	return TopRight | BottomRight
}

// textFill returns the fill of text drawn over color: white on dark
// colors and black otherwise.
func textFill(color string) string {
	if c, err := srgb.ContrastString("#000000", color); err == nil && c < darkContrast {
		return "#FFFFFF"
	}
	return "#000000"
}

func deviationLabel(cfg *vizconfig.Config, b *DeviationBar, text string, baseX float64, fill string) *Label {
	l := &Label{Text: text, X: baseX, Y: b.Y + b.Height/2, Fill: "#000000"}
	if cfg.IsLollipopChart {
		size := CapSize(cfg.LollipopSize)
		if b.Side == Right {
			l.Anchor, l.Dx = "start", size+labelPad
		} else {
			l.Anchor, l.Dx = "end", -size
		}
		return l
	}
	switch {
	case b.Side == Right && b.TextFits:
		l.Anchor, l.Dx, l.Fill = "end", -labelPad, fill
	case b.Side == Right:
		l.Anchor, l.Dx = "start", labelPad
	case b.TextFits:
		l.Anchor, l.Dx, l.Fill = "start", labelPad, fill
	default:
		l.Anchor, l.Dx = "end", -labelPad
	}
	return l
}

// targetLabel places the target label on the side of the target line
// away from the first bar, if it fits there.
func targetLabel(cfg *vizconfig.Config, first dataset.Row, key string, target, thick, targetX, maxX float64, measure textmetrics.Measurer) TargetLabel {
	l := TargetLabel{
		Text: strings.TrimSpace(cfg.XAxis.TargetLabel + " " + FormatValue(target)),
		Y:    thick / 2,
	}
	width := measure(l.Text, FontSize(cfg.FontSize), true)
	show := false
	if normalize.NumberOr(first[key], 0) < target {
		l.Padding = targetLabelPad
		show = maxX-targetX > width+l.Padding
		l.X = targetX
	} else {
		l.Padding = -targetLabelPad
		show = width-l.Padding < targetX
		l.X = targetX - width
	}
	l.Show = cfg.XAxis.ShowTargetLabel && show
	return l
}
