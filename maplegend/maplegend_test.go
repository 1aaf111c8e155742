// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maplegend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-vizcore/dataset"
	"github.com/aclements/go-vizcore/internal/srgb"
)

func oneToTen() []float64 {
	var xs []float64
	for i := 10; i >= 1; i-- {
		xs = append(xs, float64(i))
	}
	return xs
}

func TestEqualInterval(t *testing.T) {
	l, err := New(append(oneToTen(), math.NaN()), Options{})
	require.NoError(t, err)
	require.Len(t, l.Bins, 5)

	assert.Equal(t, 1.0, l.Bins[0].Min)
	assert.InDelta(t, 2.8, l.Bins[0].Max, 1e-9)
	assert.Equal(t, 10.0, l.Bins[4].Max)
	for i, b := range l.Bins {
		assert.Equal(t, 2, b.Count, "bin %d", i)
	}
	assert.Equal(t, "#eff3ff", l.Bins[0].Color)
	assert.Equal(t, "#08519c", l.Bins[4].Color)
}

func TestQuantile(t *testing.T) {
	l, err := New([]float64{1, 1, 1, 1, 2}, Options{Method: Quantile, Bins: 4})
	require.NoError(t, err)
	assert.Len(t, l.Bins, 3, "repeated values collapse bins")
	total := 0
	for _, b := range l.Bins {
		total += b.Count
	}
	assert.Equal(t, 5, total)
	assert.Equal(t, 4, l.Bins[0].Count)

	l, err = New(oneToTen(), Options{Method: Quantile, Bins: 2})
	require.NoError(t, err)
	require.Len(t, l.Bins, 2)
	assert.Equal(t, 5.5, l.Bins[0].Max)
}

func TestNewErrors(t *testing.T) {
	_, err := New(nil, Options{})
	assert.ErrorIs(t, err, ErrNoValues)
	_, err = New([]float64{math.Inf(1)}, Options{})
	assert.ErrorIs(t, err, ErrNoValues)
	_, err = New([]float64{1}, Options{Colors: []string{"chartreuse-ish"}})
	assert.Error(t, err)
	_, err = New([]float64{1}, Options{Method: Method(7)})
	assert.Error(t, err)
}

func TestParseMethod(t *testing.T) {
	for _, m := range []Method{EqualInterval, Quantile} {
		got, err := ParseMethod(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMethod(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMethod("jenks"); err == nil {
		t.Errorf("ParseMethod(\"jenks\") succeeded")
	}
}

func TestApply(t *testing.T) {
	l, err := New(oneToTen(), Options{Colors: []string{"#ffffff", "#000000"}})
	require.NoError(t, err)

	c, ok := l.Apply("9.5")
	require.True(t, ok)
	assert.Equal(t, "#000000", c[0])
	assert.Equal(t, "#000000", c[1], "black cannot get darker")

	c, ok = l.Apply(1.0)
	require.True(t, ok)
	assert.Equal(t, "#ffffff", c[0])
	fill, hover, active := srgb.MustParse(c[0]), srgb.MustParse(c[1]), srgb.MustParse(c[2])
	assert.Less(t, hover.Luminance(), fill.Luminance())
	assert.Less(t, active.Luminance(), hover.Luminance())

	for _, v := range []any{0.5, 11.0, "n/a", nil} {
		if _, ok := l.Apply(v); ok {
			t.Errorf("Apply(%v) matched a bin", v)
		}
	}
}

func TestTextColor(t *testing.T) {
	for fill, want := range map[string]string{
		"#08519c": "#FFF",
		"#eff3ff": "#202020",
		"#000000": "#FFF",
		"bogus":   "#FFF",
	} {
		if got := TextColor(fill); got != want {
			t.Errorf("TextColor(%q) = %q, want %q", fill, got, want)
		}
	}
	assert.Equal(t, "rgba(0, 0, 0, 0.2)", StrokeColor("darkGray"))
	assert.Equal(t, "rgba(255,255,255,0.7)", StrokeColor("white"))
}

func TestTerritories(t *testing.T) {
	rows := []dataset.Row{
		{"state": "Alabama", "rate": "10"},
		{"state": "Alaska", "rate": ""},
		{"state": "Arizona", "rate": 1.0},
	}
	l, err := New(Values(rows, "rate"), Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, l.Bins[0].Count+l.Bins[len(l.Bins)-1].Count)

	ts := l.Territories(rows, "state", "rate")
	require.Len(t, ts, 3)
	assert.True(t, ts[0].HasData)
	assert.Equal(t, "#08519c", ts[0].Fill)
	assert.Equal(t, "#FFF", ts[0].Text)
	assert.False(t, ts[1].HasData)
	assert.Equal(t, NoDataColor, ts[1].Fill)
	assert.Equal(t, "#202020", ts[1].Text)
	assert.Empty(t, ts[1].Hover)
	assert.Equal(t, 0.0, ts[1].Value)
	assert.Equal(t, "#202020", ts[2].Text)
}

func TestSwatch(t *testing.T) {
	l, err := New(oneToTen(), Options{})
	require.NoError(t, err)
	img := l.Swatch(50, 2)
	assert.Equal(t, srgb.MustParse(l.Bins[0].Color).NRGBA(), img.NRGBAAt(0, 1))
	assert.Equal(t, srgb.MustParse(l.Bins[4].Color).NRGBA(), img.NRGBAAt(49, 0))
}
