// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package srgb parses CSS colors and computes sRGB relative luminance
// and WCAG contrast ratios.
package srgb

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// Color is an sRGB color with 8-bit channels and a [0, 1] alpha.
type Color struct {
	R, G, B uint8
	A       float64
}

var (
	Black = Color{0, 0, 0, 1}
	White = Color{255, 255, 255, 1}
)

var named = map[string]Color{
	"black": Black,
	"white": White,
}

// Parse parses a CSS color: #rgb, #rrggbb, #rrggbbaa, rgb(r, g, b),
// rgba(r, g, b, a), "black", or "white".
func Parse(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := named[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if args, ok := funcArgs(s, "rgba"); ok {
		return parseRGB(args)
	}
	if args, ok := funcArgs(s, "rgb"); ok {
		return parseRGB(args)
	}
	return Color{}, fmt.Errorf("malformed color %q", s)
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func funcArgs(s, name string) ([]string, bool) {
	if !strings.HasPrefix(s, name+"(") || !strings.HasSuffix(s, ")") {
		return nil, false
	}
	args := strings.Split(s[len(name)+1:len(s)-1], ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return args, true
}

// parseHex parses the digits of a hex color. The alpha digits of the
// 4- and 8-digit forms are split off first; go-colorful reads the rest.
func parseHex(h string) (Color, error) {
	bad := fmt.Errorf("malformed color #%s", h)
	rgb, alpha := h, ""
	switch len(h) {
	case 3, 6:
	case 4, 8:
		n := len(h) / 4
		rgb, alpha = h[:len(h)-n], h[len(h)-n:]
	default:
		return Color{}, bad
	}
	cf, err := colorful.Hex("#" + rgb)
	if err != nil {
		return Color{}, bad
	}
	c := fromColorful(cf)
	if alpha != "" {
		if len(alpha) == 1 {
			alpha += alpha
		}
		a, err := strconv.ParseUint(alpha, 16, 8)
		if err != nil {
			return Color{}, bad
		}
		c.A = float64(a) / 255
	}
	return c, nil
}

func fromColorful(cf colorful.Color) Color {
	r, g, b := cf.Clamped().RGB255()
	return Color{r, g, b, 1}
}

// toColorful returns c, without alpha, as a go-colorful color.
func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func parseRGB(args []string) (Color, error) {
	if len(args) != 3 && len(args) != 4 {
		return Color{}, fmt.Errorf("malformed color: want 3 or 4 components, got %d", len(args))
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return Color{}, fmt.Errorf("malformed color component %q", args[i])
		}
		ch[i] = uint8(math.Round(math.Max(0, math.Min(255, v))))
	}
	c := Color{ch[0], ch[1], ch[2], 1}
	if len(args) == 4 {
		a, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return Color{}, fmt.Errorf("malformed alpha %q", args[3])
		}
		c.A = math.Max(0, math.Min(1, a))
	}
	return c, nil
}

// Hex returns c as #rrggbb, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NRGBA returns c as a non-premultiplied image color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, uint8(math.Round(c.A * 255))}
}

// RGBA returns c as an opaque image color.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}

// FromColor converts an image color to an opaque Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B, 1}
}

// Luminance returns the relative luminance of c in [0, 1], ignoring
// alpha.
func (c Color) Luminance() float64 {
	r, g, b := c.toColorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast returns the WCAG contrast ratio of a and b, from 1 to 21.
func Contrast(a, b Color) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// ContrastString is Contrast over two CSS color strings.
func ContrastString(a, b string) (float64, error) {
	ca, err := Parse(a)
	if err != nil {
		return 0, err
	}
	cb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return Contrast(ca, cb), nil
}

// Strip returns a width by height image of colors laid side by side
// in equal-width blocks.
func Strip(colors []Color, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	if len(colors) == 0 {
		return dst
	}
	// One pixel per color, then scale up.
	src := image.NewNRGBA(image.Rect(0, 0, len(colors), 1))
	for i, c := range colors {
		src.SetNRGBA(i, 0, c.NRGBA())
	}
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
