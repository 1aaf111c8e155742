// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textmetrics measures the rendered width of label text.
//
// Widths are computed with the Go fonts at 72 DPI, so one point is one
// pixel. They approximate, but will not exactly match, a browser's
// sans-serif font.
package textmetrics

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// A Measurer returns the width in pixels of text set at size pixels.
type Measurer func(text string, size float64, bold bool) float64

type faceKey struct {
	size float64
	bold bool
}

var (
	mu    sync.Mutex
	fonts [2]*opentype.Font
	faces = make(map[faceKey]font.Face)
)

// Width returns the width in pixels of text set in the Go font at
// size pixels. It is a Measurer.
func Width(text string, size float64, bold bool) float64 {
	if text == "" || size <= 0 {
		return 0
	}
	mu.Lock()
	defer mu.Unlock()
	face, err := faceFor(faceKey{size, bold})
	if err != nil {
		// The embedded fonts always parse.
		panic("textmetrics: " + err.Error())
	}
	return float64(font.MeasureString(face, text)) / 64
}

func faceFor(k faceKey) (font.Face, error) {
	if f, ok := faces[k]; ok {
		return f, nil
	}
	i, ttf := 0, goregular.TTF
	if k.bold {
		i, ttf = 1, gobold.TTF
	}
	if fonts[i] == nil {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, err
		}
		fonts[i] = f
	}
	face, err := opentype.NewFace(fonts[i], &opentype.FaceOptions{
		Size:    k.size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	faces[k] = face
	return face, nil
}
