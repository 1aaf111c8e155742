// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings loads the render settings of the vizcore command:
// canvas size, margins, and default colors. Settings come from an
// optional YAML file, overridden by VIZCORE_* environment variables.
package settings

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/multierr"

	"github.com/aclements/go-vizcore/maplegend"
)

const (
	// PathEnv names the settings file when no path is given.
	PathEnv = "VIZCORE_SETTINGS"

	defaultPath = "vizcore.yaml"
)

// Settings are the render settings.
type Settings struct {
	Width  int `yaml:"width" env:"VIZCORE_WIDTH" env-default:"600"`
	Height int `yaml:"height" env:"VIZCORE_HEIGHT" env-default:"400"`

	// ScreenWidth is the viewport width used for responsive
	// layouts. 0 means a wide screen.
	ScreenWidth int `yaml:"screen_width" env:"VIZCORE_SCREEN_WIDTH"`

	Margins Margins `yaml:"margins"`

	Palette         []string `yaml:"palette" env:"VIZCORE_PALETTE" env-default:"#005eaa,#88c3ea,#c0e9ff,#1a9850,#fdae61"`
	DeviationColors []string `yaml:"deviation_colors" env:"VIZCORE_DEVIATION_COLORS" env-default:"#d73027,#1a9850"`

	Legend Legend `yaml:"legend"`
}

// Margins surround the plot area.
type Margins struct {
	Top    int `yaml:"top" env:"VIZCORE_MARGIN_TOP" env-default:"20"`
	Right  int `yaml:"right" env:"VIZCORE_MARGIN_RIGHT" env-default:"20"`
	Bottom int `yaml:"bottom" env:"VIZCORE_MARGIN_BOTTOM" env-default:"40"`
	Left   int `yaml:"left" env:"VIZCORE_MARGIN_LEFT" env-default:"60"`
}

// Legend configures map legends.
type Legend struct {
	Method string   `yaml:"method" env:"VIZCORE_LEGEND_METHOD" env-default:"equalinterval"`
	Bins   int      `yaml:"bins" env:"VIZCORE_LEGEND_BINS" env-default:"5"`
	Colors []string `yaml:"colors" env:"VIZCORE_LEGEND_COLORS"`
}

// Load reads the settings file at path, then the environment. If
// path is "", the file named by $VIZCORE_SETTINGS or vizcore.yaml is
// used. A missing default file is not an error.
func Load(path string) (*Settings, error) {
	explicit := path != ""
	if !explicit {
		path = defaultPath
		if v := strings.TrimSpace(os.Getenv(PathEnv)); v != "" {
			path, explicit = v, true
		}
	}

	s := new(Settings)
	st, err := os.Stat(path)
	switch {
	case err == nil && !st.IsDir():
		if err := cleanenv.ReadConfig(path, s); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	case explicit:
		if err == nil {
			err = fmt.Errorf("%s is a directory", path)
		}
		return nil, err
	default:
		if err := cleanenv.ReadEnv(s); err != nil {
			return nil, err
		}
	}
	normalize(s)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func normalize(s *Settings) {
	s.Legend.Method = strings.ToLower(strings.TrimSpace(s.Legend.Method))
	for _, p := range []*[]string{&s.Palette, &s.DeviationColors, &s.Legend.Colors} {
		var out []string
		for _, c := range *p {
			if c = strings.TrimSpace(c); c != "" {
				out = append(out, c)
			}
		}
		*p = out
	}
}

// Validate reports settings that cannot produce a chart.
func (s *Settings) Validate() error {
	var err error
	if s.PlotWidth() <= 0 {
		err = multierr.Append(err, fmt.Errorf("width %d leaves no room inside margins", s.Width))
	}
	if s.PlotHeight() <= 0 {
		err = multierr.Append(err, fmt.Errorf("height %d leaves no room inside margins", s.Height))
	}
	if s.ScreenWidth < 0 {
		err = multierr.Append(err, fmt.Errorf("negative screen width %d", s.ScreenWidth))
	}
	if len(s.DeviationColors) != 0 && len(s.DeviationColors) != 2 {
		err = multierr.Append(err, fmt.Errorf("need 2 deviation colors, have %d", len(s.DeviationColors)))
	}
	if _, merr := s.LegendMethod(); merr != nil {
		err = multierr.Append(err, merr)
	}
	return err
}

// PlotWidth is the width inside the margins.
func (s *Settings) PlotWidth() int {
	return s.Width - s.Margins.Left - s.Margins.Right
}

// PlotHeight is the height inside the margins.
func (s *Settings) PlotHeight() int {
	return s.Height - s.Margins.Top - s.Margins.Bottom
}

// LegendMethod returns the configured map legend classification.
func (s *Settings) LegendMethod() (maplegend.Method, error) {
	return maplegend.ParseMethod(s.Legend.Method)
}

// DeviationPair returns the deviation bar colors below and above the
// target.
func (s *Settings) DeviationPair() [2]string {
	var p [2]string
	copy(p[:], s.DeviationColors)
	return p
}
