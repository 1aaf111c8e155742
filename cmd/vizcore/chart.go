// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/aclements/go-vizcore/bars"
	"github.com/aclements/go-vizcore/chart"
	"github.com/aclements/go-vizcore/extent"
	"github.com/aclements/go-vizcore/preview"
	"github.com/aclements/go-vizcore/scales"
)

func extentCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "extent",
		Short: "Print the numeric extent of the chart data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, _, err := o.compute()
			if err != nil {
				return err
			}
			return o.writeJSON(cmd, res.Extent)
		},
	}
}

// scaleInfo describes one scale.
type scaleInfo struct {
	Type      scales.Type `json:"type"`
	Domain    any         `json:"domain"`
	Range     [2]float64  `json:"range"`
	Ticks     []float64   `json:"ticks,omitempty"`
	Step      float64     `json:"step,omitempty"`
	Bandwidth float64     `json:"bandwidth,omitempty"`
}

const maxTicks = 10

func describeScale(s scales.Scale) *scaleInfo {
	if s == nil {
		return nil
	}
	info := &scaleInfo{Type: s.Type()}
	info.Range[0], info.Range[1] = s.PixelRange()
	switch s := s.(type) {
	case *scales.Continuous:
		min, max := s.Domain()
		info.Domain = [2]float64{min, max}
		info.Ticks = s.Ticks(maxTicks)
	case *scales.Ordinal:
		info.Domain = s.Domain()
		info.Step = s.Step()
		info.Bandwidth = s.Bandwidth()
	}
	return info
}

func scalesCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scales",
		Short: "Print the chart's scales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, _, err := o.compute()
			if err != nil {
				return err
			}
			out := map[string]*scaleInfo{}
			if set := res.Scales; set != nil {
				for name, s := range map[string]scales.Scale{"x": set.X, "y": set.Y} {
					if s != nil {
						out[name] = describeScale(s)
					}
				}
				if set.Series != nil {
					out["series"] = describeScale(set.Series)
				}
				if set.G1X != nil {
					out["g1x"] = describeScale(set.G1X)
					out["g2x"] = describeScale(set.G2X)
				}
			}
			return o.writeJSON(cmd, out)
		},
	}
}

// geometry is the printed form of a chart's marks.
type geometry struct {
	Kind      string                `json:"visualizationType"`
	Height    float64               `json:"height"`
	Extent    extent.Extent         `json:"extent"`
	Bars      *bars.Result          `json:"bars,omitempty"`
	Deviation *bars.DeviationResult `json:"deviation,omitempty"`
	Boxes     []chart.Box           `json:"boxes,omitempty"`
	Slices    []chart.Slice         `json:"slices,omitempty"`
}

func geometryCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "geometry",
		Short: "Print the geometry of the chart's marks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, _, err := o.compute()
			if err != nil {
				return err
			}
			return o.writeJSON(cmd, geometry{
				Kind:      string(res.Config.VisualizationType),
				Height:    res.Height,
				Extent:    res.Extent,
				Bars:      res.Bars,
				Deviation: res.Deviation,
				Boxes:     res.Boxes,
				Slices:    res.Slices,
			})
		},
	}
}

func plotCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "plot",
		Short: "Render an SVG preview of the chart data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, s, err := o.compute()
			if err != nil {
				return err
			}
			p, err := preview.Plot(res)
			if err != nil {
				return err
			}
			return o.write(cmd, func(w io.Writer) error {
				return preview.WriteSVG(w, p, s.Width, s.Height)
			})
		},
	}
}
