// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vizconfig

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ErrMissingConfig is wrapped by every error that reports an absent
// required configuration field.
var ErrMissingConfig = errors.New("missing required configuration")

// Missing returns an error wrapping ErrMissingConfig for field.
func Missing(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingConfig, field)
}

// Validate reports every required field that c lacks for its
// visualization type. The returned error combines the individual
// errors; use multierr.Errors to list them. c should be prepared.
func (c *Config) Validate() error {
	var err error
	if !c.VisualizationType.Valid() {
		if c.VisualizationType == "" {
			err = multierr.Append(err, Missing("visualizationType"))
		} else {
			err = multierr.Append(err, fmt.Errorf("unknown visualization type %q", c.VisualizationType))
		}
		return err
	}

	needKeys := func() {
		if len(c.Runtime.SeriesKeys) == 0 {
			err = multierr.Append(err, Missing("runtime.seriesKeys"))
		}
	}
	needXKey := func() {
		if c.XAxis.DataKey == "" {
			err = multierr.Append(err, Missing("xAxis.dataKey"))
		}
	}

	switch c.VisualizationType {
	case Bar, Line, ScatterPlot, Pie:
		needKeys()
		needXKey()

	case Combo:
		needKeys()
		needXKey()
		if c.IsStacked() && !(len(c.Series) > 0 && c.AllBarSeries()) {
			if len(c.Runtime.BarSeriesKeys) == 0 {
				err = multierr.Append(err, Missing("runtime.barSeriesKeys"))
			}
			if len(c.Runtime.LineSeriesKeys) == 0 {
				err = multierr.Append(err, Missing("runtime.lineSeriesKeys"))
			}
		}

	case DeviationBar:
		needKeys()
		needXKey()
		if len(c.Series) != 1 {
			err = multierr.Append(err, fmt.Errorf("%w: exactly one series (have %d)", ErrMissingConfig, len(c.Series)))
		}

	case PairedBar:
		needXKey()
		if len(c.Series) < 2 {
			err = multierr.Append(err, fmt.Errorf("%w: two series (have %d)", ErrMissingConfig, len(c.Series)))
		}

	case BoxPlot:
		if len(c.BoxPlot.Plots) == 0 {
			err = multierr.Append(err, Missing("boxplot.plots"))
		}

	case ForestPlot:
		if c.ForestPlot.Lower == "" {
			err = multierr.Append(err, Missing("forestPlot.lower"))
		}
		if c.ForestPlot.Upper == "" {
			err = multierr.Append(err, Missing("forestPlot.upper"))
		}
	}
	return err
}
