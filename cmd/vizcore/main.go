// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vizcore computes chart layouts from a chart configuration
// and a data file.
//
// Each subcommand reads a configuration document (--config) and,
// usually, a CSV, JSON, or XLSX data file (--data), and prints what it
// computed as JSON:
//
//	vizcore extent   -c chart.json -d data.csv
//	vizcore scales   -c chart.json -d data.csv
//	vizcore geometry -c chart.json -d data.csv --pretty
//	vizcore legend   -c map.json -d data.csv --geo state --value rate
//	vizcore describe -d data.xlsx --sheet Sheet2
//	vizcore export   -c chart.json
//	vizcore plot     -c chart.json -d data.csv -o preview.svg
//
// Canvas size, margins, and default colors come from a YAML settings
// file (--settings, $VIZCORE_SETTINGS, or ./vizcore.yaml) and
// VIZCORE_* environment variables.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/aclements/go-vizcore/chart"
	"github.com/aclements/go-vizcore/dataset"
	"github.com/aclements/go-vizcore/internal/settings"
	"github.com/aclements/go-vizcore/vizconfig"
)

func main() {
	log.SetPrefix("vizcore: ")
	log.SetFlags(0)

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

// options are the flags shared by every subcommand.
type options struct {
	configPath   string
	dataPath     string
	sheet        string
	settingsPath string
	outputPath   string
	pretty       bool
}

func newRootCmd() *cobra.Command {
	o := new(options)
	root := &cobra.Command{
		Use:           "vizcore",
		Short:         "Compute chart extents, scales, and geometry",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	f := root.PersistentFlags()
	f.StringVarP(&o.configPath, "config", "c", "", "read the chart configuration from `file`")
	f.StringVarP(&o.dataPath, "data", "d", "", "read rows from `file` (.csv, .json, or .xlsx)")
	f.StringVar(&o.sheet, "sheet", "", "read rows from worksheet `name` of an .xlsx file")
	f.StringVar(&o.settingsPath, "settings", "", "read render settings from `file`")
	f.StringVarP(&o.outputPath, "output", "o", "", "write output to `file` (default: stdout)")
	f.BoolVar(&o.pretty, "pretty", false, "indent JSON output")

	root.AddCommand(
		extentCmd(o),
		scalesCmd(o),
		geometryCmd(o),
		plotCmd(o),
		legendCmd(o),
		describeCmd(o),
		exportCmd(o),
	)
	return root
}

func (o *options) config() (*vizconfig.Config, error) {
	if o.configPath == "" {
		return nil, fmt.Errorf("--config is required")
	}
	return vizconfig.Load(o.configPath)
}

func (o *options) rows() ([]dataset.Row, error) {
	if o.dataPath == "" {
		return nil, nil
	}
	return dataset.Load(o.dataPath, o.sheet)
}

// compute loads the configuration, data, and settings and computes
// the chart.
func (o *options) compute() (*chart.Result, *settings.Settings, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, nil, err
	}
	rows, err := o.rows()
	if err != nil {
		return nil, nil, err
	}
	s, err := settings.Load(o.settingsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading settings: %w", err)
	}
	dims := chart.Dimensions{
		Width:       float64(s.PlotWidth()),
		Height:      float64(s.PlotHeight()),
		ScreenWidth: float64(s.ScreenWidth),
	}
	res, err := chart.Compute(cfg, rows, dims, chart.Options{
		SeriesColors:    cfg.CustomColors,
		Palette:         s.Palette,
		DeviationColors: s.DeviationPair(),
	})
	if err != nil {
		return nil, nil, err
	}
	return res, s, nil
}

// write calls f with the output destination.
func (o *options) write(cmd *cobra.Command, f func(w io.Writer) error) error {
	if o.outputPath == "" {
		return f(cmd.OutOrStdout())
	}
	out, err := os.Create(o.outputPath)
	if err != nil {
		return err
	}
	if err := f(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// writeJSON writes v as JSON to the output destination.
func (o *options) writeJSON(cmd *cobra.Command, v any) error {
	return o.write(cmd, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		if o.pretty {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(v)
	})
}
