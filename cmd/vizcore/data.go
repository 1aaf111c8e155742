// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/spf13/cobra"

	"github.com/aclements/go-vizcore/dataset"
	"github.com/aclements/go-vizcore/internal/settings"
	"github.com/aclements/go-vizcore/maplegend"
)

func legendCmd(o *options) *cobra.Command {
	var geoKey, valueKey, swatch string
	cmd := &cobra.Command{
		Use:   "legend",
		Short: "Classify map values into legend bins and color each region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := o.rows()
			if err != nil {
				return err
			}
			s, err := settings.Load(o.settingsPath)
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}
			method, err := s.LegendMethod()
			if err != nil {
				return err
			}
			l, err := maplegend.New(maplegend.Values(rows, valueKey), maplegend.Options{
				Method: method,
				Bins:   s.Legend.Bins,
				Colors: s.Legend.Colors,
			})
			if err != nil {
				return err
			}
			if swatch != "" {
				if err := writePNG(swatch, l); err != nil {
					return err
				}
			}
			return o.writeJSON(cmd, struct {
				Method      string                `json:"method"`
				Bins        []maplegend.Bin       `json:"bins"`
				Territories []maplegend.Territory `json:"territories,omitempty"`
			}{method.String(), l.Bins, l.Territories(rows, geoKey, valueKey)})
		},
	}
	cmd.Flags().StringVar(&geoKey, "geo", "", "`column` naming each region")
	cmd.Flags().StringVar(&valueKey, "value", "", "numeric `column` to classify")
	cmd.Flags().StringVar(&swatch, "swatch", "", "also write the legend colors as a PNG to `file`")
	cmd.MarkFlagRequired("value")
	return cmd
}

const swatchWidth, swatchHeight = 200, 20

func writePNG(path string, l *maplegend.Legend) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, l.Swatch(swatchWidth, swatchHeight)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// column describes one data column.
type column struct {
	Name   string   `json:"name"`
	Kind   string   `json:"kind"`
	Values []string `json:"values,omitempty"`
}

func describeCmd(o *options) *cobra.Command {
	var asTable bool
	var maxValues int
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe the columns of a data file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.dataPath == "" {
				return fmt.Errorf("--data is required")
			}
			rows, err := o.rows()
			if err != nil {
				return err
			}
			if asTable {
				return o.write(cmd, func(w io.Writer) error {
					table.Fprint(w, dataset.Table(rows, nil))
					return nil
				})
			}
			kinds := dataset.InferKinds(rows, nil)
			var cols []column
			for _, name := range dataset.Columns(rows) {
				c := column{Name: name, Kind: kinds[name].String()}
				if kinds[name] != dataset.KindNumber {
					vals := dataset.FilterValues(rows, name)
					if len(vals) <= maxValues {
						c.Values = vals
					}
				}
				cols = append(cols, c)
			}
			return o.writeJSON(cmd, struct {
				Rows    int      `json:"rows"`
				Columns []column `json:"columns"`
			}{len(rows), cols})
		},
	}
	cmd.Flags().BoolVar(&asTable, "table", false, "print the rows as a table instead")
	cmd.Flags().IntVar(&maxValues, "max-values", 20, "list the distinct values of columns with at most `n` of them")
	return cmd
}

func exportCmd(o *options) *cobra.Command {
	var event bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the persisted form of the chart configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config()
			if err != nil {
				return err
			}
			if event {
				ev, err := cfg.Event()
				if err != nil {
					return err
				}
				return o.writeJSON(cmd, ev)
			}
			doc, err := cfg.Export()
			if err != nil {
				return err
			}
			return o.write(cmd, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s\n", doc)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&event, "event", false, "print the change event carrying the configuration")
	return cmd
}
