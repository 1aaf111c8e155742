// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vizconfig

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind is the visualization type of a chart.
type Kind string

const (
	Bar          Kind = "Bar"
	Line         Kind = "Line"
	Combo        Kind = "Combo"
	Pie          Kind = "Pie"
	DeviationBar Kind = "Deviation Bar"
	ScatterPlot  Kind = "Scatter Plot"
	BoxPlot      Kind = "Box Plot"
	PairedBar    Kind = "Paired Bar"
	ForestPlot   Kind = "Forest Plot"
)

// Kinds lists every known Kind.
var Kinds = []Kind{Bar, Line, Combo, Pie, DeviationBar, ScatterPlot, BoxPlot, PairedBar, ForestPlot}

// ParseKind returns the Kind named by s. Matching ignores case and
// spaces, so "DeviationBar" and "deviation bar" both name
// DeviationBar.
func ParseKind(s string) (Kind, error) {
	want := squash(s)
	for _, k := range Kinds {
		if squash(string(k)) == want {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown visualization type %q", s)
}

func squash(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// Valid reports whether k is one of Kinds.
func (k Kind) Valid() bool {
	for _, k2 := range Kinds {
		if k == k2 {
			return true
		}
	}
	return false
}

func (k *Kind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*k = ""
		return nil
	}
	nk, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = nk
	return nil
}
