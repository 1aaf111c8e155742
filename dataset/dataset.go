// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset reads and manipulates the tabular rows that drive a
// chart.
//
// A dataset is an ordered []Row. Row order is significant (it orders
// categorical axes and indexes bars), so every function in this
// package preserves it.
package dataset

import (
	"fmt"
	"sort"
	"strconv"
)

// Row maps column names to raw cell values. Values are typically
// strings (from CSV or spreadsheet input) or float64 (from JSON), and
// may be nil for missing cells.
type Row map[string]any

// String formats a cell value the way it would appear in a table.
func String(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	}
	return fmt.Sprint(v)
}

// Columns returns the sorted names of all columns that appear in rows,
// excluding the names in exclude.
func Columns(rows []Row, exclude ...string) []string {
	skip := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		skip[e] = true
	}
	seen := make(map[string]bool)
	var cols []string
	for _, r := range rows {
		for k := range r {
			if !seen[k] && !skip[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	return cols
}

// Values returns column key of every row, in row order.
func Values(rows []Row, key string) []any {
	vs := make([]any, len(rows))
	for i, r := range rows {
		vs[i] = r[key]
	}
	return vs
}

// Categories returns column key of every row formatted as a string,
// in row order. Duplicates are kept.
func Categories(rows []Row, key string) []string {
	cs := make([]string, len(rows))
	for i, r := range rows {
		cs[i] = String(r[key])
	}
	return cs
}
