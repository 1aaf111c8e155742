// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/aclements/go-vizcore/vizconfig"
)

// ApplyFilters returns the rows that match every filter with an active
// value. Filters without an active value match everything.
func ApplyFilters(rows []Row, filters []vizconfig.Filter) []Row {
	active := filters[:0:0]
	for _, f := range filters {
		if f.ColumnName != "" && f.Active != "" {
			active = append(active, f)
		}
	}
	if len(active) == 0 {
		return rows
	}

	out := make([]Row, 0, len(rows))
rows:
	for _, r := range rows {
		for _, f := range active {
			if String(r[f.ColumnName]) != f.Active {
				continue rows
			}
		}
		out = append(out, r)
	}
	return out
}

// FilterValues returns the distinct values of column in rows, in
// numeric-aware ascending order.
func FilterValues(rows []Row, column string) []string {
	seen := make(map[string]bool)
	var vals []string
	for _, r := range rows {
		v := String(r[column])
		if !seen[v] {
			seen[v] = true
			vals = append(vals, v)
		}
	}
	return SortValues(vals, false)
}

// ResetFilters returns a copy of filters with each filter's active
// value reset to its first value.
func ResetFilters(filters []vizconfig.Filter) []vizconfig.Filter {
	out := make([]vizconfig.Filter, len(filters))
	for i, f := range filters {
		f.Values = append([]string(nil), f.Values...)
		if len(f.Values) > 0 {
			f.Active = f.Values[0]
		}
		out[i] = f
	}
	return out
}

// SortValues returns a sorted copy of values. Digit runs compare by
// numeric value, so "2" sorts before "10".
func SortValues(values []string, desc bool) []string {
	out := append([]string(nil), values...)
	c := collate.New(language.English, collate.Numeric)
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return c.CompareString(out[j], out[i]) < 0
		}
		return c.CompareString(out[i], out[j]) < 0
	})
	return out
}
