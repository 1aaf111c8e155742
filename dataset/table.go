// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math"

	"github.com/aclements/go-gg/table"

	"github.com/aclements/go-vizcore/normalize"
)

// Table converts rows into a go-gg table with columns cols, in that
// order. If cols is nil, every column is included in sorted order.
// Numeric columns become []float64, with NaN for cells that are not
// numeric; all other columns become []string.
func Table(rows []Row, cols []string) *table.Table {
	if cols == nil {
		cols = Columns(rows)
	}
	return FloatTable(rows, cols, nil)
}

// FloatTable is like Table, but forces the columns in numeric to
// []float64 regardless of their inferred kind.
func FloatTable(rows []Row, cols []string, numeric []string) *table.Table {
	force := make(map[string]bool, len(numeric))
	for _, c := range numeric {
		force[c] = true
	}
	kinds := InferKinds(rows, nil)

	tab := new(table.Builder)
	for _, col := range cols {
		if force[col] || kinds[col] == KindNumber {
			seq := make([]float64, len(rows))
			for i, r := range rows {
				seq[i] = normalize.NumberOr(r[col], math.NaN())
			}
			tab.Add(col, seq)
			continue
		}
		tab.Add(col, Categories(rows, col))
	}
	return tab.Done()
}
