// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extent

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/aclements/go-vizcore/dataset"
	"github.com/aclements/go-vizcore/normalize"
	"github.com/aclements/go-vizcore/vizconfig"
)

// fenceK is the Tukey fence multiplier.
const fenceK = 1.5

// BoxSummary is the five-number summary of one box plot group.
type BoxSummary struct {
	Min, Q1, Median, Q3, Max float64
	IQR                      float64

	// LowerFence and UpperFence are Q1 - 1.5 IQR and Q3 + 1.5 IQR.
	LowerFence, UpperFence float64

	// LowerBound and UpperBound are the most extreme values inside
	// the fences (the whisker ends).
	LowerBound, UpperBound float64

	// Outliers are the values outside the fences, in input order.
	Outliers []float64
}

// Summarize computes the box plot summary of xs. It returns false if
// xs is empty.
func Summarize(xs []float64) (BoxSummary, bool) {
	if len(xs) == 0 {
		return BoxSummary{}, false
	}
	s := stats.Sample{Xs: append([]float64(nil), xs...)}
	s.Sort()

	var b BoxSummary
	b.Min, b.Max = s.Bounds()
	b.Q1 = s.Quantile(0.25)
	b.Median = s.Quantile(0.5)
	b.Q3 = s.Quantile(0.75)
	b.IQR = b.Q3 - b.Q1
	b.LowerFence = b.Q1 - fenceK*b.IQR
	b.UpperFence = b.Q3 + fenceK*b.IQR

	b.LowerBound, b.UpperBound = b.Max, b.Min
	for _, x := range xs {
		if x < b.LowerFence || x > b.UpperFence {
			b.Outliers = append(b.Outliers, x)
			continue
		}
		if x < b.LowerBound {
			b.LowerBound = x
		}
		if x > b.UpperBound {
			b.UpperBound = x
		}
	}
	return b, true
}

// BoxPlots groups the numeric cells of valueKey by categoryKey and
// summarizes each group. Categories appear in first-seen row order.
func BoxPlots(rows []dataset.Row, categoryKey, valueKey string) vizconfig.BoxPlotOptions {
	var cats []string
	groups := make(map[string][]float64)
	for _, r := range rows {
		x, ok := normalize.Number(r[valueKey])
		if !ok {
			continue
		}
		cat := dataset.String(r[categoryKey])
		if _, seen := groups[cat]; !seen {
			cats = append(cats, cat)
		}
		groups[cat] = append(groups[cat], x)
	}

	var opts vizconfig.BoxPlotOptions
	for _, cat := range cats {
		b, _ := Summarize(groups[cat])
		opts.Categories = append(opts.Categories, cat)
		opts.Plots = append(opts.Plots, vizconfig.BoxPlotEntry{
			Columns:           []string{cat},
			ColumnMin:         vizconfig.Number(b.Min),
			ColumnQ1:          vizconfig.Number(b.Q1),
			ColumnMedian:      vizconfig.Number(b.Median),
			ColumnQ3:          vizconfig.Number(b.Q3),
			ColumnMax:         vizconfig.Number(b.Max),
			ColumnOutliers:    b.Outliers,
			ColumnLowerBounds: vizconfig.Number(b.LowerBound),
			ColumnUpperBounds: vizconfig.Number(b.UpperBound),
		})
	}
	return opts
}
