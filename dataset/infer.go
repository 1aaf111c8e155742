// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"errors"
	"sort"

	"github.com/aclements/go-vizcore/normalize"
)

// ColumnKind is the inferred type of a column.
type ColumnKind int

const (
	KindString ColumnKind = iota
	KindNumber
	KindDate
)

func (k ColumnKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	}
	return "string"
}

// A ValueParser reports whether a non-empty cell can be read as its
// kind.
type ValueParser struct {
	Kind  ColumnKind
	Parse func(v any) error
}

var errNotNumeric = errors.New("not numeric")

// DefaultValueParsers is the priority order InferKinds uses when no
// parsers are given.
var DefaultValueParsers = []ValueParser{
	{KindNumber, func(v any) error {
		if !normalize.IsNumeric(v) {
			return errNotNumeric
		}
		return nil
	}},
	{KindDate, func(v any) error {
		_, err := ParseDate("", String(v))
		return err
	}},
}

// InferKinds infers the kind of every column in rows using best-effort
// pattern-based parsing.
//
// A column gets the kind of the earliest parser in parsers that
// accepts every non-empty cell of that column. Columns no parser
// accepts, and columns with no non-empty cells, are KindString. If
// parsers is nil, InferKinds uses DefaultValueParsers.
func InferKinds(rows []Row, parsers []ValueParser) map[string]ColumnKind {
	if parsers == nil {
		parsers = DefaultValueParsers
	}

	kinds := make(map[string]ColumnKind)
	for _, col := range Columns(rows) {
		kinds[col] = KindString
		nonEmpty := false
	tryParsers:
		for _, vp := range parsers {
			for _, r := range rows {
				v, ok := r[col]
				if !ok || String(v) == "" {
					continue
				}
				nonEmpty = true
				if vp.Parse(v) != nil {
					// Parse error. Fail this parser.
					continue tryParsers
				}
			}
			if nonEmpty {
				kinds[col] = vp.Kind
			}
			break
		}
	}
	return kinds
}

// NumericColumns returns the sorted names of the columns that
// InferKinds reports as numbers.
func NumericColumns(rows []Row) []string {
	var cols []string
	for col, k := range InferKinds(rows, nil) {
		if k == KindNumber {
			cols = append(cols, col)
		}
	}
	sort.Strings(cols)
	return cols
}
