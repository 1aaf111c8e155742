// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package normalize coerces loosely typed table cells into numbers.
//
// Uploaded tables arrive as untyped strings such as "$1,234.50" or
// "12". Every numeric computation over rows goes through this package
// first so that a stray non-numeric cell never turns an extent into
// NaN.
package normalize

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numeralRe matches one or more digits, an optional decimal point,
// and zero or more digits, with an optional sign.
var numeralRe = regexp.MustCompile(`^[-+]?\d+\.?\d*$`)

var cleaner = strings.NewReplacer(",", "", "$", "")

// CleanString removes thousands separators and dollar signs from s.
func CleanString(s string) string {
	return cleaner.Replace(s)
}

// Clean returns v with "," and "$" removed if v is a string. nil and
// the empty string clean to "". Values of any other type are returned
// unchanged.
func Clean(v any) any {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		if v == "" {
			return ""
		}
		return CleanString(v)
	}
	return v
}

// IsNumeric reports whether v, after cleaning, is a finite number or a
// string holding a plain decimal numeral. It never panics; values of
// unsupported types are simply not numeric.
func IsNumeric(v any) bool {
	_, ok := Number(v)
	return ok
}

// Number returns the numeric value of v after cleaning. ok is false if
// v is not numeric, in which case x is NaN.
func Number(v any) (x float64, ok bool) {
	switch v := Clean(v).(type) {
	case string:
		s := strings.TrimSpace(v)
		if !numeralRe.MatchString(s) {
			return math.NaN(), false
		}
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN(), false
		}
		return x, true
	case json.Number:
		return Number(string(v))
	case float64:
		x = v
	case float32:
		x = float64(v)
	case int:
		x = float64(v)
	case int8:
		x = float64(v)
	case int16:
		x = float64(v)
	case int32:
		x = float64(v)
	case int64:
		x = float64(v)
	case uint:
		x = float64(v)
	case uint8:
		x = float64(v)
	case uint16:
		x = float64(v)
	case uint32:
		x = float64(v)
	case uint64:
		x = float64(v)
	default:
		return math.NaN(), false
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN(), false
	}
	return x, true
}

// NumberOr returns the numeric value of v, or def if v is not numeric.
func NumberOr(v any, def float64) float64 {
	if x, ok := Number(v); ok {
		return x
	}
	return def
}
