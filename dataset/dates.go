// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"
)

// fallbackLayouts are tried by ParseDate when no format is configured.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
}

// ParseDate parses s using the strftime-style format (for example
// "%Y-%m-%d"). If format is "", a few common layouts are tried.
func ParseDate(format, s string) (time.Time, error) {
	if format == "" {
		for _, layout := range fallbackLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("cannot parse date %q", s)
	}
	layout, err := strftime.Layout(format)
	if err != nil {
		return time.Time{}, fmt.Errorf("date format %q: %w", format, err)
	}
	return time.Parse(layout, s)
}

// FormatDate formats t with the strftime-style format. If format is
// "", t is formatted as YYYY-MM-DD.
func FormatDate(format string, t time.Time) string {
	if format == "" {
		return t.Format("2006-01-02")
	}
	return strftime.Format(format, t)
}

// Millis returns t as milliseconds since the Unix epoch, the numeric
// form date axes are scaled in.
func Millis(t time.Time) float64 {
	return float64(t.UnixMilli())
}
