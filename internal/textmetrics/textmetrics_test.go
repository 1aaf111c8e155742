// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textmetrics

import "testing"

func TestWidth(t *testing.T) {
	if w := Width("", 16, false); w != 0 {
		t.Errorf("empty text has width %v", w)
	}
	short, long := Width("12", 16, false), Width("1,234,567", 16, false)
	if short <= 0 || long <= short {
		t.Errorf("Width(12) = %v, Width(1,234,567) = %v; want 0 < short < long", short, long)
	}
	if big := Width("12", 32, false); big <= short*1.9 || big >= short*2.1 {
		t.Errorf("doubling the size gave %v, want about %v", big, 2*short)
	}
	if bold := Width("Target 50", 16, true); bold <= Width("Target 50", 16, false) {
		t.Errorf("bold text is not wider than regular text")
	}
}
