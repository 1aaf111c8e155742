// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"fmt"
	"math"
	"time"

	"github.com/aclements/go-moremath/scale"

	"github.com/aclements/go-vizcore/dataset"
	"github.com/aclements/go-vizcore/normalize"
)

// Type is the kind of a scale.
type Type string

const (
	Linear Type = "linear"
	Log    Type = "log"
	Time   Type = "time"
	Band   Type = "band"
	Point  Type = "point"
)

// niceTicks bounds the number of major ticks used to nice a domain.
var niceTicks = scale.TickOptions{Max: 10}

// A Scale maps domain values to pixel positions.
type Scale interface {
	// Type returns the kind of scale.
	Type() Type

	// Position returns the pixel position of v. Continuous scales
	// accept numbers, numeric strings, and time.Time values;
	// ordinal scales accept any value and compare its string
	// form. It returns false if v is not in the scale's domain.
	Position(v any) (float64, bool)

	// PixelRange returns the output range in the order it was
	// given.
	PixelRange() (r0, r1 float64)
}

// Continuous is a linear, logarithmic, or time scale. Time scales
// use milliseconds since the Unix epoch as their domain.
//
// A Continuous is never modified after construction; methods that
// adjust it return a new scale.
type Continuous struct {
	typ    Type
	q      scale.Quantitative
	r0, r1 float64
	round  bool
}

// NewLinear returns a linear scale mapping [min, max] to [r0, r1].
func NewLinear(min, max, r0, r1 float64) *Continuous {
	return &Continuous{typ: Linear, q: &scale.Linear{Min: min, Max: max}, r0: r0, r1: r1}
}

// NewLog returns a base-10 logarithmic scale mapping [min, max] to
// [r0, r1]. The domain must not touch or cross zero.
func NewLog(min, max, r0, r1 float64) (*Continuous, error) {
	l, err := scale.NewLog(min, max, 10)
	if err != nil {
		return nil, fmt.Errorf("%w: [%g, %g]: %v", ErrLogDomain, min, max, err)
	}
	return &Continuous{typ: Log, q: &l, r0: r0, r1: r1}, nil
}

// NewTime returns a time scale mapping [min, max] to [r0, r1].
func NewTime(min, max time.Time, r0, r1 float64) *Continuous {
	return NewLinear(dataset.Millis(min), dataset.Millis(max), r0, r1).withType(Time)
}

func (c *Continuous) withType(typ Type) *Continuous {
	n := c.clone()
	n.typ = typ
	return n
}

func (c *Continuous) Type() Type { return c.typ }

func (c *Continuous) PixelRange() (r0, r1 float64) { return c.r0, c.r1 }

// Domain returns the input domain.
func (c *Continuous) Domain() (min, max float64) {
	switch q := c.q.(type) {
	case *scale.Linear:
		return q.Min, q.Max
	case *scale.Log:
		return q.Min, q.Max
	}
	panic("scales: unknown quantitative scale")
}

// Rounded reports whether Map rounds to whole pixels.
func (c *Continuous) Rounded() bool { return c.round }

// Map returns the pixel position of x.
func (c *Continuous) Map(x float64) float64 {
	y := c.r0 + c.q.Map(x)*(c.r1-c.r0)
	if c.round {
		y = math.Round(y)
	}
	return y
}

// Invert returns the domain value at pixel position y.
func (c *Continuous) Invert(y float64) float64 {
	if c.r0 == c.r1 {
		min, _ := c.Domain()
		return min
	}
	return c.q.Unmap((y - c.r0) / (c.r1 - c.r0))
}

func (c *Continuous) Position(v any) (float64, bool) {
	if t, ok := v.(time.Time); ok {
		return c.Map(dataset.Millis(t)), true
	}
	x, ok := normalize.Number(v)
	if !ok {
		return 0, false
	}
	y := c.Map(x)
	return y, !math.IsNaN(y)
}

// Ticks returns at most max "nice" major tick values inside the
// domain.
func (c *Continuous) Ticks(max int) []float64 {
	major, _ := c.q.Ticks(scale.TickOptions{Max: max})
	return major
}

// Nice returns a copy of c whose domain is extended to nice round
// values.
func (c *Continuous) Nice() *Continuous {
	n := c.clone()
	n.q.Nice(niceTicks)
	return n
}

// Round returns a copy of c that rounds its output to whole pixels.
func (c *Continuous) Round() *Continuous {
	n := c.clone()
	n.round = true
	return n
}

func (c *Continuous) clone() *Continuous {
	n := *c
	switch q := c.q.(type) {
	case *scale.Linear:
		l := *q
		n.q = &l
	case *scale.Log:
		l := *q
		n.q = &l
	}
	return &n
}

// Ordinal is a band or point scale over a list of distinct values.
// A point scale is a band scale with zero bandwidth.
type Ordinal struct {
	typ          Type
	domain       []string
	index        map[string]int
	r0, r1       float64
	paddingInner float64
	paddingOuter float64
	round        bool

	start, step, bandwidth float64
}

// NewBand returns a band scale dividing [r0, r1] into one band per
// distinct domain value. Padding sets both the inner and the outer
// padding, as a fraction of the step.
func NewBand(domain []string, r0, r1, padding float64) *Ordinal {
	return newOrdinal(Band, domain, r0, r1, padding, padding, false)
}

// NewPoint returns a point scale spreading the distinct domain
// values evenly over [r0, r1], with padding steps of space at each
// end.
func NewPoint(domain []string, r0, r1, padding float64) *Ordinal {
	return newOrdinal(Point, domain, r0, r1, 1, padding, false)
}

func newOrdinal(typ Type, domain []string, r0, r1, inner, outer float64, round bool) *Ordinal {
	o := &Ordinal{
		typ:          typ,
		index:        make(map[string]int, len(domain)),
		r0:           r0,
		r1:           r1,
		paddingInner: inner,
		paddingOuter: outer,
		round:        round,
	}
	for _, v := range domain {
		if _, ok := o.index[v]; ok {
			continue
		}
		o.index[v] = len(o.domain)
		o.domain = append(o.domain, v)
	}
	o.rescale()
	return o
}

func (o *Ordinal) rescale() {
	n := float64(len(o.domain))
	start, stop := o.r0, o.r1
	if stop < start {
		start, stop = stop, start
	}
	o.step = (stop - start) / math.Max(1, n-o.paddingInner+o.paddingOuter*2)
	if o.round {
		o.step = math.Floor(o.step)
	}
	start += (stop - start - o.step*(n-o.paddingInner)) * 0.5
	o.bandwidth = o.step * (1 - o.paddingInner)
	if o.round {
		start = math.Round(start)
		o.bandwidth = math.Round(o.bandwidth)
	}
	o.start = start
}

func (o *Ordinal) Type() Type { return o.typ }

func (o *Ordinal) PixelRange() (r0, r1 float64) { return o.r0, o.r1 }

// Domain returns the distinct domain values in order.
func (o *Ordinal) Domain() []string { return o.domain }

// Step returns the distance between the starts of adjacent bands.
func (o *Ordinal) Step() float64 { return o.step }

// Bandwidth returns the width of each band. It is 0 for point
// scales.
func (o *Ordinal) Bandwidth() float64 { return o.bandwidth }

// Map returns the start of v's band.
func (o *Ordinal) Map(v string) (float64, bool) {
	i, ok := o.index[v]
	if !ok {
		return 0, false
	}
	if o.r1 < o.r0 {
		i = len(o.domain) - 1 - i
	}
	return o.start + o.step*float64(i), true
}

func (o *Ordinal) Position(v any) (float64, bool) {
	return o.Map(dataset.String(v))
}

// Round returns a copy of o that snaps steps and offsets to whole
// pixels.
func (o *Ordinal) Round() *Ordinal {
	return newOrdinal(o.typ, o.domain, o.r0, o.r1, o.paddingInner, o.paddingOuter, true)
}
