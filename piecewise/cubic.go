package piecewise

import (
	"fmt"

	"github.com/npillmayer/splines"
)

// Cubic is a segment which is a third-degree polynomial in t:
//
//	c0 + c1⋅t + c2⋅t² + c3⋅t³
//
// Its total arc length is integrated once, on construction.
type Cubic struct {
	c0, c1, c2, c3 splines.Pair
	totalArcLength float64
}

var _ Segment = (*Cubic)(nil)

// NewCubic creates a cubic segment given the coefficients of all 4 terms.
func NewCubic(c0, c1, c2, c3 splines.Pair) *Cubic {
	c := &Cubic{c0: c0, c1: c1, c2: c2, c3: c3}
	c.totalArcLength = c.ArcLength(1)
	tracer().Debugf("cubic segment %s has arc length %.6g", c, c.totalArcLength)
	return c
}

// NewBezier creates a cubic segment from four Bézier control points.
func NewBezier(p0, p1, p2, p3 splines.Pair) *Cubic {
	return NewCubic(
		p0,
		p0.Scaled(-3)+p1.Scaled(3),
		p0.Scaled(3)+p1.Scaled(-6)+p2.Scaled(3),
		-p0+p1.Scaled(3)+p2.Scaled(-3)+p3,
	)
}

// NewHermite creates a cubic segment from a start point p0 with velocity v0
// and an end point p1 with velocity v1.
func NewHermite(p0, v0, p1, v1 splines.Pair) *Cubic {
	return NewBezier(p0, p0+v0.Scaled(1.0/3.0), p1-v1.Scaled(1.0/3.0), p1)
}

func (c *Cubic) sealed() {}

// Coefficients returns the polynomial coefficients, constant term first.
func (c *Cubic) Coefficients() [4]splines.Pair {
	return [4]splines.Pair{c.c0, c.c1, c.c2, c.c3}
}

// Controls returns the Bézier control points of the segment.
func (c *Cubic) Controls() (p0, p1, p2, p3 splines.Pair) {
	p0 = c.c0
	p1 = c.c0 + c.c1.Scaled(1.0/3.0)
	p2 = c.c0 + c.c1.Scaled(2.0/3.0) + c.c2.Scaled(1.0/3.0)
	p3 = c.c0 + c.c1 + c.c2 + c.c3
	return
}

func (c *Cubic) Sample(t float64) splines.Pair {
	return c.c0 + c.c1.Scaled(t) + c.c2.Scaled(t*t) + c.c3.Scaled(t*t*t)
}

func (c *Cubic) Derivative(t float64) splines.Pair {
	return c.c1 + c.c2.Scaled(2*t) + c.c3.Scaled(3*t*t)
}

// ArcLength integrates the speed from 0 to t with Legendre-Gauss quadrature
// of order 5. The result is fed into Newton-Raphson by TimeAtArcLength,
// so its error must stay well below the error of the root finder.
func (c *Cubic) ArcLength(t float64) float64 {
	half := t / 2
	var sum float64
	for _, wx := range gaussLegendreCoeffs5 {
		sum += wx[0] * c.Derivative(half+half*wx[1]).Magnitude()
	}
	return half * sum
}

// TotalArcLength returns the length cached at construction time.
func (c *Cubic) TotalArcLength() float64 {
	return c.totalArcLength
}

func (c *Cubic) TimeAtArcLength(l float64) float64 {
	return timeAtArcLength(c, l)
}

func (c *Cubic) TimeAtArcLengthFromGuess(l, guess float64) float64 {
	return timeAtArcLengthFromGuess(c, l, guess)
}

func (c *Cubic) String() string {
	p0, p1, p2, p3 := c.Controls()
	return fmt.Sprintf("%s .. controls %s and %s .. %s",
		ptstring(p0), ptstring(p1), ptstring(p2), ptstring(p3))
}
