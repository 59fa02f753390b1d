package piecewise

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splines"
)

// tracer writes to trace with key 'splines.piecewise'
func tracer() tracing.Trace {
	return tracing.Select("splines.piecewise")
}

// NewtonIterations is the number of Newton-Raphson steps taken when
// inverting arc length. There is no convergence test.
const NewtonIterations = 8

// Legendre-Gauss quadrature of order 5, as {weight, node} on [-1,1].
var gaussLegendreCoeffs5 = [...][2]float64{
	{0.568889, 0.0},
	{0.478629, 0.538469},
	{0.478629, -0.538469},
	{0.236927, 0.90618},
	{0.236927, -0.90618},
}

// Segment is a single piece of a spline, parameterized over [0,1].
// Results for t outside of [0,1] are not defined.
//
// The set of segment types is closed: *Linear and *Cubic.
type Segment interface {
	// Sample returns the position at t.
	Sample(t float64) splines.Pair
	// Derivative returns the velocity at t. It is not normalized.
	Derivative(t float64) splines.Pair
	// ArcLength is the length of the curve from 0 to t.
	ArcLength(t float64) float64
	// TotalArcLength is ArcLength(1), possibly cached.
	TotalArcLength() float64
	// TimeAtArcLength finds t with ArcLength(t) = l.
	TimeAtArcLength(l float64) float64
	// TimeAtArcLengthFromGuess finds t with ArcLength(t) = l, starting
	// the search at guess.
	TimeAtArcLengthFromGuess(l, guess float64) float64

	sealed()
}

// timeAtArcLength seeds Newton-Raphson with the parameter a segment of
// constant speed would have.
func timeAtArcLength(seg Segment, l float64) float64 {
	return timeAtArcLengthFromGuess(seg, l, l/seg.TotalArcLength())
}

// timeAtArcLengthFromGuess approximates the zero of f(t) = ArcLength(t) - l
// with f'(t) = |Derivative(t)|. Iteration stops early at a point of zero
// speed, e.g. a cusp or a Bezier start with p0 = p1.
func timeAtArcLengthFromGuess(seg Segment, l, guess float64) float64 {
	t := guess
	for range NewtonIterations {
		speed := seg.Derivative(t).Magnitude()
		if speed == 0 {
			tracer().Debugf("zero speed at t = %g, stopping Newton-Raphson", t)
			break
		}
		t -= (seg.ArcLength(t) - l) / speed
	}
	return t
}

// Continuity is the class of smoothness a factory declares towards the
// previous segment.
type Continuity int8

// Continuity classes. NoContinuity is declared by factories which do not
// look at the previous segment at all.
const (
	NoContinuity Continuity = iota
	C0
	C1
	C2
)

func (c Continuity) String() string {
	switch c {
	case C0:
		return "C0"
	case C1:
		return "C1"
	case C2:
		return "C2"
	}
	return "none"
}
