package piecewise

import (
	"fmt"

	"github.com/npillmayer/splines"
)

// Linear is a straight segment from p0 to p1. All of its arc length
// calculations are closed form.
type Linear struct {
	p0, p1      splines.Pair
	totalLength float64
}

var _ Segment = (*Linear)(nil)

// NewLinear creates a linear segment from two points.
func NewLinear(p0, p1 splines.Pair) *Linear {
	return &Linear{
		p0:          p0,
		p1:          p1,
		totalLength: (p1 - p0).Magnitude(),
	}
}

func (l *Linear) sealed() {}

// Start returns the first point of the segment.
func (l *Linear) Start() splines.Pair {
	return l.p0
}

// End returns the last point of the segment.
func (l *Linear) End() splines.Pair {
	return l.p1
}

// Sample interpolates between the end points.
func (l *Linear) Sample(t float64) splines.Pair {
	return l.p0.Lerp(l.p1, t)
}

// Derivative is constant for lines.
func (l *Linear) Derivative(float64) splines.Pair {
	return l.p1 - l.p0
}

func (l *Linear) ArcLength(t float64) float64 {
	return l.totalLength * t
}

func (l *Linear) TotalArcLength() float64 {
	return l.totalLength
}

func (l *Linear) TimeAtArcLength(length float64) float64 {
	return length / l.totalLength
}

// TimeAtArcLengthFromGuess ignores the guess, as the solution is exact.
func (l *Linear) TimeAtArcLengthFromGuess(length, _ float64) float64 {
	return l.TimeAtArcLength(length)
}

func (l *Linear) String() string {
	return fmt.Sprintf("%s -- %s", ptstring(l.Start()), ptstring(l.End()))
}
