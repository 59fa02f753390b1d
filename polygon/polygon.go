/*
Package polygon flattens splines to polygons and does simple polygon
arithmetic on them.

Polygons are built either vertex by vertex, with a builder similar to
Hobby-paths,

	NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()

or by sampling a spline at equal arc length distances with FromSpline.
Clipping is delegated to github.com/akavel/polyclip-go.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"errors"
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splines"
	"github.com/npillmayer/splines/piecewise"
)

// L traces to the polygon tracer.
func L() tracing.Trace {
	return tracing.Select("splines.polygon")
}

var (
	// ErrEmptySpline indicates a spline without segments.
	ErrEmptySpline = errors.New("spline has no segments")
	// ErrDegenerateSpline indicates a spline of zero length.
	ErrDegenerateSpline = errors.New("spline has zero arc length")
	// ErrTooFewSteps indicates a request for less than one polygon edge.
	ErrTooFewSteps = errors.New("polygon needs at least one edge")
)

// Polygon is a sequence of vertices, either open or closed (a cycle).
type Polygon struct {
	knots polyclip.Contour
	cycle bool
}

// NullPolygon creates an empty polygon, to be extended by Knot.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Box creates a closed rectangular polygon from two opposite corners.
func Box(ll, ur splines.Pair) *Polygon {
	return NullPolygon().Knot(ll).Knot(splines.P(ur.X(), ll.Y())).
		Knot(ur).Knot(splines.P(ll.X(), ur.Y())).Cycle()
}

// Knot appends a vertex. Part of builder functionality.
func (pg *Polygon) Knot(p splines.Pair) *Polygon {
	pg.knots.Add(pt(p))
	return pg
}

// Cycle closes the polygon. A final vertex repeating the first one is
// dropped. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	if n := len(pg.knots); n > 1 && pair(pg.knots[0]).Equal(pair(pg.knots[n-1])) {
		pg.knots = pg.knots[:n-1]
	}
	pg.cycle = true
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of vertices.
func (pg *Polygon) N() int {
	return len(pg.knots)
}

// Z returns vertex #(i mod N).
func (pg *Polygon) Z(i int) splines.Pair {
	n := pg.N()
	if n == 0 {
		return splines.Origin
	}
	i %= n
	if i < 0 {
		i += n
	}
	return pair(pg.knots[i])
}

// Length is the sum of the edge lengths, including the closing edge of
// a cycle.
func (pg *Polygon) Length() float64 {
	n := pg.N()
	edges := n - 1
	if pg.cycle {
		edges = n
	}
	var l float64
	for i := 0; i < edges; i++ {
		l += (pg.Z(i+1) - pg.Z(i)).Magnitude()
	}
	return l
}

// BoundingBox returns the lower left and upper right corner of the
// smallest axis-aligned rectangle containing all vertices.
func (pg *Polygon) BoundingBox() (splines.Pair, splines.Pair) {
	r := pg.knots.BoundingBox()
	return pair(r.Min), pair(r.Max)
}

// Contains is a predicate: does a closed polygon contain p? Open polygons
// contain nothing.
func (pg *Polygon) Contains(p splines.Pair) bool {
	if !pg.cycle || pg.N() < 3 {
		return false
	}
	return pg.knots.Contains(pt(p))
}

// Union returns the outlines of the union of two closed polygons.
func (pg *Polygon) Union(other *Polygon) []*Polygon {
	return pg.construct(polyclip.UNION, other)
}

// Intersection returns the outlines of the intersection of two closed
// polygons. The result is empty if they do not overlap.
func (pg *Polygon) Intersection(other *Polygon) []*Polygon {
	return pg.construct(polyclip.INTERSECTION, other)
}

func (pg *Polygon) construct(op polyclip.Op, other *Polygon) []*Polygon {
	if !pg.cycle || !other.cycle {
		L().Errorf("clipping requires closed polygons")
		return nil
	}
	subject := polyclip.Polygon{pg.knots.Clone()}
	clipping := polyclip.Polygon{other.knots.Clone()}
	result := subject.Construct(op, clipping)
	pgs := make([]*Polygon, 0, len(result))
	for _, c := range result {
		pgs = append(pgs, &Polygon{knots: c, cycle: true})
	}
	L().Debugf("clipping resulted in %d contour(s)", len(pgs))
	return pgs
}

// FromSpline flattens a spline to an open polygon of steps edges. Vertices
// are equally spaced by arc length; the first and last vertex are the start
// and end point of the spline.
//
// Every vertex is located by Newton-Raphson, seeded with the parameter
// predicted from the previous vertex and the local speed there, as long as
// the prediction does not cross a segment boundary.
func FromSpline(sp *piecewise.Spline, steps int) (*Polygon, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSteps, steps)
	}
	if sp == nil || sp.N() == 0 {
		return nil, ErrEmptySpline
	}
	total := sp.TotalArcLength()
	if splines.Is0(total) {
		return nil, fmt.Errorf("%w: %d segment(s)", ErrDegenerateSpline, sp.N())
	}
	delta := total / float64(steps)
	pg := NullPolygon().Knot(sp.Sample(0))
	t := 0.0
	for i := 1; i < steps; i++ {
		t = nextParameter(sp, t, float64(i)*delta, delta)
		pg.Knot(sp.Sample(t))
	}
	pg.Knot(sp.Last().Sample(1))
	L().Debugf("flattened spline of length %.4g to %d vertices", total, pg.N())
	return pg, nil
}

// nextParameter finds the parameter at arc length l, which lies delta ahead
// of the vertex at t. The guess is predicted from the speed at t and is used
// only if both the guess and l stay within the segment of t; otherwise the
// segment is located by walking the spline.
func nextParameter(sp *piecewise.Spline, t, l, delta float64) float64 {
	guess := t
	if speed := sp.Derivative(t).Magnitude(); !splines.Is0(speed) {
		guess += delta / speed
	}
	index := math.Floor(t)
	if math.Floor(guess) != index || l >= sp.ArcLength(index+1) {
		L().Debugf("guess %.4g leaves segment #%d, walking the spline", guess, int(index))
		return sp.TimeAtArcLength(l)
	}
	return sp.TimeAtArcLengthFromGuess(l, guess)
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			b.WriteString(" -- ")
		}
		b.WriteString(pg.Z(i).String())
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}

func pt(p splines.Pair) polyclip.Point {
	return polyclip.Point{X: p.X(), Y: p.Y()}
}

func pair(p polyclip.Point) splines.Pair {
	return splines.P(p.X, p.Y)
}
