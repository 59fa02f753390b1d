package piecewise

import (
	"github.com/npillmayer/splines"
)

// Factory is a request to build a segment from control data and, for some
// factories, the segment it will follow. Factories are only used while a
// spline is being built and are discarded afterwards.
//
// The set of factories is closed: LinearFactory, C0BezierFactory,
// C1BezierFactory, C1HermiteFactory and C2HermiteFactory.
type Factory interface {
	// Continuity is the class of smoothness the factory is meant to
	// produce. It is not verified.
	Continuity() Continuity

	build(previous Segment) (Segment, error)
}

// Build builds the segment requested by f. previous is the segment the new
// one will follow, or nil if there is none. Factories which derive data
// from previous fail with a *ConstructionError if it is nil.
func Build(f Factory, previous Segment) (Segment, error) {
	seg, err := f.build(previous)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("%T built %s", f, seg)
	return seg, nil
}

// --- Linear ----------------------------------------------------------------

// LinearFactory creates a line from P0 to P1.
type LinearFactory struct {
	P0, P1 splines.Pair
}

// NewLinearFactory is a shortcut for LinearFactory{P0: p0, P1: p1}.
func NewLinearFactory(p0, p1 splines.Pair) LinearFactory {
	return LinearFactory{P0: p0, P1: p1}
}

func (f LinearFactory) Continuity() Continuity { return NoContinuity }

func (f LinearFactory) build(Segment) (Segment, error) {
	return NewLinear(f.P0, f.P1), nil
}

// --- Bézier ----------------------------------------------------------------

// C0BezierFactory creates a cubic Bézier segment from four explicit control
// points. Continuity to the previous segment is up to the caller.
type C0BezierFactory struct {
	P0, P1, P2, P3 splines.Pair
}

// NewC0BezierFactory takes all four control points.
func NewC0BezierFactory(p0, p1, p2, p3 splines.Pair) C0BezierFactory {
	return C0BezierFactory{P0: p0, P1: p1, P2: p2, P3: p3}
}

func (f C0BezierFactory) Continuity() Continuity { return C0 }

func (f C0BezierFactory) build(Segment) (Segment, error) {
	return NewBezier(f.P0, f.P1, f.P2, f.P3), nil
}

// C1BezierFactory creates a cubic Bézier segment from the last three
// control points. The first one is the end point of the previous segment.
type C1BezierFactory struct {
	P1, P2, P3 splines.Pair
}

// NewC1BezierFactory takes the final three control points.
func NewC1BezierFactory(p1, p2, p3 splines.Pair) C1BezierFactory {
	return C1BezierFactory{P1: p1, P2: p2, P3: p3}
}

func (f C1BezierFactory) Continuity() Continuity { return C1 }

func (f C1BezierFactory) build(previous Segment) (Segment, error) {
	if previous == nil {
		return nil, missingPrevious(f)
	}
	p0 := previous.Sample(1)
	return NewBezier(p0, f.P1, f.P2, f.P3), nil
}

// --- Hermite ---------------------------------------------------------------

// C1HermiteFactory creates a cubic Hermite segment from a start velocity V0,
// an end point P1 and an end velocity V1. The start point is the end point
// of the previous segment. V0 is taken as given: the result is velocity
// continuous only if V0 matches the previous segment's end velocity.
type C1HermiteFactory struct {
	V0, P1, V1 splines.Pair
}

// NewC1HermiteFactory takes both velocities and the final point.
func NewC1HermiteFactory(v0, p1, v1 splines.Pair) C1HermiteFactory {
	return C1HermiteFactory{V0: v0, P1: p1, V1: v1}
}

func (f C1HermiteFactory) Continuity() Continuity { return C1 }

func (f C1HermiteFactory) build(previous Segment) (Segment, error) {
	if previous == nil {
		return nil, missingPrevious(f)
	}
	p0 := previous.Sample(1)
	return NewHermite(p0, f.V0, f.P1, f.V1), nil
}

// C2HermiteFactory creates a cubic Hermite segment from an end point P1 and
// an end velocity V1. Start point and start velocity are taken from the end
// of the previous segment.
//
// Acceleration is not matched, so despite its name the join is C1.
type C2HermiteFactory struct {
	P1, V1 splines.Pair
}

// NewC2HermiteFactory takes the final point and velocity.
func NewC2HermiteFactory(p1, v1 splines.Pair) C2HermiteFactory {
	return C2HermiteFactory{P1: p1, V1: v1}
}

func (f C2HermiteFactory) Continuity() Continuity { return C2 }

func (f C2HermiteFactory) build(previous Segment) (Segment, error) {
	if previous == nil {
		return nil, missingPrevious(f)
	}
	p0 := previous.Sample(1)
	v0 := previous.Derivative(1)
	tracer().Debugf("inherit start %s, velocity %s", p0, v0)
	return NewHermite(p0, v0, f.P1, f.V1), nil
}
