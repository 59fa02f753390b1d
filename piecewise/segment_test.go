package piecewise

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splines"
	"github.com/stretchr/testify/assert"
)

const cubicTolerance = 1e-8

// diffPair compares two pairs component-wise, up to an absolute margin.
func diffPair(t *testing.T, want, got splines.Pair, margin float64) {
	t.Helper()
	w := [2]float64{want.X(), want.Y()}
	g := [2]float64{got.X(), got.Y()}
	if d := cmp.Diff(w, g, cmpopts.EquateApprox(0, margin)); d != "" {
		t.Errorf("pair mismatch (-want +got):\n%s", d)
	}
}

// y = x², 0 ≤ x ≤ 1
func parabola() *Cubic {
	return NewBezier(
		splines.P(0, 0),
		splines.P(1.0/3.0, 0),
		splines.P(2.0/3.0, 1.0/3.0),
		splines.P(1, 1),
	)
}

func TestLinearSegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewLinear(splines.P(1, 1), splines.P(2, 2))
	assert.Equal(t, splines.P(1, 1), seg.Start())
	assert.Equal(t, splines.P(2, 2), seg.End())
	diffPair(t, splines.P(1, 1), seg.Sample(0), 0)
	diffPair(t, splines.P(1.2, 1.2), seg.Sample(0.2), 1e-15)
	diffPair(t, splines.P(1.5, 1.5), seg.Sample(0.5), 0)
	diffPair(t, splines.P(2, 2), seg.Sample(1), 0)
	for _, tt := range []float64{0, 0.2, 0.5, 1} {
		assert.Equal(t, splines.P(1, 1), seg.Derivative(tt))
	}
}

func TestLinearArcLength(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewLinear(splines.P(0, 0), splines.P(3, 4))
	assert.Equal(t, 5.0, seg.TotalArcLength())
	assert.Equal(t, 5.0, seg.ArcLength(1))
	assert.Equal(t, 2.5, seg.ArcLength(0.5))
	assert.Equal(t, 0.4, seg.TimeAtArcLength(2))
	assert.Equal(t, 0.4, seg.TimeAtArcLengthFromGuess(2, 0.99))
}

func TestLinearRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewLinear(splines.P(-1, 2), splines.P(4, -7))
	for i := 0; i <= 20; i++ {
		t0 := float64(i) / 20
		assert.InDelta(t, t0, seg.TimeAtArcLength(seg.ArcLength(t0)), 1e-15)
	}
}

func TestCubicEndpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p0, p1, p2, p3 := splines.P(0.2, 0.73), splines.P(0.35, 1.08), splines.P(0.85, 1.08), splines.P(1, 0.73)
	seg := NewBezier(p0, p1, p2, p3)
	assert.Equal(t, p0, seg.Sample(0))
	diffPair(t, p3, seg.Sample(1), 1e-12)
	// Bézier tangents at the ends point towards the inner control points
	diffPair(t, (p1 - p0).Scaled(3), seg.Derivative(0), 1e-12)
	diffPair(t, (p3 - p2).Scaled(3), seg.Derivative(1), 1e-12)
	q0, q1, q2, q3 := seg.Controls()
	diffPair(t, p0, q0, 1e-12)
	diffPair(t, p1, q1, 1e-12)
	diffPair(t, p2, q2, 1e-12)
	diffPair(t, p3, q3, 1e-12)
}

func TestCubicCoefficients(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := parabola()
	c := seg.Coefficients()
	diffPair(t, splines.P(0, 0), c[0], 1e-15)
	diffPair(t, splines.P(1, 0), c[1], 1e-15)
	diffPair(t, splines.P(0, 1), c[2], 1e-15)
	diffPair(t, splines.P(0, 0), c[3], 1e-15)
	diffPair(t, splines.P(0.5, 0.25), seg.Sample(0.5), 1e-15)
	diffPair(t, splines.P(1, 1), seg.Derivative(0.5), 1e-15)
}

func TestCubicArcLength(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := parabola()
	trueArclen := 0.5*math.Sqrt(5.0) + 0.25*math.Log(2.0+math.Sqrt(5.0))
	assert.InDelta(t, trueArclen, seg.ArcLength(1), 1e-4)
	assert.Equal(t, 0.0, seg.ArcLength(0))
	// a straight cubic has the length of its chord
	straight := NewBezier(splines.P(0, 0), splines.P(1, 0), splines.P(2, 0), splines.P(3, 0))
	assert.InDelta(t, 3.0, straight.TotalArcLength(), 1e-5)
	assert.InDelta(t, 1.5, straight.ArcLength(0.5), 1e-5)
}

func TestCubicTotalArcLengthIsCached(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := parabola()
	first := seg.TotalArcLength()
	assert.Equal(t, seg.ArcLength(1), first)
	_ = seg.ArcLength(0.3)
	_ = seg.TimeAtArcLength(0.7)
	_ = seg.Sample(0.9)
	assert.Equal(t, first, seg.TotalArcLength())
	assert.Equal(t, first, seg.totalArcLength)
}

func TestCubicRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	segs := []*Cubic{
		parabola(),
		NewBezier(splines.P(0.2, 0.73), splines.P(0.35, 1.08), splines.P(0.85, 1.08), splines.P(1, 0.73)),
		NewHermite(splines.P(1, 0), splines.P(1, 0), splines.P(5, 0), splines.P(1, 0)),
	}
	for k, seg := range segs {
		for i := 0; i <= 10; i++ {
			t0 := float64(i) / 10
			got := seg.TimeAtArcLength(seg.ArcLength(t0))
			assert.InDelta(t, t0, got, cubicTolerance, "segment #%d at t=%g", k, t0)
		}
	}
}

func TestCubicInversionFromGuess(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := parabola()
	l := seg.ArcLength(0.42)
	for _, guess := range []float64{0.3, 0.42, 0.6} {
		assert.InDelta(t, 0.42, seg.TimeAtArcLengthFromGuess(l, guess), cubicTolerance)
	}
}

func TestHermiteConversion(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p0, v0 := splines.P(0, 0), splines.P(3, 3)
	p1, v1 := splines.P(4, 0), splines.P(0, -6)
	seg := NewHermite(p0, v0, p1, v1)
	assert.Equal(t, p0, seg.Sample(0))
	diffPair(t, p1, seg.Sample(1), 1e-12)
	diffPair(t, v0, seg.Derivative(0), 1e-12)
	diffPair(t, v1, seg.Derivative(1), 1e-12)
}

func TestSegmentStrings(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, "(0,0) -- (1,0)", NewLinear(splines.P(0, 0), splines.P(1, 0)).String())
	seg := NewBezier(splines.P(0, 0), splines.P(1, 2), splines.P(3, 2), splines.P(4, 0))
	assert.Equal(t, "(0,0) .. controls (1,2) and (3,2) .. (4,0)", seg.String())
	assert.Equal(t, "(<unknown>)", ptstring(splines.P(math.NaN(), 0)))
}

func TestContinuityNames(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, "none", LinearFactory{}.Continuity().String())
	assert.Equal(t, "C0", C0BezierFactory{}.Continuity().String())
	assert.Equal(t, "C1", C1BezierFactory{}.Continuity().String())
	assert.Equal(t, "C1", C1HermiteFactory{}.Continuity().String())
	assert.Equal(t, "C2", C2HermiteFactory{}.Continuity().String())
}

func TestCubicZeroStartSpeed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewBezier(splines.P(0, 0), splines.P(0, 0), splines.P(2, 2), splines.P(3, 0))
	assert.Equal(t, splines.Origin, seg.Derivative(0))
	assert.Equal(t, 0.0, seg.TimeAtArcLength(0))
	assert.Equal(t, 0.0, seg.TimeAtArcLengthFromGuess(0, 0))
	for i := 1; i <= 10; i++ {
		t0 := float64(i) / 10
		tt := seg.TimeAtArcLength(seg.ArcLength(t0))
		assert.False(t, math.IsNaN(tt), "t = %g", t0)
		assert.InDelta(t, t0, tt, cubicTolerance, "t = %g", t0)
	}
	sp := FromSegments(seg)
	assert.Equal(t, 0.0, sp.TimeAtArcLength(0))
}
