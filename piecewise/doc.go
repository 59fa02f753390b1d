// Package piecewise evaluates piecewise parametric curves in 2D.
/*
A spline is an ordered sequence of segments. Every segment is parameterized
over [0,1]; the spline maps a global parameter t onto segment ⌊t⌋ at local
parameter t-⌊t⌋. Segments are either straight lines or cubic polynomials.

Besides position and (non-normalized) velocity, segments and splines report
arc length and invert arc length back to a curve parameter. For cubic
segments, arc length is integrated by 5-point Gauss-Legendre quadrature and
inverted by a fixed number of Newton-Raphson steps.

Usage

Clients do not usually create segments directly. Instead they hand factories
to a spline, which builds each segment from its control data and the
segment before it (package qualifiers omitted):

   sp := New()
   sp.MustAddSegment(LinearFactory{P0: P(0,0), P1: P(1,0)})
   sp.MustAddSegment(C2HermiteFactory{P1: P(5,0), V1: P(1,0)})

The second segment inherits its start point and start velocity from the
line. Factories which need a predecessor fail with an error wrapping
ErrInvalidPreviousSegment if there is none.

Factories name a continuity class (C0, C1, C2). This is a statement of
intent by the caller and is not verified: C2HermiteFactory derives position
and velocity from its predecessor, but does not match acceleration.

Segments are immutable after construction. A spline only ever grows by
AddSegment; readers must not observe a spline while another goroutine
appends to it.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package piecewise
