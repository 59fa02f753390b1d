package splines

import (
	"fmt"
	"math/cmplx"
)

// Pair is a 2D point or vector. Pairs are values: every operation returns
// a new pair. Addition and subtraction are the native complex operators.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return Origin
	}
	return Pair(c)
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Scaled returns a new pair scaled by factor a.
//
// Unlike Zap, Scaled does not round: it is used inside numeric integration,
// where small components are significant.
func (p Pair) Scaled(a float64) Pair {
	return P(real(p)*a, imag(p)*a)
}

// Lerp interpolates linearly between p (t = 0) and q (t = 1).
func (p Pair) Lerp(q Pair, t float64) Pair {
	return p + (q - p).Scaled(t)
}

// Magnitude is the euclidean length of p, interpreted as a vector.
func (p Pair) Magnitude() float64 {
	return cmplx.Abs(p.C())
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// IsNaN is a predicate: does one of the parts of p hold a NaN?
func (p Pair) IsNaN() bool {
	return cmplx.IsNaN(p.C())
}

// Equal compares two pairs, up to Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}
