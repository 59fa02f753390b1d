package piecewise

import (
	"iter"
	"math"

	"github.com/npillmayer/splines"
)

// Spline is a series of segments forming a curve in 2D. The global parameter
// t ∈ [0,N] maps onto segment ⌊t⌋ at local parameter t-⌊t⌋.
//
// A spline owns its segments. It only grows, one segment at a time, by
// AddSegment, which lets the spline hand the previous segment to a factory.
// The zero value is an empty spline.
type Spline struct {
	segments []Segment
}

// New creates an empty spline, to be extended by AddSegment.
func New() *Spline {
	return &Spline{}
}

// FromSegments creates a spline from ready-made segments. Prefer AddSegment
// for anything after the first segment, as only factories keep
// the joins continuous.
func FromSegments(segments ...Segment) *Spline {
	sp := &Spline{segments: make([]Segment, 0, len(segments))}
	for i, seg := range segments {
		if seg == nil {
			tracer().Errorf("skipping nil segment #%d", i)
			continue
		}
		sp.segments = append(sp.segments, seg)
	}
	return sp
}

// AddSegment builds a segment with f, passing it the current last segment,
// and appends it. On error the spline is left unchanged.
func (sp *Spline) AddSegment(f Factory) error {
	seg, err := Build(f, sp.Last())
	if err != nil {
		return err
	}
	sp.segments = append(sp.segments, seg)
	return nil
}

// MustAddSegment is like AddSegment, but panics on error. It returns the
// spline to allow chaining.
func (sp *Spline) MustAddSegment(f Factory) *Spline {
	if err := sp.AddSegment(f); err != nil {
		panic(err)
	}
	return sp
}

// N returns the number of segments.
func (sp *Spline) N() int {
	return len(sp.segments)
}

// Segment returns segment #i, or nil if i is out of range.
func (sp *Spline) Segment(i int) Segment {
	if i < 0 || i >= len(sp.segments) {
		return nil
	}
	return sp.segments[i]
}

// Last returns the final segment, or nil for an empty spline.
func (sp *Spline) Last() Segment {
	return sp.Segment(len(sp.segments) - 1)
}

// Segments iterates over the segments in order.
func (sp *Spline) Segments() iter.Seq2[int, Segment] {
	return func(yield func(int, Segment) bool) {
		for i, seg := range sp.segments {
			if !yield(i, seg) {
				return
			}
		}
	}
}

// locate finds the segment for global parameter t. ok is false if t does
// not address any segment.
func (sp *Spline) locate(t float64) (seg Segment, local float64, ok bool) {
	if !(t >= 0) || t >= float64(len(sp.segments)) {
		return nil, 0, false
	}
	i := math.Floor(t)
	return sp.segments[int(i)], t - i, true
}

// Sample samples the spline at t. For t outside [0,N) it returns the
// origin.
func (sp *Spline) Sample(t float64) splines.Pair {
	seg, local, ok := sp.locate(t)
	if !ok {
		return splines.Origin
	}
	return seg.Sample(local)
}

// Derivative samples the spline's derivative at t. The derivative is not
// normalized. For t outside [0,N) it returns the origin.
func (sp *Spline) Derivative(t float64) splines.Pair {
	seg, local, ok := sp.locate(t)
	if !ok {
		return splines.Origin
	}
	return seg.Derivative(local)
}

// ArcLength is the length of the spline from 0 to t.
//
// For t > N the result is 0, not the total length. Negative t also yields 0.
func (sp *Spline) ArcLength(t float64) float64 {
	if t > float64(len(sp.segments)) || !(t >= 0) {
		return 0
	}
	index := math.Floor(t)
	var length float64
	for i, seg := range sp.segments {
		if float64(i) < index {
			length += seg.TotalArcLength()
			continue
		}
		length += seg.ArcLength(t - index)
		break
	}
	return length
}

// TotalArcLength is the sum of all segment lengths.
func (sp *Spline) TotalArcLength() float64 {
	var total float64
	for _, seg := range sp.segments {
		total += seg.TotalArcLength()
	}
	return total
}

// TimeAtArcLength finds t with ArcLength(t) = l. The segment containing l
// is inverted with its own initial guess. If l is not less than the total
// length, the result is N.
func (sp *Spline) TimeAtArcLength(l float64) float64 {
	return sp.walk(l, func(seg Segment, rest float64) float64 {
		return seg.TimeAtArcLength(rest)
	})
}

// TimeAtArcLengthFromGuess works like TimeAtArcLength, but starts the
// search within the segment at the fractional part of guess.
func (sp *Spline) TimeAtArcLengthFromGuess(l, guess float64) float64 {
	localGuess := guess - math.Floor(guess)
	return sp.walk(l, func(seg Segment, rest float64) float64 {
		return seg.TimeAtArcLengthFromGuess(rest, localGuess)
	})
}

// walk accumulates segment lengths until the segment containing l is
// found, then inverts l within that segment.
func (sp *Spline) walk(l float64, invert func(Segment, float64) float64) float64 {
	n := float64(len(sp.segments))
	if l > sp.TotalArcLength() {
		return n
	}
	var total float64
	for i, seg := range sp.segments {
		seglen := seg.TotalArcLength()
		if l >= total+seglen {
			total += seglen
			continue
		}
		return float64(i) + invert(seg, l-total)
	}
	return n
}

// String returns the segments of the spline, one per line.
func (sp *Spline) String() string {
	return asString(sp)
}
