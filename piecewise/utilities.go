package piecewise

import (
	"fmt"
	"strings"

	"github.com/npillmayer/splines"
)

// asString returns a spline as a (debugging) string, e.g.
//
//	#0 linear (0,0) -- (1,0)
//	#1 cubic  (1,0) .. controls (1.3333,0) and (4.6667,0) .. (5,0)
func asString(sp *Spline) string {
	var b strings.Builder
	for i, seg := range sp.Segments() {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch seg.(type) {
		case *Linear:
			fmt.Fprintf(&b, "#%d linear %s", i, seg)
		case *Cubic:
			fmt.Fprintf(&b, "#%d cubic  %s", i, seg)
		}
	}
	return b.String()
}

func ptstring(p splines.Pair) string {
	if p.IsNaN() {
		return "(<unknown>)"
	}
	return fmt.Sprintf("(%.5g,%.5g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
