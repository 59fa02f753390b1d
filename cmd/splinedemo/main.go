/*
Splinedemo builds a small spline, reads a curve parameter t from stdin and
prints position, velocity and arc length at t. It then inverts the arc
length and checks that the result is t again.

	echo 1.5 | splinedemo -eps 1e-8 -steps 8

The spline is a line from (0,0) to (1,0), continued smoothly by a cubic
Hermite segment to (5,0); valid parameters are 0 ≤ t < 2.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/splines"
	"github.com/npillmayer/splines/piecewise"
	"github.com/npillmayer/splines/polygon"
)

// tracer writes to trace with key 'splines.demo'
func tracer() tracing.Trace {
	return tracing.Select("splines.demo")
}

type config struct {
	eps   float64 // tolerance for the arc length round trip
	steps int     // if > 0, print the spline flattened to this many edges
}

var errRoundTrip = errors.New("arc length round trip failed")

func main() {
	trace := flag.String("trace", "error", "trace level: debug, info or error")
	eps := flag.Float64("eps", 1e-8, "tolerance for the arc length round trip")
	steps := flag.Int("steps", 0, "print the spline as a polygon of this many edges")
	flag.Parse()

	level, err := traceLevel(*trace)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupTracing(level, os.Stderr)
	if err := run(os.Stdin, os.Stdout, config{eps: *eps, steps: *steps}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// traceKeys are the tracers of the module's packages.
var traceKeys = []string{"splines", "splines.piecewise", "splines.polygon", "splines.demo"}

// setupTracing installs tracers based on Go's log package for all of
// traceKeys, writing to w at the given level.
func setupTracing(level tracing.TraceLevel, w io.Writer) {
	trace2go.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tracing.SetTraceSelector(trace2go.Selector())
	for _, key := range traceKeys {
		t := tracing.Select(key)
		t.SetOutput(w)
		t.SetTraceLevel(level)
	}
}

// traceLevel parses a trace level. Unlike tracing.TraceLevelFromString it
// rejects unknown names instead of falling back to errors only.
func traceLevel(s string) (tracing.TraceLevel, error) {
	switch s = strings.ToLower(s); s {
	case "debug", "info", "error":
		return tracing.TraceLevelFromString(s), nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", s)
}

func demoSpline() *piecewise.Spline {
	return piecewise.New().
		MustAddSegment(piecewise.NewLinearFactory(splines.P(0, 0), splines.P(1, 0))).
		MustAddSegment(piecewise.NewC2HermiteFactory(splines.P(5, 0), splines.P(1, 0)))
}

func run(in io.Reader, out io.Writer, cfg config) error {
	sp := demoSpline()
	tracer().Debugf("spline =\n%s", sp)

	fmt.Fprint(out, "test number: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading parameter: %w", err)
	}
	t, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return fmt.Errorf("parameter is not a number: %w", err)
	}

	position := sp.Sample(t)
	derivative := sp.Derivative(t)
	arcLength := sp.ArcLength(t)
	tGuess := sp.TimeAtArcLength(arcLength)
	fmt.Fprintf(out, "\nt: %g\nposition: %s\nderivative: %s\narc_length: %g\nt_guess: %g\n",
		t, position, derivative, arcLength, tGuess)

	if cfg.steps > 0 {
		pg, err := polygon.FromSpline(sp, cfg.steps)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "polygon: %s\n", polygon.AsString(pg))
	}
	if d := math.Abs(t - tGuess); !(d <= cfg.eps) {
		return fmt.Errorf("%w: |%g - %g| = %g > %g", errRoundTrip, t, tGuess, d, cfg.eps)
	}
	return nil
}
