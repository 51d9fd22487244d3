// Package session binds one comparison run into a single owned object: the
// input points, both algorithm results with their traces, and the derived
// summary. Everything downstream of the compute boundary (replay, stats
// display, export) works off a Session and never re-reads the raw payload.
package session

import (
	"errors"
	"fmt"
	"math"

	"github.com/hullscope/hullscope/internal/analysis"
	"github.com/hullscope/hullscope/internal/geom"
	"github.com/hullscope/hullscope/internal/projection"
	"github.com/hullscope/hullscope/internal/trace"
	"github.com/hullscope/hullscope/internal/wire"
)

// ErrMalformedSession indicates a comparison payload that cannot be bound:
// missing or inconsistent fields, or traces with unknown step kinds. An
// empty step trace is not malformed; it binds as an already-finished run.
var ErrMalformedSession = errors.New("session: malformed comparison payload")

// Result is one algorithm's outcome within a session.
type Result struct {
	Algorithm trace.Algorithm
	Hull      []geom.Point
	HullSize  int
	Seconds   float64
	Trace     trace.Trace
}

// Summary is the derived head-to-head verdict. Faster prefers Jarvis on
// exact ties; SpeedRatio is slower/faster and never below 1.
type Summary struct {
	Faster         trace.Algorithm
	TimeDifference float64
	SpeedRatio     float64
	HullSizesMatch bool
	JarvisSteps    int
	GrahamSteps    int
}

// Session is an immutable comparison run.
type Session struct {
	points  []geom.Point
	jarvis  Result
	graham  Result
	summary Summary
}

// New validates and binds a session, deep-copying all inputs.
func New(points []geom.Point, jarvis, graham Result) (*Session, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: input set has %d points, need at least 3", ErrMalformedSession, len(points))
	}
	for _, res := range []Result{jarvis, graham} {
		if err := checkResult(res); err != nil {
			return nil, err
		}
	}

	s := &Session{
		points: geom.Clone(points),
		jarvis: copyResult(jarvis),
		graham: copyResult(graham),
	}
	s.summary = deriveSummary(s.jarvis, s.graham)
	return s, nil
}

// Decode binds a wire payload. The summary is always re-derived from the
// timings; any performance_comparison block in the payload is ignored.
func Decode(payload wire.ComparisonResult) (*Session, error) {
	return New(payload.Points,
		resultFromWire(trace.Jarvis, payload.JarvisResult),
		resultFromWire(trace.Graham, payload.GrahamResult))
}

func resultFromWire(algo trace.Algorithm, res wire.AlgorithmResult) Result {
	return Result{
		Algorithm: algo,
		Hull:      res.Hull,
		HullSize:  res.HullSize,
		Seconds:   res.ExecutionTime,
		Trace:     trace.New(algo, res.Steps),
	}
}

func checkResult(res Result) error {
	name := res.Algorithm.DisplayName()
	if len(res.Hull) == 0 {
		return fmt.Errorf("%w: %s hull is empty", ErrMalformedSession, name)
	}
	if res.HullSize != len(res.Hull) {
		return fmt.Errorf("%w: %s hull_size %d does not match %d hull vertices",
			ErrMalformedSession, name, res.HullSize, len(res.Hull))
	}
	if res.Seconds < 0 || math.IsNaN(res.Seconds) || math.IsInf(res.Seconds, 0) {
		return fmt.Errorf("%w: %s execution time %v is not a valid duration",
			ErrMalformedSession, name, res.Seconds)
	}
	for i := 0; i < res.Trace.Len(); i++ {
		switch res.Trace.At(i).Kind {
		case trace.KindCandidate, trace.KindChosen, trace.KindPush, trace.KindPop, trace.KindFinal:
		default:
			return fmt.Errorf("%w: %s step %d has unknown kind %q",
				ErrMalformedSession, name, i, res.Trace.At(i).Kind)
		}
	}
	return nil
}

func copyResult(res Result) Result {
	res.Hull = geom.Clone(res.Hull)
	return res
}

func deriveSummary(jarvis, graham Result) Summary {
	faster := trace.Jarvis
	if graham.Seconds < jarvis.Seconds {
		faster = trace.Graham
	}
	return Summary{
		Faster:         faster,
		TimeDifference: math.Abs(jarvis.Seconds - graham.Seconds),
		SpeedRatio:     analysis.SpeedRatio(jarvis.Seconds, graham.Seconds),
		HullSizesMatch: jarvis.HullSize == graham.HullSize,
		JarvisSteps:    jarvis.Trace.Len(),
		GrahamSteps:    graham.Trace.Len(),
	}
}

// Points returns a copy of the input set.
func (s *Session) Points() []geom.Point { return geom.Clone(s.points) }

func (s *Session) NumPoints() int { return len(s.points) }

// Jarvis returns the gift wrap result. The hull slice is shared; callers
// must not modify it.
func (s *Session) Jarvis() Result { return s.jarvis }

func (s *Session) Graham() Result { return s.graham }

func (s *Session) Summary() Summary { return s.summary }

func (s *Session) Trace(algo trace.Algorithm) trace.Trace {
	if algo == trace.Graham {
		return s.graham.Trace
	}
	return s.jarvis.Trace
}

// MaxSteps is the replay length: the longer of the two traces.
func (s *Session) MaxSteps() int {
	if g := s.graham.Trace.Len(); g > s.jarvis.Trace.Len() {
		return g
	}
	return s.jarvis.Trace.Len()
}

// Project renders one algorithm's layers at a replay position.
func (s *Session) Project(algo trace.Algorithm, pos int) projection.LayerSet {
	return projection.Project(s.points, s.Trace(algo), pos)
}
