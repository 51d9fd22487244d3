// Package projection turns a trace position into drawable geometry. It is
// the only piece that knows what each step kind means visually; renderers
// just draw the layers they are handed.
package projection

import (
	"github.com/hullscope/hullscope/internal/geom"
	"github.com/hullscope/hullscope/internal/trace"
)

// Layer names a drawable point group. Renderers pick glyphs and styles per
// layer; unknown layers are safe to skip.
type Layer string

const (
	LayerAllPoints     Layer = "all-points"
	LayerHullSoFar     Layer = "hull-so-far"
	LayerCandidateEdge Layer = "candidate-edge"
	LayerChosenEdge    Layer = "chosen-edge"
	LayerStackLower    Layer = "stack-lower"
	LayerStackUpper    Layer = "stack-upper"
	LayerCurrentPoint  Layer = "current-point"
	LayerFinalHull     Layer = "final-hull"
)

// LayerSet maps layers to point sequences. Edge layers hold exactly two
// points; hull and stack layers hold ordered polyline vertices; the final
// hull is a closed ring (first vertex repeated at the end).
type LayerSet map[Layer][]geom.Point

// Project computes the layers for one replay position.
//
// Positions outside [0, trace len) are clamped: negative positions project
// the first step, positions at or past the end project the last step, which
// for a completed trace is the final hull. An empty trace projects the
// input points alone. Project never mutates its inputs and always returns
// freshly allocated slices, so two calls with the same arguments yield
// structurally equal, independent results.
func Project(points []geom.Point, tr trace.Trace, position int) LayerSet {
	ls := LayerSet{LayerAllPoints: geom.Clone(points)}
	if tr.Empty() {
		return ls
	}

	pos := position
	if pos < 0 {
		pos = 0
	}
	if pos >= tr.Len() {
		pos = tr.Len() - 1
	}

	st := tr.At(pos)
	switch st.Kind {
	case trace.KindCandidate:
		ls.put(LayerHullSoFar, st.HullSoFar)
		ls.putEdge(LayerCandidateEdge, st.From, st.To)
		ls.putPoint(LayerCurrentPoint, st.To)

	case trace.KindChosen:
		ls.put(LayerHullSoFar, st.HullSoFar)
		ls.putEdge(LayerChosenEdge, st.From, st.To)

	case trace.KindPush:
		ls.putStack(st.Part, st.Stack)
		ls.putPoint(LayerCurrentPoint, st.Added)
		ls.backfillLower(tr, pos, st.Part)

	case trace.KindPop:
		ls.putStack(st.Part, st.Stack)
		ls.putPoint(LayerCurrentPoint, st.Probe)
		ls.backfillLower(tr, pos, st.Part)

	case trace.KindFinal:
		ls.put(LayerFinalHull, closeRing(st.FinalHull))
	}
	return ls
}

func (ls LayerSet) put(layer Layer, pts []geom.Point) {
	if len(pts) == 0 {
		return
	}
	ls[layer] = geom.Clone(pts)
}

func (ls LayerSet) putPoint(layer Layer, p *geom.Point) {
	if p == nil {
		return
	}
	ls[layer] = []geom.Point{*p}
}

func (ls LayerSet) putEdge(layer Layer, from, to *geom.Point) {
	if from == nil || to == nil {
		return
	}
	ls[layer] = []geom.Point{*from, *to}
}

func (ls LayerSet) putStack(part trace.Half, stack []geom.Point) {
	switch part {
	case trace.HalfUpper:
		ls.put(LayerStackUpper, stack)
	default:
		ls.put(LayerStackLower, stack)
	}
}

// backfillLower keeps the finished lower chain on screen while the upper
// chain is being scanned: without it the lower hull would vanish the moment
// the scan turns around.
func (ls LayerSet) backfillLower(tr trace.Trace, pos int, part trace.Half) {
	if part != trace.HalfUpper {
		return
	}
	for i := pos; i >= 0; i-- {
		st := tr.At(i)
		if st.Part == trace.HalfLower && st.Stack != nil {
			ls.put(LayerStackLower, st.Stack)
			return
		}
	}
}

func closeRing(hull []geom.Point) []geom.Point {
	ring := geom.Clone(hull)
	if len(ring) >= 2 {
		ring = append(ring, ring[0])
	}
	return ring
}
