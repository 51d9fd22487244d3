package viz

import (
	"github.com/hullscope/hullscope/internal/geom"
	"github.com/hullscope/hullscope/internal/projection"
)

// Frame renders one projected replay position onto a fresh braille
// canvas. Drawing goes background to foreground: the point field first,
// then chains and hull edges, then the highlighted edge of this step,
// and the point under test on top as a marker blob.
func Frame(ls projection.LayerSet, width, height int) string {
	return FrameCanvas(ls, width, height).String()
}

// FrameCanvas is Frame without the final string conversion, for callers
// that re-render the canvas elsewhere.
func FrameCanvas(ls projection.LayerSet, width, height int) *Canvas {
	c := NewCanvas(width, height)
	vp := FitViewport(ls[projection.LayerAllPoints], c)

	for _, p := range ls[projection.LayerAllPoints] {
		c.Set(vp.Dot(p))
	}

	drawChain(c, vp, ls[projection.LayerStackLower])
	drawChain(c, vp, ls[projection.LayerStackUpper])
	drawChain(c, vp, ls[projection.LayerHullSoFar])
	drawChain(c, vp, ls[projection.LayerFinalHull])
	drawChain(c, vp, ls[projection.LayerCandidateEdge])
	drawChain(c, vp, ls[projection.LayerChosenEdge])

	for _, p := range ls[projection.LayerCurrentPoint] {
		c.Marker(vp.Dot(p))
	}
	return c
}

// drawChain draws an open polyline with emphasized vertices. Single
// points get a vertex mark and no segments.
func drawChain(c *Canvas, vp Viewport, pts []geom.Point) {
	if len(pts) == 0 {
		return
	}

	x0, y0 := vp.Dot(pts[0])
	vertexMark(c, x0, y0)
	for i := 1; i < len(pts); i++ {
		x1, y1 := vp.Dot(pts[i])
		c.DrawLine(x0, y0, x1, y1)
		vertexMark(c, x1, y1)
		x0, y0 = x1, y1
	}
}

// vertexMark is a 2x2 block, heavier than a field dot but lighter than
// the current-point marker.
func vertexMark(c *Canvas, x, y int) {
	c.Set(x, y)
	c.Set(x+1, y)
	c.Set(x, y+1)
	c.Set(x+1, y+1)
}
