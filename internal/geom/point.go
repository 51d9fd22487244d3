package geom

import (
	"encoding/json"
	"fmt"
)

// Point is a 2D coordinate. It marshals as a [x, y] JSON pair, which is the
// shape point lists use on the wire.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("geom: point must be a [x, y] pair: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("geom: point must have exactly 2 coordinates, got %d", len(pair))
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

// Orientation classification of an ordered point triple.
const (
	Collinear = iota
	Clockwise
	CounterClockwise
)

// Orientation reports how r turns relative to the directed segment p->q.
func Orientation(p, q, r Point) int {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case val > 0:
		return Clockwise
	case val < 0:
		return CounterClockwise
	default:
		return Collinear
	}
}

// Cross is the z component of (a-o) x (b-o). Positive means o->a->b is a
// counterclockwise turn.
func Cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// DistSq is the squared euclidean distance between a and b.
func DistSq(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

func Clone(pts []Point) []Point {
	if pts == nil {
		return nil
	}
	c := make([]Point, len(pts))
	copy(c, pts)
	return c
}

// Dedupe returns pts with exact duplicates removed, preserving first-seen
// order.
func Dedupe(pts []Point) []Point {
	seen := make(map[Point]struct{}, len(pts))
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
