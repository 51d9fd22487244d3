package hull

import (
	"fmt"
	"sort"

	"github.com/hullscope/hullscope/internal/geom"
	"github.com/hullscope/hullscope/internal/trace"
)

// Graham computes the convex hull by the monotone chain variant of the
// sort-and-scan approach, without recording steps.
func Graham(points []geom.Point) []geom.Point {
	h, _ := grahamScan(points, false)
	return h
}

// GrahamSteps is Graham plus the recorded trace: a push or pop step per
// stack mutation, tagged with the chain it happened on, and a trailing
// final step carrying the combined hull.
func GrahamSteps(points []geom.Point) ([]geom.Point, []trace.Step) {
	return grahamScan(points, true)
}

func grahamScan(points []geom.Point, record bool) ([]geom.Point, []trace.Step) {
	pts := geom.Dedupe(points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	if len(pts) <= 1 {
		return pts, nil
	}

	var steps []trace.Step
	scan := func(ordered []geom.Point, part trace.Half) []geom.Point {
		var chain []geom.Point
		for _, p := range ordered {
			for len(chain) >= 2 && geom.Cross(chain[len(chain)-2], chain[len(chain)-1], p) <= 0 {
				removed := chain[len(chain)-1]
				chain = chain[:len(chain)-1]
				if record {
					probe := p
					steps = append(steps, trace.Step{
						Kind:        trace.KindPop,
						Part:        part,
						Removed:     &removed,
						Probe:       &probe,
						Stack:       geom.Clone(chain),
						Description: fmt.Sprintf("Removed %v from %s hull (makes right turn)", removed, part),
					})
				}
			}
			chain = append(chain, p)
			if record {
				added := p
				steps = append(steps, trace.Step{
					Kind:        trace.KindPush,
					Part:        part,
					Added:       &added,
					Stack:       geom.Clone(chain),
					Description: fmt.Sprintf("Added %v to %s hull", p, part),
				})
			}
		}
		return chain
	}

	lower := scan(pts, trace.HalfLower)
	reversed := make([]geom.Point, len(pts))
	for i, p := range pts {
		reversed[len(pts)-1-i] = p
	}
	upper := scan(reversed, trace.HalfUpper)

	// Each chain ends where the other begins; drop the duplicates.
	hull := make([]geom.Point, 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)

	if record {
		steps = append(steps, trace.Step{
			Kind:        trace.KindFinal,
			Part:        trace.HalfCombined,
			FinalHull:   geom.Clone(hull),
			Description: "Combined lower and upper hulls to get final convex hull",
		})
	}
	return hull, steps
}
