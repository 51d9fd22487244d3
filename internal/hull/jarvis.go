// Package hull implements the two convex hull algorithms under comparison,
// instrumented to record their work as step traces.
package hull

import (
	"fmt"

	"github.com/hullscope/hullscope/internal/geom"
	"github.com/hullscope/hullscope/internal/trace"
)

// Jarvis computes the convex hull by gift wrapping without recording steps.
// Inputs with fewer than 3 distinct points come back as-is.
func Jarvis(points []geom.Point) []geom.Point {
	h, _ := jarvisMarch(points, false)
	return h
}

// JarvisSteps is Jarvis plus the recorded trace: a candidate step per
// probe, a chosen step per accepted vertex, and a trailing final step.
func JarvisSteps(points []geom.Point) ([]geom.Point, []trace.Step) {
	return jarvisMarch(points, true)
}

func jarvisMarch(points []geom.Point, record bool) ([]geom.Point, []trace.Step) {
	pts := geom.Dedupe(points)
	n := len(pts)
	if n < 3 {
		return pts, nil
	}

	// Start at the leftmost point, lowest y breaking ties.
	l := 0
	for i := 1; i < n; i++ {
		if pts[i].X < pts[l].X || (pts[i].X == pts[l].X && pts[i].Y < pts[l].Y) {
			l = i
		}
	}

	var hull []geom.Point
	var steps []trace.Step
	p := l
	for {
		hull = append(hull, pts[p])
		q := (p + 1) % n

		for r := 0; r < n; r++ {
			if r == p {
				continue
			}
			if record {
				from, to, best := pts[p], pts[r], pts[q]
				steps = append(steps, trace.Step{
					Kind:        trace.KindCandidate,
					From:        &from,
					To:          &to,
					Best:        &best,
					HullSoFar:   geom.Clone(hull),
					Description: fmt.Sprintf("Checking point %v against current best %v", pts[r], pts[q]),
				})
			}
			o := geom.Orientation(pts[p], pts[q], pts[r])
			if o == geom.CounterClockwise ||
				(o == geom.Collinear && geom.DistSq(pts[p], pts[r]) > geom.DistSq(pts[p], pts[q])) {
				q = r
			}
		}

		if record {
			from, to := pts[p], pts[q]
			steps = append(steps, trace.Step{
				Kind:        trace.KindChosen,
				From:        &from,
				To:          &to,
				HullSoFar:   geom.Clone(hull),
				Description: fmt.Sprintf("Selected %v as next hull point", pts[q]),
			})
		}

		p = q
		if p == l {
			break
		}
	}

	if record {
		steps = append(steps, trace.Step{
			Kind:        trace.KindFinal,
			FinalHull:   geom.Clone(hull),
			Description: fmt.Sprintf("Completed hull with %d vertices", len(hull)),
		})
	}
	return hull, steps
}
