package hull

import (
	"fmt"
	"math/rand"

	"github.com/hullscope/hullscope/internal/geom"
)

// RandomPoints draws n distinct integer-coordinate points from the
// [0, bbox] x [0, bbox] grid. It fails up front when the grid cannot hold
// n distinct points rather than sampling forever.
func RandomPoints(n, bbox int, rng *rand.Rand) ([]geom.Point, error) {
	if n <= 0 {
		return nil, fmt.Errorf("hull: point count must be positive, got %d", n)
	}
	if bbox <= 0 {
		return nil, fmt.Errorf("hull: bbox must be positive, got %d", bbox)
	}
	side := bbox + 1
	capacity := side * side
	if n > capacity {
		return nil, fmt.Errorf("hull: cannot place %d distinct points in a %dx%d grid", n, side, side)
	}

	// Near capacity, rejection sampling degenerates; deal the grid instead.
	if n > capacity/2 {
		pts := make([]geom.Point, 0, n)
		for _, idx := range rng.Perm(capacity)[:n] {
			pts = append(pts, geom.Point{X: float64(idx % side), Y: float64(idx / side)})
		}
		return pts, nil
	}

	seen := make(map[geom.Point]struct{}, n)
	pts := make([]geom.Point, 0, n)
	for len(pts) < n {
		p := geom.Point{X: float64(rng.Intn(side)), Y: float64(rng.Intn(side))}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		pts = append(pts, p)
	}
	return pts, nil
}
