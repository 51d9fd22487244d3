// Package sweep runs the benchmark half of the compute boundary: for a
// range of input sizes it draws fresh random point sets and times both
// hull algorithms on them, producing the aligned sample arrays the
// performance-analysis contract promises.
package sweep

import (
	"context"
	"math"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/hullscope/hullscope/internal/geom"
	"github.com/hullscope/hullscope/internal/hull"
	"github.com/hullscope/hullscope/internal/wire"
)

// Config controls how sweep inputs are generated.
type Config struct {
	// BBox is the sampling box side for small inputs. Sizes that would
	// crowd the integer grid get a larger box; see Runner.generate.
	BBox int
	// Seed fixes the random source for reproducible sweeps. Zero means
	// time-seeded.
	Seed int64
}

// Runner executes sweeps. Each size gets its own point set; both
// algorithms run on the same set, sequentially, so their timings see the
// same input and no scheduler contention from each other.
type Runner struct {
	cfg Config
	rng *rand.Rand
}

func New(cfg Config) *Runner {
	if cfg.BBox <= 0 {
		cfg.BBox = wire.DefaultBBoxSize
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Runner{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// Run times both algorithms at every size in the requested range. The
// traces are not recorded here: a sweep measures raw construction time,
// and recording would charge the gift wrap for its much larger snapshot
// volume.
func (r *Runner) Run(ctx context.Context, req wire.AnalysisRequest) (*wire.PerformanceAnalysis, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sizes := req.Sizes()
	out := &wire.PerformanceAnalysis{
		InputSizes:         make([]int, 0, len(sizes)),
		JarvisTimes:        make([]float64, 0, len(sizes)),
		GrahamTimes:        make([]float64, 0, len(sizes)),
		JarvisHullSizes:    make([]int, 0, len(sizes)),
		GrahamHullSizes:    make([]int, 0, len(sizes)),
		ComplexityAnalysis: hull.ComplexityNotes(),
	}

	for _, n := range sizes {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		points, err := r.generate(n)
		if err != nil {
			return nil, err
		}

		jarvisHull, jarvisTime := timeHull(hull.Jarvis, points)
		grahamHull, grahamTime := timeHull(hull.Graham, points)

		out.InputSizes = append(out.InputSizes, n)
		out.JarvisTimes = append(out.JarvisTimes, jarvisTime)
		out.GrahamTimes = append(out.GrahamTimes, grahamTime)
		out.JarvisHullSizes = append(out.JarvisHullSizes, len(jarvisHull))
		out.GrahamHullSizes = append(out.GrahamHullSizes, len(grahamHull))

		log.Debugf("sweep: n=%d jarvis=%.6fs (%d verts) graham=%.6fs (%d verts)",
			n, jarvisTime, len(jarvisHull), grahamTime, len(grahamHull))
	}

	return out, nil
}

// generate draws n distinct points. The configured box is kept for sizes
// it can hold loosely; bigger sizes get a box with at least 4x headroom
// so rejection sampling stays cheap and hull sizes keep growing with n.
func (r *Runner) generate(n int) ([]geom.Point, error) {
	bbox := r.cfg.BBox
	if side := bbox + 1; side*side < 4*n {
		bbox = int(math.Ceil(math.Sqrt(float64(4 * n))))
	}
	return hull.RandomPoints(n, bbox, r.rng)
}

func timeHull(algo func([]geom.Point) []geom.Point, points []geom.Point) ([]geom.Point, float64) {
	start := time.Now()
	h := algo(points)
	return h, time.Since(start).Seconds()
}
