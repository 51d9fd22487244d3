package compute

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/hullscope/hullscope/internal/analysis"
	"github.com/hullscope/hullscope/internal/geom"
	"github.com/hullscope/hullscope/internal/hull"
	"github.com/hullscope/hullscope/internal/sweep"
	"github.com/hullscope/hullscope/internal/trace"
	"github.com/hullscope/hullscope/internal/wire"
)

// LocalProvider runs everything in-process.
type LocalProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLocalProvider builds an in-process provider. Seed zero means
// time-seeded; any other value makes generated inputs reproducible.
func NewLocalProvider(seed int64) *LocalProvider {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &LocalProvider{rng: rand.New(rand.NewSource(seed))}
}

func (p *LocalProvider) Name() string    { return "local" }
func (p *LocalProvider) Available() bool { return true }

// Compare runs both algorithms over one input set and assembles the full
// comparison payload. The recorded runs are the timed runs, so the served
// duration is the cost of exactly what the trace shows.
func (p *LocalProvider) Compare(ctx context.Context, req wire.CompareRequest) (*wire.ComparisonResult, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	points := req.Points()
	if points == nil {
		var err error
		points, err = p.randomPoints(req.NumPoints, req.BBoxSize)
		if err != nil {
			return nil, err
		}
	}

	jarvisStart := time.Now()
	jarvisHull, jarvisSteps := hull.JarvisSteps(points)
	jarvisTime := time.Since(jarvisStart).Seconds()

	grahamStart := time.Now()
	grahamHull, grahamSteps := hull.GrahamSteps(points)
	grahamTime := time.Since(grahamStart).Seconds()

	return &wire.ComparisonResult{
		Points: points,
		JarvisResult: wire.AlgorithmResult{
			Algorithm:     trace.Jarvis.DisplayName(),
			Points:        points,
			Hull:          jarvisHull,
			HullSize:      len(jarvisHull),
			ExecutionTime: jarvisTime,
			Steps:         jarvisSteps,
		},
		GrahamResult: wire.AlgorithmResult{
			Algorithm:     trace.Graham.DisplayName(),
			Points:        points,
			Hull:          grahamHull,
			HullSize:      len(grahamHull),
			ExecutionTime: grahamTime,
			Steps:         grahamSteps,
		},
		PerformanceComparison: wire.PerformanceComparison{
			JarvisFaster:     jarvisTime <= grahamTime,
			TimeDifference:   math.Abs(jarvisTime - grahamTime),
			JarvisStepsCount: len(jarvisSteps),
			GrahamStepsCount: len(grahamSteps),
			HullSizesMatch:   len(jarvisHull) == len(grahamHull),
			EfficiencyRatio:  analysis.SpeedRatio(jarvisTime, grahamTime),
		},
	}, nil
}

// Analyze runs the sweep in-process. Each call gets its own runner seeded
// from the provider source, so seeded providers stay reproducible while
// concurrent sweeps never share a random stream.
func (p *LocalProvider) Analyze(ctx context.Context, req wire.AnalysisRequest) (*wire.PerformanceAnalysis, error) {
	p.mu.Lock()
	seed := p.rng.Int63()
	p.mu.Unlock()
	return sweep.New(sweep.Config{Seed: seed}).Run(ctx, req)
}

func (p *LocalProvider) GeneratePoints(ctx context.Context, numPoints, bboxSize int) (*wire.GeneratedPoints, error) {
	if numPoints < 3 || numPoints > 10000 {
		return nil, fmt.Errorf("compute: num_points must be between 3 and 10000, got %d", numPoints)
	}
	if bboxSize == 0 {
		bboxSize = wire.DefaultBBoxSize
	}
	if bboxSize < 10 || bboxSize > 1000 {
		return nil, fmt.Errorf("compute: bbox_size must be between 10 and 1000, got %d", bboxSize)
	}
	points, err := p.randomPoints(numPoints, bboxSize)
	if err != nil {
		return nil, err
	}
	return &wire.GeneratedPoints{
		Status:   "success",
		Points:   points,
		Count:    len(points),
		BBoxSize: bboxSize,
	}, nil
}

func (p *LocalProvider) randomPoints(n, bbox int) ([]geom.Point, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return hull.RandomPoints(n, bbox, p.rng)
}
