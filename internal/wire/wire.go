// Package wire defines the JSON payloads of the compute boundary. Field
// names and validation bounds follow the compute service contract; point
// lists travel as [x, y] pairs except request custom_points, which arrive
// as {x, y} objects.
package wire

import (
	"fmt"

	"github.com/hullscope/hullscope/internal/geom"
	"github.com/hullscope/hullscope/internal/trace"
)

// Request defaults, applied to zero-valued fields before validation.
const (
	DefaultNumPoints = 20
	DefaultBBoxSize  = 100
	DefaultStartSize = 100
	DefaultEndSize   = 10000
	DefaultStepSize  = 500
)

// XY is the object form a point takes in requests.
type XY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p XY) Point() geom.Point { return geom.Point{X: p.X, Y: p.Y} }

// CompareRequest asks for a head-to-head run of both algorithms over one
// point set. CustomPoints, when present, replaces generated input.
type CompareRequest struct {
	NumPoints    int  `json:"num_points"`
	BBoxSize     int  `json:"bbox_size"`
	CustomPoints []XY `json:"custom_points,omitempty"`
}

// Normalize fills unset fields with their defaults.
func (r *CompareRequest) Normalize() {
	if r.NumPoints == 0 {
		r.NumPoints = DefaultNumPoints
	}
	if r.BBoxSize == 0 {
		r.BBoxSize = DefaultBBoxSize
	}
}

func (r CompareRequest) Validate() error {
	if len(r.CustomPoints) > 0 {
		if len(r.CustomPoints) < 3 {
			return fmt.Errorf("wire: custom_points needs at least 3 points, got %d", len(r.CustomPoints))
		}
		return nil
	}
	if r.NumPoints < 3 || r.NumPoints > 10000 {
		return fmt.Errorf("wire: num_points must be between 3 and 10000, got %d", r.NumPoints)
	}
	if r.BBoxSize < 10 || r.BBoxSize > 1000 {
		return fmt.Errorf("wire: bbox_size must be between 10 and 1000, got %d", r.BBoxSize)
	}
	return nil
}

// Points resolves the input set: custom points if given, nil otherwise.
func (r CompareRequest) Points() []geom.Point {
	if len(r.CustomPoints) == 0 {
		return nil
	}
	pts := make([]geom.Point, len(r.CustomPoints))
	for i, p := range r.CustomPoints {
		pts[i] = p.Point()
	}
	return pts
}

// AnalysisRequest asks for a benchmark sweep over a size range.
type AnalysisRequest struct {
	StartSize int `json:"start_size"`
	EndSize   int `json:"end_size"`
	StepSize  int `json:"step_size"`
}

func (r *AnalysisRequest) Normalize() {
	if r.StartSize == 0 {
		r.StartSize = DefaultStartSize
	}
	if r.EndSize == 0 {
		r.EndSize = DefaultEndSize
	}
	if r.StepSize == 0 {
		r.StepSize = DefaultStepSize
	}
}

func (r AnalysisRequest) Validate() error {
	if r.StartSize < 10 || r.StartSize > 1000 {
		return fmt.Errorf("wire: start_size must be between 10 and 1000, got %d", r.StartSize)
	}
	if r.EndSize < 100 || r.EndSize > 100000 {
		return fmt.Errorf("wire: end_size must be between 100 and 100000, got %d", r.EndSize)
	}
	if r.StepSize < 100 || r.StepSize > 5000 {
		return fmt.Errorf("wire: step_size must be between 100 and 5000, got %d", r.StepSize)
	}
	if r.EndSize < r.StartSize {
		return fmt.Errorf("wire: end_size %d is below start_size %d", r.EndSize, r.StartSize)
	}
	return nil
}

// Sizes expands the range into the sampled input sizes.
func (r AnalysisRequest) Sizes() []int {
	var sizes []int
	for n := r.StartSize; n <= r.EndSize; n += r.StepSize {
		sizes = append(sizes, n)
	}
	return sizes
}

// AlgorithmResult is one algorithm's half of a comparison payload.
type AlgorithmResult struct {
	Algorithm     string       `json:"algorithm"`
	Points        []geom.Point `json:"points"`
	Hull          []geom.Point `json:"hull"`
	HullSize      int          `json:"hull_size"`
	ExecutionTime float64      `json:"execution_time"`
	Steps         []trace.Step `json:"steps"`
}

// PerformanceComparison is the head-to-head verdict of one comparison.
type PerformanceComparison struct {
	JarvisFaster     bool    `json:"jarvis_faster"`
	TimeDifference   float64 `json:"time_difference"`
	JarvisStepsCount int     `json:"jarvis_steps_count"`
	GrahamStepsCount int     `json:"graham_steps_count"`
	HullSizesMatch   bool    `json:"hull_sizes_match"`
	EfficiencyRatio  float64 `json:"efficiency_ratio"`
}

// ComparisonResult is the full compare payload.
type ComparisonResult struct {
	Points                []geom.Point          `json:"points"`
	JarvisResult          AlgorithmResult       `json:"jarvis_result"`
	GrahamResult          AlgorithmResult       `json:"graham_result"`
	PerformanceComparison PerformanceComparison `json:"performance_comparison"`
}

// ComplexityProfile is the static complexity description of one algorithm.
type ComplexityProfile struct {
	Theoretical     string `json:"theoretical"`
	BestCase        string `json:"best_case"`
	WorstCase       string `json:"worst_case"`
	SpaceComplexity string `json:"space_complexity"`
}

type ComplexityAnalysis struct {
	JarvisMarch    ComplexityProfile `json:"jarvis_march"`
	GrahamScan     ComplexityProfile `json:"graham_scan"`
	Recommendation string            `json:"recommendation"`
}

// PerformanceAnalysis is the sweep payload: parallel arrays indexed by
// input size plus the static complexity notes.
type PerformanceAnalysis struct {
	InputSizes         []int              `json:"input_sizes"`
	JarvisTimes        []float64          `json:"jarvis_times"`
	GrahamTimes        []float64          `json:"graham_times"`
	JarvisHullSizes    []int              `json:"jarvis_hull_sizes"`
	GrahamHullSizes    []int              `json:"graham_hull_sizes"`
	ComplexityAnalysis ComplexityAnalysis `json:"complexity_analysis"`
}

// GeneratedPoints is the generate-points payload.
type GeneratedPoints struct {
	Status   string       `json:"status"`
	Points   []geom.Point `json:"points"`
	Count    int          `json:"count"`
	BBoxSize int          `json:"bbox_size"`
}
