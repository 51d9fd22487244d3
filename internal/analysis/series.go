package analysis

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptySeries indicates a sweep payload with no samples.
	ErrEmptySeries = errors.New("analysis: performance series has no samples")

	// ErrMisaligned indicates sweep arrays whose lengths disagree.
	ErrMisaligned = errors.New("analysis: series arrays are not index-aligned")
)

// Series is one sweep's samples, index-aligned by input size.
type Series struct {
	sizes       []int
	jarvisTimes []float64
	grahamTimes []float64
	jarvisHulls []int
	grahamHulls []int
}

// NewSeries validates alignment and copies the arrays into a Series.
func NewSeries(sizes []int, jarvisTimes, grahamTimes []float64, jarvisHulls, grahamHulls []int) (*Series, error) {
	n := len(sizes)
	if n == 0 {
		return nil, ErrEmptySeries
	}
	if len(jarvisTimes) != n || len(grahamTimes) != n || len(jarvisHulls) != n || len(grahamHulls) != n {
		return nil, fmt.Errorf("%w: sizes=%d jarvis_times=%d graham_times=%d jarvis_hulls=%d graham_hulls=%d",
			ErrMisaligned, n, len(jarvisTimes), len(grahamTimes), len(jarvisHulls), len(grahamHulls))
	}
	return &Series{
		sizes:       append([]int(nil), sizes...),
		jarvisTimes: append([]float64(nil), jarvisTimes...),
		grahamTimes: append([]float64(nil), grahamTimes...),
		jarvisHulls: append([]int(nil), jarvisHulls...),
		grahamHulls: append([]int(nil), grahamHulls...),
	}, nil
}

func (s *Series) Len() int { return len(s.sizes) }

func (s *Series) Sizes() []int { return append([]int(nil), s.sizes...) }

func (s *Series) JarvisTimes() []float64 { return append([]float64(nil), s.jarvisTimes...) }

func (s *Series) GrahamTimes() []float64 { return append([]float64(nil), s.grahamTimes...) }

func (s *Series) JarvisHulls() []int { return append([]int(nil), s.jarvisHulls...) }

func (s *Series) GrahamHulls() []int { return append([]int(nil), s.grahamHulls...) }

// WinCounts tallies which algorithm was strictly faster per sample.
type WinCounts struct {
	Jarvis int
	Graham int
	Ties   int
}

func (s *Series) Wins() WinCounts {
	var w WinCounts
	for i := range s.sizes {
		switch {
		case s.jarvisTimes[i] < s.grahamTimes[i]:
			w.Jarvis++
		case s.grahamTimes[i] < s.jarvisTimes[i]:
			w.Graham++
		default:
			w.Ties++
		}
	}
	return w
}

// Aggregate summarizes one time series.
type Aggregate struct {
	Min  float64
	Max  float64
	Mean float64
}

func aggregate(xs []float64) Aggregate {
	agg := Aggregate{Min: xs[0], Max: xs[0]}
	sum := 0.0
	for _, x := range xs {
		if x < agg.Min {
			agg.Min = x
		}
		if x > agg.Max {
			agg.Max = x
		}
		sum += x
	}
	agg.Mean = sum / float64(len(xs))
	return agg
}

func (s *Series) JarvisStats() Aggregate { return aggregate(s.jarvisTimes) }

func (s *Series) GrahamStats() Aggregate { return aggregate(s.grahamTimes) }

// Crossover finds the first input size where the faster algorithm flips
// relative to the previous sample. Ties count as a Jarvis lead, matching
// the single-run tie break. Monotone series have no crossover.
func (s *Series) Crossover() (size int, ok bool) {
	if len(s.sizes) < 2 {
		return 0, false
	}
	prev := s.jarvisTimes[0] <= s.grahamTimes[0]
	for i := 1; i < len(s.sizes); i++ {
		lead := s.jarvisTimes[i] <= s.grahamTimes[i]
		if lead != prev {
			return s.sizes[i], true
		}
		prev = lead
	}
	return 0, false
}

// SpeedRatio reports how many times slower the slower run was. Two zero
// durations are treated as equal speed, one zero duration as an infinite
// ratio.
func SpeedRatio(a, b float64) float64 {
	min, max := a, b
	if min > max {
		min, max = max, min
	}
	if max == 0 {
		return 1.0
	}
	if min == 0 {
		return math.Inf(1)
	}
	return max / min
}
