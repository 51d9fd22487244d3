package sweep

import (
	"context"
	"testing"

	"github.com/hullscope/hullscope/internal/wire"
)

func TestRunAlignedSamples(t *testing.T) {
	r := New(Config{Seed: 7})
	req := wire.AnalysisRequest{StartSize: 10, EndSize: 310, StepSize: 100}

	got, err := r.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	wantSizes := []int{10, 110, 210, 310}
	if len(got.InputSizes) != len(wantSizes) {
		t.Fatalf("got %d samples, want %d", len(got.InputSizes), len(wantSizes))
	}
	for i, n := range wantSizes {
		if got.InputSizes[i] != n {
			t.Errorf("InputSizes[%d] = %d, want %d", i, got.InputSizes[i], n)
		}
	}

	for _, arr := range [][]float64{got.JarvisTimes, got.GrahamTimes} {
		if len(arr) != len(wantSizes) {
			t.Fatalf("time series has %d entries, want %d", len(arr), len(wantSizes))
		}
		for i, d := range arr {
			if d < 0 {
				t.Errorf("negative duration %v at index %d", d, i)
			}
		}
	}

	if len(got.JarvisHullSizes) != len(wantSizes) || len(got.GrahamHullSizes) != len(wantSizes) {
		t.Fatalf("hull size series misaligned: %d vs %d", len(got.JarvisHullSizes), len(got.GrahamHullSizes))
	}
	for i := range wantSizes {
		if got.JarvisHullSizes[i] != got.GrahamHullSizes[i] {
			t.Errorf("hull sizes disagree at n=%d: jarvis %d, graham %d",
				wantSizes[i], got.JarvisHullSizes[i], got.GrahamHullSizes[i])
		}
		if got.JarvisHullSizes[i] < 3 {
			t.Errorf("degenerate hull of size %d at n=%d", got.JarvisHullSizes[i], wantSizes[i])
		}
	}

	if got.ComplexityAnalysis.JarvisMarch.Theoretical == "" {
		t.Error("complexity notes missing from analysis")
	}
}

func TestRunGrowsCrowdedBox(t *testing.T) {
	// A 10x10 box holds 121 grid points; asking for 100 distinct points
	// would make rejection sampling crawl if the box stayed fixed.
	r := New(Config{BBox: 10, Seed: 3})
	req := wire.AnalysisRequest{StartSize: 100, EndSize: 100, StepSize: 100}

	got, err := r.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(got.InputSizes) != 1 || got.InputSizes[0] != 100 {
		t.Fatalf("InputSizes = %v, want [100]", got.InputSizes)
	}
	if got.JarvisHullSizes[0] < 3 {
		t.Errorf("hull size %d, want at least 3", got.JarvisHullSizes[0])
	}
}

func TestRunDeterministicSizes(t *testing.T) {
	req := wire.AnalysisRequest{StartSize: 10, EndSize: 110, StepSize: 100}

	a, err := New(Config{Seed: 42}).Run(context.Background(), req)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	b, err := New(Config{Seed: 42}).Run(context.Background(), req)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	for i := range a.InputSizes {
		if a.JarvisHullSizes[i] != b.JarvisHullSizes[i] {
			t.Errorf("seeded runs diverge at index %d: %d vs %d", i, a.JarvisHullSizes[i], b.JarvisHullSizes[i])
		}
	}
}

func TestRunValidates(t *testing.T) {
	tests := []struct {
		name string
		req  wire.AnalysisRequest
	}{
		{"start below range", wire.AnalysisRequest{StartSize: 5, EndSize: 200, StepSize: 100}},
		{"end above range", wire.AnalysisRequest{StartSize: 10, EndSize: 200000, StepSize: 100}},
		{"step below range", wire.AnalysisRequest{StartSize: 10, EndSize: 200, StepSize: 50}},
		{"inverted range", wire.AnalysisRequest{StartSize: 500, EndSize: 100, StepSize: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(Config{Seed: 1}).Run(context.Background(), tt.req); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestRunHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{Seed: 1}).Run(ctx, wire.AnalysisRequest{StartSize: 10, EndSize: 110, StepSize: 100})
	if err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestRunDefaultsZeroRequest(t *testing.T) {
	got, err := New(Config{Seed: 9}).Run(context.Background(), wire.AnalysisRequest{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(got.InputSizes) == 0 {
		t.Fatal("defaulted request produced no samples")
	}
	if got.InputSizes[0] != wire.DefaultStartSize {
		t.Errorf("first size = %d, want %d", got.InputSizes[0], wire.DefaultStartSize)
	}
}
