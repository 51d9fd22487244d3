package compute

import (
	"context"
	"testing"

	"github.com/hullscope/hullscope/internal/session"
	"github.com/hullscope/hullscope/internal/trace"
	"github.com/hullscope/hullscope/internal/wire"
)

func TestLocalCompareCustomPoints(t *testing.T) {
	p := NewLocalProvider(1)
	req := wire.CompareRequest{CustomPoints: []wire.XY{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3}, {X: 2, Y: 1},
	}}

	res, err := p.Compare(context.Background(), req)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	if len(res.Points) != 5 {
		t.Errorf("echoed %d points, want 5", len(res.Points))
	}
	if res.JarvisResult.HullSize != 4 || res.GrahamResult.HullSize != 4 {
		t.Errorf("hull sizes %d/%d, want 4/4", res.JarvisResult.HullSize, res.GrahamResult.HullSize)
	}
	if !res.PerformanceComparison.HullSizesMatch {
		t.Error("HullSizesMatch = false for agreeing hulls")
	}
	if res.JarvisResult.Algorithm != "Jarvis March" || res.GrahamResult.Algorithm != "Graham Scan" {
		t.Errorf("algorithm names %q/%q", res.JarvisResult.Algorithm, res.GrahamResult.Algorithm)
	}
	if res.PerformanceComparison.EfficiencyRatio < 1 {
		t.Errorf("EfficiencyRatio = %v, want >= 1", res.PerformanceComparison.EfficiencyRatio)
	}

	for _, steps := range [][]trace.Step{res.JarvisResult.Steps, res.GrahamResult.Steps} {
		if len(steps) == 0 {
			t.Fatal("empty step list")
		}
		if last := steps[len(steps)-1]; last.Kind != trace.KindFinal {
			t.Errorf("last step kind %q, want %q", last.Kind, trace.KindFinal)
		}
	}
	if res.PerformanceComparison.JarvisStepsCount != len(res.JarvisResult.Steps) {
		t.Error("jarvis_steps_count disagrees with step list")
	}
}

func TestLocalCompareGeneratesInput(t *testing.T) {
	res, err := NewLocalProvider(5).Compare(context.Background(), wire.CompareRequest{})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if len(res.Points) != wire.DefaultNumPoints {
		t.Errorf("generated %d points, want default %d", len(res.Points), wire.DefaultNumPoints)
	}
	if res.JarvisResult.HullSize < 3 {
		t.Errorf("degenerate hull of size %d", res.JarvisResult.HullSize)
	}
}

func TestLocalCompareFeedsSession(t *testing.T) {
	res, err := NewLocalProvider(11).Compare(context.Background(), wire.CompareRequest{NumPoints: 12, BBoxSize: 50})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	s, err := session.Decode(*res)
	if err != nil {
		t.Fatalf("Decode rejected a locally computed payload: %v", err)
	}
	if s.MaxSteps() == 0 {
		t.Error("decoded session has no steps")
	}
}

func TestLocalCompareRejects(t *testing.T) {
	tests := []struct {
		name string
		req  wire.CompareRequest
	}{
		{"too few generated", wire.CompareRequest{NumPoints: 2}},
		{"too many generated", wire.CompareRequest{NumPoints: 20000}},
		{"bbox out of range", wire.CompareRequest{NumPoints: 10, BBoxSize: 5}},
		{"too few custom", wire.CompareRequest{CustomPoints: []wire.XY{{X: 0, Y: 0}, {X: 1, Y: 1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLocalProvider(1).Compare(context.Background(), tt.req); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLocalGeneratePoints(t *testing.T) {
	got, err := NewLocalProvider(2).GeneratePoints(context.Background(), 50, 0)
	if err != nil {
		t.Fatalf("GeneratePoints: %v", err)
	}
	if got.Status != "success" {
		t.Errorf("Status = %q", got.Status)
	}
	if got.Count != 50 || len(got.Points) != 50 {
		t.Errorf("Count = %d with %d points, want 50", got.Count, len(got.Points))
	}
	if got.BBoxSize != wire.DefaultBBoxSize {
		t.Errorf("BBoxSize = %d, want default %d", got.BBoxSize, wire.DefaultBBoxSize)
	}
	for _, pt := range got.Points {
		if pt.X < 0 || pt.X > float64(got.BBoxSize) || pt.Y < 0 || pt.Y > float64(got.BBoxSize) {
			t.Fatalf("point %v outside box %d", pt, got.BBoxSize)
		}
	}

	if _, err := NewLocalProvider(2).GeneratePoints(context.Background(), 2, 100); err == nil {
		t.Error("accepted num_points below 3")
	}
	if _, err := NewLocalProvider(2).GeneratePoints(context.Background(), 10, 2000); err == nil {
		t.Error("accepted bbox_size above 1000")
	}
}

func TestLocalAnalyze(t *testing.T) {
	got, err := NewLocalProvider(7).Analyze(context.Background(), wire.AnalysisRequest{
		StartSize: 10, EndSize: 110, StepSize: 100,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(got.InputSizes) != 2 {
		t.Fatalf("InputSizes = %v, want two samples", got.InputSizes)
	}
}
