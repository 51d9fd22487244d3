package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.NumPoints < 3 {
		t.Errorf("default num_points %d below minimum input size", cfg.NumPoints)
	}
	if cfg.BBoxSize <= 0 {
		t.Error("bbox_size should be positive")
	}
	if cfg.Sweep.StartSize >= cfg.Sweep.EndSize {
		t.Error("sweep range should be ascending")
	}
	if cfg.PlaybackInterval() <= 0 {
		t.Error("playback interval should be positive")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("sweep", "quick")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Sweep.EndSize != 2000 {
		t.Errorf("expected end_size 2000, got %d", cfg.Sweep.EndSize)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("compare", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "demo"); cfg != nil {
		t.Error("expected nil for nonexistent command")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("replay")
	if len(presets) == 0 {
		t.Error("expected presets for replay")
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent command")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hullscope.yaml")

	cfg := DefaultConfig()
	cfg.NumPoints = 64
	cfg.Playback.IntervalMS = 250
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.NumPoints != 64 {
		t.Errorf("num_points = %d, want 64", loaded.NumPoints)
	}
	if loaded.PlaybackInterval() != 250*time.Millisecond {
		t.Errorf("interval = %v, want 250ms", loaded.PlaybackInterval())
	}
	if loaded.Sweep.StepSize != DefaultConfig().Sweep.StepSize {
		t.Error("unset fields should keep defaults")
	}
}

func TestRequestMapping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumPoints = 30
	cfg.Sweep = SweepConfig{StartSize: 10, EndSize: 110, StepSize: 100}

	if req := cfg.CompareRequest(); req.NumPoints != 30 {
		t.Errorf("compare request num_points = %d", req.NumPoints)
	}
	if req := cfg.AnalysisRequest(); req.EndSize != 110 {
		t.Errorf("analysis request end_size = %d", req.EndSize)
	}
}
