package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hullscope/hullscope/internal/wire"
)

const (
	DefaultDataDir    = ".hullscope"
	DefaultIntervalMS = 500
)

type Config struct {
	NumPoints int            `yaml:"num_points"`
	BBoxSize  int            `yaml:"bbox_size"`
	Seed      int64          `yaml:"seed"`
	DataDir   string         `yaml:"data_dir"`
	Remote    string         `yaml:"remote"`
	Playback  PlaybackConfig `yaml:"playback"`
	Sweep     SweepConfig    `yaml:"sweep"`
	Server    ServerConfig   `yaml:"server"`
}

type PlaybackConfig struct {
	IntervalMS int  `yaml:"interval_ms"`
	AutoPlay   bool `yaml:"auto_play"`
}

type SweepConfig struct {
	StartSize int `yaml:"start_size"`
	EndSize   int `yaml:"end_size"`
	StepSize  int `yaml:"step_size"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

func DefaultConfig() *Config {
	return &Config{
		NumPoints: wire.DefaultNumPoints,
		BBoxSize:  wire.DefaultBBoxSize,
		DataDir:   DefaultDataDir,
		Playback: PlaybackConfig{
			IntervalMS: DefaultIntervalMS,
		},
		Sweep: SweepConfig{
			StartSize: wire.DefaultStartSize,
			EndSize:   wire.DefaultEndSize,
			StepSize:  wire.DefaultStepSize,
		},
		Server: ServerConfig{
			Addr: ":8000",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CompareRequest maps the config onto a comparison request.
func (c *Config) CompareRequest() wire.CompareRequest {
	return wire.CompareRequest{
		NumPoints: c.NumPoints,
		BBoxSize:  c.BBoxSize,
	}
}

// AnalysisRequest maps the config onto a sweep request.
func (c *Config) AnalysisRequest() wire.AnalysisRequest {
	return wire.AnalysisRequest{
		StartSize: c.Sweep.StartSize,
		EndSize:   c.Sweep.EndSize,
		StepSize:  c.Sweep.StepSize,
	}
}

// PlaybackInterval is the configured step cadence.
func (c *Config) PlaybackInterval() time.Duration {
	ms := c.Playback.IntervalMS
	if ms <= 0 {
		ms = DefaultIntervalMS
	}
	return time.Duration(ms) * time.Millisecond
}
