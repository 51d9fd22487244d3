// Package store persists comparison sessions and sweep results on disk,
// one directory per saved run, so earlier runs can be replayed or
// exported without recomputing them.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hullscope/hullscope/internal/wire"
)

// Run kinds.
const (
	KindCompare = "compare"
	KindSweep   = "sweep"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata is the summary record written next to every saved run.
type RunMetadata struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	Timestamp time.Time          `json:"timestamp"`
	Metrics   map[string]float64 `json:"metrics"`
}

// SaveSession writes a comparison payload as a new run. The run ID is
// nanosecond-stamped so back-to-back saves never collide.
func (s *Store) SaveSession(res *wire.ComparisonResult) (string, error) {
	runID := fmt.Sprintf("%s_%d", KindCompare, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      KindCompare,
		Timestamp: time.Now(),
		Metrics: map[string]float64{
			"points":           float64(len(res.Points)),
			"hull_size":        float64(res.JarvisResult.HullSize),
			"jarvis_time":      res.JarvisResult.ExecutionTime,
			"graham_time":      res.GrahamResult.ExecutionTime,
			"jarvis_steps":     float64(len(res.JarvisResult.Steps)),
			"graham_steps":     float64(len(res.GrahamResult.Steps)),
			"efficiency_ratio": res.PerformanceComparison.EfficiencyRatio,
		},
	}
	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(runDir, "session.json"), res); err != nil {
		return "", err
	}
	return runID, nil
}

// SaveSweep writes a sweep payload as a new run: the full JSON next to a
// CSV of the samples for spreadsheet work.
func (s *Store) SaveSweep(res *wire.PerformanceAnalysis) (string, error) {
	runID := fmt.Sprintf("%s_%d", KindSweep, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      KindSweep,
		Timestamp: time.Now(),
		Metrics: map[string]float64{
			"samples": float64(len(res.InputSizes)),
		},
	}
	if len(res.InputSizes) > 0 {
		meta.Metrics["min_size"] = float64(res.InputSizes[0])
		meta.Metrics["max_size"] = float64(res.InputSizes[len(res.InputSizes)-1])
	}
	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(runDir, "sweep.json"), res); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()
	if err := writeSweepCSV(csvFile, res); err != nil {
		return "", err
	}
	return runID, nil
}

// List returns metadata for every readable run. Directories without a
// parseable metadata.json are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadSession(runID string) (*wire.ComparisonResult, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "session.json"))
	if err != nil {
		return nil, err
	}
	var res wire.ComparisonResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *Store) LoadSweep(runID string) (*wire.PerformanceAnalysis, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "sweep.json"))
	if err != nil {
		return nil, err
	}
	var res wire.PerformanceAnalysis
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func writeJSON(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSweepCSV(w io.Writer, res *wire.PerformanceAnalysis) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"input_size", "jarvis_time", "graham_time", "jarvis_hull_size", "graham_hull_size"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, n := range res.InputSizes {
		row := []string{
			strconv.Itoa(n),
			strconv.FormatFloat(res.JarvisTimes[i], 'f', 9, 64),
			strconv.FormatFloat(res.GrahamTimes[i], 'f', 9, 64),
			strconv.Itoa(res.JarvisHullSizes[i]),
			strconv.Itoa(res.GrahamHullSizes[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
