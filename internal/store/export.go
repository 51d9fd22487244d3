package store

import (
	"encoding/json"
	"io"

	"github.com/hullscope/hullscope/internal/wire"
)

// ExportSessionJSON writes a comparison payload as indented JSON.
func ExportSessionJSON(w io.Writer, res *wire.ComparisonResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// ExportSweepJSON writes a sweep payload as indented JSON.
func ExportSweepJSON(w io.Writer, res *wire.PerformanceAnalysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// ExportSweepCSV writes the sweep samples as CSV, one row per input size.
func ExportSweepCSV(w io.Writer, res *wire.PerformanceAnalysis) error {
	return writeSweepCSV(w, res)
}
