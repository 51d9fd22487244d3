package compute

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/hullscope/hullscope/internal/wire"
)

// ErrUnavailable indicates the provider could not be reached at all, as
// opposed to reaching it and having the request rejected.
var ErrUnavailable = errors.New("compute: provider unavailable")

// Provider runs comparisons, sweeps, and point generation somewhere.
type Provider interface {
	Name() string
	Available() bool
	Compare(ctx context.Context, req wire.CompareRequest) (*wire.ComparisonResult, error)
	Analyze(ctx context.Context, req wire.AnalysisRequest) (*wire.PerformanceAnalysis, error)
	GeneratePoints(ctx context.Context, numPoints, bboxSize int) (*wire.GeneratedPoints, error)
}

// SelectProvider returns a remote provider when baseURL is set and
// answering, else a local one seeded with seed.
func SelectProvider(baseURL string, seed int64) Provider {
	if baseURL != "" {
		remote := NewRemoteProvider(baseURL)
		if remote.Available() {
			return remote
		}
		log.Warnf("compute: %s not answering, using local compute", baseURL)
	}
	return NewLocalProvider(seed)
}
