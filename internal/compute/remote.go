package compute

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hullscope/hullscope/internal/wire"
)

// RemoteProvider forwards requests to a hullscope server.
type RemoteProvider struct {
	baseURL string
	client  *http.Client
}

// NewRemoteProvider points at a server base URL such as
// http://localhost:8000. The generous client timeout is a backstop for
// large sweeps; callers bound individual requests through ctx.
func NewRemoteProvider(baseURL string) *RemoteProvider {
	return &RemoteProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Minute},
	}
}

func (p *RemoteProvider) Name() string { return "remote" }

// Available probes the health endpoint with a short deadline.
func (p *RemoteProvider) Available() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (p *RemoteProvider) Compare(ctx context.Context, req wire.CompareRequest) (*wire.ComparisonResult, error) {
	var out wire.ComparisonResult
	if err := p.post(ctx, "/api/convex-hull/compare", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *RemoteProvider) Analyze(ctx context.Context, req wire.AnalysisRequest) (*wire.PerformanceAnalysis, error) {
	var out wire.PerformanceAnalysis
	if err := p.post(ctx, "/api/convex-hull/performance-analysis", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *RemoteProvider) GeneratePoints(ctx context.Context, numPoints, bboxSize int) (*wire.GeneratedPoints, error) {
	path := fmt.Sprintf("/api/convex-hull/generate-points/%d", numPoints)
	if bboxSize > 0 {
		path += fmt.Sprintf("?bbox_size=%d", bboxSize)
	}
	var out wire.GeneratedPoints
	if err := p.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *RemoteProvider) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return p.do(req, out)
}

func (p *RemoteProvider) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return err
	}
	return p.do(req, out)
}

func (p *RemoteProvider) do(req *http.Request, out any) error {
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("compute: %s %s: %s", req.Method, req.URL.Path, serverMessage(resp))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("compute: decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

// serverMessage digs the error text out of a non-200 response.
func serverMessage(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	if len(body) > 0 {
		return fmt.Sprintf("%s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return resp.Status
}
