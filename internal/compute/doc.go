// Package compute abstracts where comparison work runs.
//
// Two providers serve the same boundary:
//
//   - local: in-process algorithm runs, always available
//   - remote: a running hullscope server reached over HTTP
//
// # Provider Selection
//
// Callers pick a provider once and hold it:
//
//	p := compute.SelectProvider(remoteURL, 0)
//	result, err := p.Compare(ctx, req)
//
// SelectProvider probes the remote address first and falls back to local
// computation when nothing answers.
package compute
