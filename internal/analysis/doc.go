// Package analysis computes comparative statistics over benchmark sweeps.
//
// A [Series] holds index-aligned samples from one sweep: input sizes, the
// measured wall time of each algorithm at that size, and the hull sizes
// they produced. From a series the package derives win counts, per-series
// aggregates, and the first crossover point where the faster algorithm
// flips.
//
// Everything here is pure arithmetic over an immutable series; nothing
// runs algorithms or touches the network.
package analysis
