// Package trace models recorded algorithm executions as flat sequences of
// tagged steps.
//
// A [Step] is a tagged union: the [Kind] field selects the variant and the
// payload fields that apply to it. Variants cover both hull algorithms:
//
//   - KindCandidate, KindChosen: gift-wrapping probes and selections
//   - KindPush, KindPop: sort-and-scan stack mutations
//   - KindFinal: the completed hull
//
// Steps marshal to and from the wire step objects produced by the compute
// boundary. Decoding is strict about the tag: a step whose type is not one
// of the defined kinds is rejected. Payload fields are optional on the wire
// and stay optional here; consumers treat absent fields as "nothing to
// show" rather than errors.
//
// A [Trace] is an immutable ordered sequence of steps for one algorithm.
// Replay and projection never mutate a trace; they only read positions
// within it.
package trace
