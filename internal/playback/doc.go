// Package playback drives replay positions through a trace under a timer.
//
// The [Controller] is a passive state machine: it never spawns goroutines
// and is not safe for concurrent use. It is designed to live inside a
// single-threaded event loop (a TUI update function) that delivers key
// presses and timer ticks one at a time. All timing is delegated to an
// injected [Scheduler], so tests drive virtual ticks and the TUI adapts
// its own frame timer.
//
// At most one armed timer exists per controller. Every operation that
// stops or restarts playback first invalidates the previous arm by bumping
// an internal generation counter; a tick from a superseded arm is
// recognized by its stale generation and ignored.
package playback
