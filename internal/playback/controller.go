package playback

import (
	"time"

	"github.com/hullscope/hullscope/internal/trace"
)

// State of a controller.
type State int

const (
	// Idle means no playback has happened since the last Load.
	Idle State = iota
	// Paused means the cursor is parked somewhere in the trace.
	Paused
	// Playing means a timer is armed and ticks advance the cursor.
	Playing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}

// DefaultInterval is the tick interval used when none is configured.
const DefaultInterval = 400 * time.Millisecond

// Controller is the replay cursor over one or two traces. When two traces
// of different lengths are loaded the cursor runs to the longer one; the
// projector clamps the shorter trace, so it holds its completed picture
// while the longer one finishes.
type Controller struct {
	sched    Scheduler
	interval time.Duration

	total int
	pos   int
	state State
	gen   uint64
}

func NewController(sched Scheduler, interval time.Duration) *Controller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Controller{sched: sched, interval: interval}
}

// Load rebinds the controller to a new set of traces: the cursor covers
// max(len) steps. Any armed timer is invalidated and the controller
// returns to Idle at position 0.
func (c *Controller) Load(traces ...trace.Trace) {
	c.disarm()
	c.total = 0
	for _, tr := range traces {
		if tr.Len() > c.total {
			c.total = tr.Len()
		}
	}
	c.pos = 0
	c.state = Idle
}

// Play toggles playback. Starting from the last position restarts from the
// beginning. With nothing loaded it does nothing.
func (c *Controller) Play() {
	if c.total == 0 {
		return
	}
	if c.state == Playing {
		c.Pause()
		return
	}
	if c.pos >= c.total-1 {
		c.pos = 0
	}
	c.arm()
	c.state = Playing
}

// Pause disarms the timer and parks the cursor where it is.
func (c *Controller) Pause() {
	if c.total == 0 {
		return
	}
	c.disarm()
	c.state = Paused
}

// Reset parks the cursor at position 0.
func (c *Controller) Reset() {
	c.disarm()
	c.pos = 0
	if c.total == 0 {
		c.state = Idle
		return
	}
	c.state = Paused
}

// StepForward advances one step, clamped to the end. It does not change
// the playback state, so it is safe mid-playback.
func (c *Controller) StepForward() {
	if c.total == 0 {
		return
	}
	if c.pos < c.total-1 {
		c.pos++
	}
}

// StepBackward moves one step back, clamped to 0.
func (c *Controller) StepBackward() {
	if c.pos > 0 {
		c.pos--
	}
}

// Seek jumps to pos, clamped into the valid range. Out-of-range requests
// are not errors.
func (c *Controller) Seek(pos int) {
	if c.total == 0 {
		c.pos = 0
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos > c.total-1 {
		pos = c.total - 1
	}
	c.pos = pos
}

// SetSpeed changes the tick interval. If playback is running the timer is
// re-armed at the new rate. Non-positive intervals are ignored.
func (c *Controller) SetSpeed(interval time.Duration) {
	if interval <= 0 {
		return
	}
	c.interval = interval
	if c.state == Playing {
		c.arm()
	}
}

// Close releases the timer. The controller must not be used afterwards.
func (c *Controller) Close() {
	c.disarm()
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Playing() bool { return c.state == Playing }

func (c *Controller) Position() int { return c.pos }

func (c *Controller) MaxSteps() int { return c.total }

func (c *Controller) Interval() time.Duration { return c.interval }

// AtEnd reports whether the cursor sits on the last step.
func (c *Controller) AtEnd() bool {
	return c.total > 0 && c.pos == c.total-1
}

func (c *Controller) arm() {
	c.sched.Stop()
	c.gen++
	gen := c.gen
	c.sched.Start(c.interval, func() { c.tick(gen) })
}

func (c *Controller) disarm() {
	c.gen++
	c.sched.Stop()
}

// tick advances the cursor by one. Ticks carrying a stale generation come
// from an arm that has since been replaced or stopped; they are dropped.
func (c *Controller) tick(gen uint64) {
	if gen != c.gen || c.state != Playing {
		return
	}
	next := c.pos + 1
	if next >= c.total {
		c.pos = c.total - 1
		c.disarm()
		c.state = Paused
		return
	}
	c.pos = next
}
