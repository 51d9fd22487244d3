package playback

import "time"

// Scheduler arms and disarms the single repeating timer a controller uses.
// Start replaces any previous arm; Stop is idempotent.
type Scheduler interface {
	Start(interval time.Duration, fn func())
	Stop()
}

// ManualScheduler is a Scheduler for event loops that own their timing, and
// for tests. It never fires on its own: the owner calls Fire for each tick
// it wants delivered. Serial increments on every Start so owners can tell
// a fresh arm from the one they scheduled a tick for.
type ManualScheduler struct {
	interval time.Duration
	fn       func()
	running  bool
	serial   int
}

func (s *ManualScheduler) Start(interval time.Duration, fn func()) {
	s.interval = interval
	s.fn = fn
	s.running = true
	s.serial++
}

func (s *ManualScheduler) Stop() {
	s.running = false
	s.fn = nil
}

// Fire delivers one tick if the scheduler is armed.
func (s *ManualScheduler) Fire() {
	if s.running && s.fn != nil {
		s.fn()
	}
}

func (s *ManualScheduler) Running() bool { return s.running }

func (s *ManualScheduler) Serial() int { return s.serial }

func (s *ManualScheduler) Interval() time.Duration { return s.interval }
