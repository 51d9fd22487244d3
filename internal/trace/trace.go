package trace

// Trace is an immutable step sequence for one algorithm run. The zero value
// is an empty trace.
type Trace struct {
	algo  Algorithm
	steps []Step
}

// New copies steps into a Trace. Callers must not mutate the payload slices
// of steps they passed in afterwards.
func New(algo Algorithm, steps []Step) Trace {
	c := make([]Step, len(steps))
	copy(c, steps)
	return Trace{algo: algo, steps: c}
}

func (t Trace) Algo() Algorithm { return t.algo }

func (t Trace) Len() int { return len(t.steps) }

func (t Trace) Empty() bool { return len(t.steps) == 0 }

// At returns the step at index i. The index must be in [0, Len).
func (t Trace) At(i int) Step { return t.steps[i] }

// Steps returns a copy of the step sequence.
func (t Trace) Steps() []Step {
	c := make([]Step, len(t.steps))
	copy(c, t.steps)
	return c
}

// Final returns the trailing final step, if the trace ends with one.
func (t Trace) Final() (Step, bool) {
	if n := len(t.steps); n > 0 && t.steps[n-1].Kind == KindFinal {
		return t.steps[n-1], true
	}
	return Step{}, false
}
