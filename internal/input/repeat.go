package input

import "time"

// Default throttle windows.
const (
	DefaultFastRepeat = 140 * time.Millisecond
	DefaultSlowRepeat = 180 * time.Millisecond
)

// RepeatGate limits held-direction navigation to one move per window. The
// fast window applies to d-pad buttons, the slow one to analog input.
//
// Times passed to Allow must come from a monotonic source; time.Now values
// carry a monotonic reading and compare correctly across wall-clock jumps.
type RepeatGate struct {
	fast time.Duration
	slow time.Duration
	next time.Time
}

// NewRepeatGate returns a gate with the given windows. Non-positive values
// fall back to the defaults.
func NewRepeatGate(fast, slow time.Duration) *RepeatGate {
	if fast <= 0 {
		fast = DefaultFastRepeat
	}
	if slow <= 0 {
		slow = DefaultSlowRepeat
	}
	return &RepeatGate{fast: fast, slow: slow}
}

// Allow reports whether a move may fire at now. On success the next eligible
// time is pushed out by the fast or slow window.
func (g *RepeatGate) Allow(now time.Time, digital bool) bool {
	if now.Before(g.next) {
		return false
	}
	g.next = now.Add(g.window(digital))
	return true
}

// Reset makes the gate immediately eligible again.
func (g *RepeatGate) Reset() {
	g.next = time.Time{}
}

func (g *RepeatGate) window(digital bool) time.Duration {
	if digital {
		return g.fast
	}
	return g.slow
}
