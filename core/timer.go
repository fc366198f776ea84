package core

import "time"

// Timer is an explicit countdown advanced once per tick by its owner
// Remaining never goes negative; a stopped timer ignores Tick
type Timer struct {
	Remaining time.Duration
	Running   bool
}

// Start arms the timer for d, a zero duration still runs for one Tick
func (t *Timer) Start(d time.Duration) {
	if d < 0 {
		d = 0
	}
	t.Remaining = d
	t.Running = true
}

// Stop disarms the timer and clears the remaining time
func (t *Timer) Stop() {
	t.Remaining = 0
	t.Running = false
}

// Tick advances by dt
// Returns true on the tick the timer completes, with the part of dt left
// over after completion so callers can carry it into a follow-up timer
func (t *Timer) Tick(dt time.Duration) (completed bool, overflow time.Duration) {
	if !t.Running {
		return false, 0
	}
	t.Remaining -= dt
	if t.Remaining > 0 {
		return false, 0
	}
	overflow = -t.Remaining
	t.Remaining = 0
	t.Running = false
	return true, overflow
}

// Elapsed returns how much of total has already run down
func (t *Timer) Elapsed(total time.Duration) time.Duration {
	if !t.Running {
		return 0
	}
	return total - t.Remaining
}
