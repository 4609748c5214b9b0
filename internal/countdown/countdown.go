// Package countdown implements the pausable auto-dismiss timer of a toast.
//
// A Countdown never owns a real timer. Each time it needs one it hands out a
// Schedule whose Tag identifies that timer; Fire only honours the latest tag,
// so pausing, stopping or unmounting invalidates whatever timer is still in
// flight.
package countdown

import "time"

// State is the lifecycle position of a Countdown
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateStopped
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Schedule describes the single pending timeout the caller must arm
type Schedule struct {
	Tag   int
	After time.Duration
}

// Countdown tracks the remaining visible time of one toast
type Countdown struct {
	total     time.Duration
	remaining time.Duration
	startedAt time.Time
	state     State
	tag       int
}

// New creates an idle countdown of the given total duration
func New(total time.Duration) Countdown {
	if total < 0 {
		total = 0
	}
	return Countdown{
		total:     total,
		remaining: total,
	}
}

// Start begins the countdown. It only succeeds from the idle state.
func (c *Countdown) Start(now time.Time) (Schedule, bool) {
	if c.state != StateIdle {
		return Schedule{}, false
	}
	return c.run(now), true
}

// Pause suspends a running countdown, charging the time elapsed since it
// last started against the remaining budget.
func (c *Countdown) Pause(now time.Time) bool {
	if c.state != StateRunning {
		return false
	}
	c.remaining = c.remainingAt(now)
	c.state = StatePaused
	c.tag++
	return true
}

// Resume restarts a paused countdown for exactly the remaining budget
func (c *Countdown) Resume(now time.Time) (Schedule, bool) {
	if c.state != StatePaused {
		return Schedule{}, false
	}
	return c.run(now), true
}

// Stop moves the countdown to its terminal state and invalidates any
// pending timer. Stopping twice is a no-op.
func (c *Countdown) Stop() {
	if c.state == StateStopped {
		return
	}
	c.state = StateStopped
	c.remaining = 0
	c.tag++
}

// Fire reports whether the timer identified by tag is the live one. On true
// the countdown has expired and is stopped.
func (c *Countdown) Fire(tag int) bool {
	if c.state != StateRunning || tag != c.tag {
		return false
	}
	c.Stop()
	return true
}

// Remaining returns the visible time left at now
func (c Countdown) Remaining(now time.Time) time.Duration {
	switch c.state {
	case StateRunning:
		return c.remainingAt(now)
	case StateStopped:
		return 0
	default:
		return c.remaining
	}
}

// Fraction returns remaining/total in [0, 1]; 1 means untouched
func (c Countdown) Fraction(now time.Time) float64 {
	if c.total <= 0 {
		return 0
	}
	return float64(c.Remaining(now)) / float64(c.total)
}

// State returns the current state
func (c Countdown) State() State {
	return c.state
}

// Tag returns the tag of the timer currently allowed to fire
func (c Countdown) Tag() int {
	return c.tag
}

// Total returns the configured duration
func (c Countdown) Total() time.Duration {
	return c.total
}

func (c *Countdown) run(now time.Time) Schedule {
	c.state = StateRunning
	c.startedAt = now
	c.tag++
	return Schedule{Tag: c.tag, After: c.remaining}
}

func (c Countdown) remainingAt(now time.Time) time.Duration {
	elapsed := now.Sub(c.startedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	left := c.remaining - elapsed
	if left < 0 {
		return 0
	}
	return left
}
