package game

import "time"

// DropInterval is the fixed time between automatic drops.
const DropInterval = 1000 * time.Millisecond

// Loop advances a GameState in time. It is driven by frame callbacks of
// varying rate and must only be used from one goroutine.
type Loop struct {
	State    *GameState
	Interval time.Duration

	counter time.Duration
	last    time.Time
}

func NewLoop(gs *GameState) *Loop {
	return &Loop{
		State:    gs,
		Interval: DropInterval,
	}
}

// Frame advances the loop to now. The first frame only records the time.
func (l *Loop) Frame(now time.Time) (DropResult, bool) {
	var dt time.Duration
	if !l.last.IsZero() {
		dt = now.Sub(l.last)
	}
	l.last = now
	return l.Advance(dt)
}

// Advance adds dt to the drop counter and drops the piece once the counter
// passes the interval. It reports whether a drop happened.
func (l *Loop) Advance(dt time.Duration) (DropResult, bool) {
	if dt > 0 {
		l.counter += dt
	}
	if l.counter > l.Interval {
		return l.drop(), true
	}
	return DropResult{}, false
}

// Command applies a player input. Soft drops restart the drop timer.
func (l *Loop) Command(cmd Command) DropResult {
	if cmd == SoftDrop {
		return l.drop()
	}
	l.State.Apply(cmd)
	return DropResult{}
}

// Pending returns the time accumulated toward the next automatic drop.
func (l *Loop) Pending() time.Duration {
	return l.counter
}

func (l *Loop) drop() DropResult {
	res := l.State.Drop()
	l.counter = 0
	return res
}
