// Package timer provides named countdown timers driven by elapsed game time.
package timer

import "time"

// ID names a timer inside a Bank. Owners declare their own constants.
type ID int

// Bank is a set of named countdowns. The zero value is ready to use.
// A timer that was never set, or was cleared, counts as elapsed.
type Bank struct {
	remaining map[ID]time.Duration
}

// Set (re)arms a timer. Non-positive durations leave it elapsed.
func (b *Bank) Set(id ID, d time.Duration) {
	if b.remaining == nil {
		b.remaining = make(map[ID]time.Duration)
	}
	b.remaining[id] = d
}

// Clear forces a timer to the elapsed state.
func (b *Bank) Clear(id ID) {
	if b.remaining == nil {
		return
	}
	b.remaining[id] = 0
}

// Tick subtracts dt from every live timer. Elapsed timers are left alone so
// they never run further negative than one tick.
func (b *Bank) Tick(dt time.Duration) {
	for id, r := range b.remaining {
		if r > 0 {
			b.remaining[id] = r - dt
		}
	}
}

// Remaining returns the time left, which may be zero or negative once elapsed.
func (b *Bank) Remaining(id ID) time.Duration {
	return b.remaining[id]
}

// Elapsed reports remaining <= 0.
func (b *Bank) Elapsed(id ID) bool {
	return b.remaining[id] <= 0
}

// Active is the negation of Elapsed.
func (b *Bank) Active(id ID) bool {
	return !b.Elapsed(id)
}
