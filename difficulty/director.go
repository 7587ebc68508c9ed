package difficulty

import "time"

// Director fires State.Tick on a variable-rate timer
// The next fire time is re-armed from the wave interval current after each firing
type Director struct {
	State *State
	next  time.Duration
}

// NewDirector arms the first firing one wave interval after start
func NewDirector(s *State) *Director {
	return &Director{State: s, next: s.WaveInterval}
}

// NextFire returns the elapsed time at which the director fires next
func (d *Director) NextFire() time.Duration {
	return d.next
}

// Advance fires every tick due at elapsed, re-reading the interval after each
// earned is sampled once per call
// Returns the number of firings and whether any doubled the wave size
func (d *Director) Advance(elapsed time.Duration, earned int) (fired int, doubled bool) {
	for elapsed >= d.next {
		if d.State.Tick(earned) {
			doubled = true
		}
		fired++
		d.next += d.State.WaveInterval
	}
	return fired, doubled
}

// Reset swaps in a fresh state and re-arms relative to elapsed
func (d *Director) Reset(s *State, elapsed time.Duration) {
	d.State = s
	d.next = elapsed + s.WaveInterval
}
