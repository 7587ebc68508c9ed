package economy

import "time"

// Number covers the scalar kinds a tunable stat can hold
type Number interface {
	~int | ~int64 | ~float64
}

// Stat is an upgradable value with a per-purchase step and a hard limit
// Rising stats grow toward Limit; falling stats (intervals) shrink toward it
type Stat[T Number] struct {
	Current T
	Step    T
	Limit   T
	Cost    int
	Falling bool
}

// Maxed reports whether another purchase would have no effect
func (s Stat[T]) Maxed() bool {
	if s.Falling {
		return s.Current <= s.Limit
	}
	return s.Current >= s.Limit
}

// apply moves Current one step toward Limit without passing it
func (s *Stat[T]) apply() {
	if s.Falling {
		s.Current = max(s.Current-s.Step, s.Limit)
		return
	}
	s.Current = min(s.Current+s.Step, s.Limit)
}

func rising[T Number](current, step, limit T, cost int) Stat[T] {
	return Stat[T]{Current: current, Step: step, Limit: limit, Cost: cost}
}

func falling(current, step, floor time.Duration, cost int) Stat[time.Duration] {
	return Stat[time.Duration]{Current: current, Step: step, Limit: floor, Cost: cost, Falling: true}
}
