// Package physics is the overlap oracle consumed by collision adjudication
// Bodies are circles; the oracle answers "A overlaps B" and which contacts began this step
package physics

import (
	"sort"

	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/vmath"
)

// Body is a circular rigid body mirrored from entity components
type Body struct {
	Kind   core.Kind
	Pos    vmath.Vec2
	Radius float64
	Active bool
}

// Contact is an overlapping pair, ordered so A's kind <= B's kind
type Contact struct {
	A, B         core.Entity
	KindA, KindB core.Kind
	// Started is true when the pair did not overlap on the previous step
	Started bool
}

type pairKey struct {
	a, b core.Entity
}

func makeKey(a, b core.Entity) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// Oracle stores bodies and resolves overlaps once per Step
type Oracle struct {
	bodies   map[core.Entity]Body
	previous map[pairKey]struct{}
	current  map[pairKey]struct{}
	contacts []Contact

	// scratch, reused across steps
	ids []core.Entity
}

// NewOracle creates an empty oracle
func NewOracle() *Oracle {
	return &Oracle{
		bodies:   make(map[core.Entity]Body),
		previous: make(map[pairKey]struct{}),
		current:  make(map[pairKey]struct{}),
	}
}

// Set creates or updates the body for e
func (o *Oracle) Set(e core.Entity, b Body) {
	o.bodies[e] = b
}

// Get returns the body for e
func (o *Oracle) Get(e core.Entity) (Body, bool) {
	b, ok := o.bodies[e]
	return b, ok
}

// Remove deletes e; its pairs stop counting toward first-contact history
func (o *Oracle) Remove(e core.Entity) {
	delete(o.bodies, e)
}

// Clear drops every body and all contact history
func (o *Oracle) Clear() {
	clear(o.bodies)
	clear(o.previous)
	clear(o.current)
	o.contacts = o.contacts[:0]
}

// Len returns the number of registered bodies
func (o *Oracle) Len() int {
	return len(o.bodies)
}

// Step recomputes every overlapping pair of active bodies
// Pairs of the same kind are skipped
func (o *Oracle) Step() {
	o.previous, o.current = o.current, o.previous
	clear(o.current)
	o.contacts = o.contacts[:0]

	o.ids = o.ids[:0]
	for e, b := range o.bodies {
		if b.Active {
			o.ids = append(o.ids, e)
		}
	}
	sort.Slice(o.ids, func(i, j int) bool { return o.ids[i] < o.ids[j] })

	for i := 0; i < len(o.ids); i++ {
		ea := o.ids[i]
		ba := o.bodies[ea]
		for j := i + 1; j < len(o.ids); j++ {
			eb := o.ids[j]
			bb := o.bodies[eb]
			if ba.Kind == bb.Kind {
				continue
			}
			if !vmath.CirclesOverlap(ba.Pos, ba.Radius, bb.Pos, bb.Radius) {
				continue
			}

			key := makeKey(ea, eb)
			o.current[key] = struct{}{}
			_, seen := o.previous[key]

			c := Contact{A: ea, B: eb, KindA: ba.Kind, KindB: bb.Kind, Started: !seen}
			if c.KindA > c.KindB {
				c.A, c.B = c.B, c.A
				c.KindA, c.KindB = c.KindB, c.KindA
			}
			o.contacts = append(o.contacts, c)
		}
	}
}

// Contacts returns the pairs found by the last Step in deterministic order
// The slice is reused by the next Step
func (o *Oracle) Contacts() []Contact {
	return o.contacts
}

// Overlaps reports whether a and b currently overlap
// Uses live body positions, not the last Step
func (o *Oracle) Overlaps(a, b core.Entity) bool {
	ba, ok := o.bodies[a]
	if !ok || !ba.Active {
		return false
	}
	bb, ok := o.bodies[b]
	if !ok || !bb.Active {
		return false
	}
	return vmath.CirclesOverlap(ba.Pos, ba.Radius, bb.Pos, bb.Radius)
}
