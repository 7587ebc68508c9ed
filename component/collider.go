package component

import "github.com/lixenwraith/space-commander/core"

// ColliderComponent registers a circular body with the physics oracle
// Inactive colliders stay registered but never report overlaps
type ColliderComponent struct {
	Kind   core.Kind
	Radius float64
	Active bool
}
