package component

import "github.com/lixenwraith/space-commander/vmath"

// KineticComponent is world position plus constant velocity in units per second
type KineticComponent struct {
	Pos vmath.Vec2
	Vel vmath.Vec2
}
