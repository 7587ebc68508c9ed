package component

import "github.com/lixenwraith/space-commander/vmath"

// ScanComponent is an expanding radar ring
type ScanComponent struct {
	Origin    vmath.Vec2
	Radius    float64
	MaxRadius float64
	Dying     bool // Spawned by the dying-scanners upgrade
}
