package core

// Kind classifies a collider for overlap dispatch
type Kind uint8

const (
	KindNone Kind = iota
	KindPlanet
	KindEnemy
	KindGhost
	KindMissile
	KindScan
	KindShield
	kindCount
)

// KindCount is the number of collider kinds, sized for dispatch tables
const KindCount = int(kindCount)

var kindNames = [...]string{
	KindNone:    "none",
	KindPlanet:  "planet",
	KindEnemy:   "enemy",
	KindGhost:   "ghost",
	KindMissile: "missile",
	KindScan:    "scan",
	KindShield:  "shield",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Side is a border zone of the play field
type Side uint8

const (
	SideLeft Side = iota
	SideTop
	SideRight
	SideBottom
)

// SideCount is the number of border zones
const SideCount = 4

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	}
	return "unknown"
}

// KillCause records what marked an enemy for removal
type KillCause uint8

const (
	CauseNone KillCause = iota
	CauseMissile
	CauseShield
	CausePlanet
)

// Scores reports whether a kill of this cause awards points
// Shield kills are silent
func (c KillCause) Scores() bool {
	return c == CauseMissile
}
