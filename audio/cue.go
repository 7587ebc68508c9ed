// Package audio turns outbound simulation notifications into short synthesized cues
package audio

import (
	"github.com/lixenwraith/space-commander/event"
)

// Cue is a sound effect
type Cue int

const (
	CueKill      Cue = iota // Missile kill
	CueDamage               // Planet hit
	CueSpawn                // Wave arrival
	CueGameOver             // Planet destroyed
	CueRejected             // Not enough energy
	CueUpgrade              // Purchase succeeded
	CueNoUpgrade            // Purchase refused
	CueMilestone            // Wave size doubled
	cueCount
)

var cueNames = [...]string{
	CueKill:      "kill",
	CueDamage:    "damage",
	CueSpawn:     "spawn",
	CueGameOver:  "game-over",
	CueRejected:  "rejected",
	CueUpgrade:   "upgrade",
	CueNoUpgrade: "no-upgrade",
	CueMilestone: "milestone",
}

func (c Cue) String() string {
	if c >= 0 && c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// CueFor maps a notification to its cue
func CueFor(ev event.GameEvent) (Cue, bool) {
	switch ev.Type {
	case event.EventEnemyKilled:
		return CueKill, true
	case event.EventPlanetDamaged:
		return CueDamage, true
	case event.EventEnemySpawned:
		return CueSpawn, true
	case event.EventGameOver:
		return CueGameOver, true
	case event.EventActionRejected:
		return CueRejected, true
	case event.EventUpgradeResult:
		if p, ok := ev.Payload.(*event.UpgradeResultPayload); ok && p.OK {
			return CueUpgrade, true
		}
		return CueNoUpgrade, true
	case event.EventDifficultyRaised:
		if p, ok := ev.Payload.(*event.DifficultyPayload); ok && p.Milestone {
			return CueMilestone, true
		}
	}
	return 0, false
}
