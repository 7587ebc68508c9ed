package system

import (
	"github.com/lixenwraith/space-commander/component"
	"github.com/lixenwraith/space-commander/core"
	"github.com/lixenwraith/space-commander/engine"
	"github.com/lixenwraith/space-commander/vmath"
)

// SpawnPlanet creates the player planet at the origin and records it as the player body
func SpawnPlanet(w *engine.World) core.Entity {
	e := w.CreateEntity()
	w.Components.Kinetic.Set(e, component.KineticComponent{})
	w.Components.Collider.Set(e, component.ColliderComponent{
		Kind:   core.KindPlanet,
		Radius: w.Resource.Tuning.Player.PlanetRadius,
		Active: true,
	})
	w.Components.Planet.Set(e, component.PlanetComponent{})
	w.Components.Visibility.Set(e, component.VisibilityComponent{Visible: true})
	w.Resource.PlayerBody = e
	return e
}

// playerPos returns the planet position, origin if absent
func playerPos(w *engine.World) vmath.Vec2 {
	if k, ok := w.Components.Kinetic.Get(w.Resource.PlayerBody); ok {
		return k.Pos
	}
	return vmath.Vec2{}
}

// spawnEnemy creates an enemy homing on target with its hidden ghost at the same point
func spawnEnemy(w *engine.World, pos, target vmath.Vec2, speed float64, side core.Side) (enemy, ghost core.Entity) {
	t := w.Resource.Tuning.Difficulty
	enemy = w.CreateEntity()
	ghost = w.CreateEntity()

	w.Components.Kinetic.Set(enemy, component.KineticComponent{
		Pos: pos,
		Vel: vmath.Toward(pos, target, speed),
	})
	w.Components.Collider.Set(enemy, component.ColliderComponent{Kind: core.KindEnemy, Radius: t.EnemyRadius, Active: true})
	w.Components.Enemy.Set(enemy, component.EnemyComponent{Ghost: ghost, Side: side})
	w.Components.Visibility.Set(enemy, component.VisibilityComponent{})

	w.Components.Kinetic.Set(ghost, component.KineticComponent{Pos: pos})
	w.Components.Collider.Set(ghost, component.ColliderComponent{Kind: core.KindGhost, Radius: t.GhostRadius, Active: true})
	w.Components.Ghost.Set(ghost, component.GhostComponent{Enemy: enemy})
	w.Components.Visibility.Set(ghost, component.VisibilityComponent{})
	return enemy, ghost
}

// spawnMissile creates a missile flying from origin to target and its aim marker
func spawnMissile(w *engine.World, origin, target vmath.Vec2, speed float64, lead bool) (missile, marker core.Entity) {
	missile = w.CreateEntity()
	marker = w.CreateEntity()

	w.Components.Kinetic.Set(missile, component.KineticComponent{
		Pos: origin,
		Vel: vmath.Toward(origin, target, speed),
	})
	w.Components.Collider.Set(missile, component.ColliderComponent{
		Kind:   core.KindMissile,
		Radius: w.Resource.Tuning.Missile.Radius,
		Active: true,
	})
	w.Components.Missile.Set(missile, component.MissileComponent{
		Target: target,
		Marker: marker,
		Lead:   lead,
	})
	w.Components.Visibility.Set(missile, component.VisibilityComponent{Visible: true})

	w.Components.Kinetic.Set(marker, component.KineticComponent{Pos: target})
	w.Components.Marker.Set(marker, component.MarkerComponent{Missile: missile})
	w.Components.Visibility.Set(marker, component.VisibilityComponent{Visible: true})
	return missile, marker
}

// spawnScan creates a radar ring at origin
func spawnScan(w *engine.World, origin vmath.Vec2, maxRadius float64, dying bool) core.Entity {
	initial := w.Resource.Tuning.Scan.InitialRadius
	e := w.CreateEntity()
	w.Components.Kinetic.Set(e, component.KineticComponent{Pos: origin})
	w.Components.Collider.Set(e, component.ColliderComponent{Kind: core.KindScan, Radius: initial, Active: true})
	w.Components.Scan.Set(e, component.ScanComponent{
		Origin:    origin,
		Radius:    initial,
		MaxRadius: maxRadius,
		Dying:     dying,
	})
	w.Components.Visibility.Set(e, component.VisibilityComponent{Visible: true})
	return e
}

// markDestroyed tags an enemy for cleanup
// A missile kill outranks a shield kill, which outranks planet contact
func markDestroyed(w *engine.World, enemy core.Entity, cause core.KillCause) bool {
	if !w.Components.Enemy.Has(enemy) {
		return false
	}
	if d, ok := w.Components.Destroyed.Get(enemy); ok && causeRank(d.Cause) >= causeRank(cause) {
		return false
	}
	w.Components.Destroyed.Set(enemy, component.DestroyedComponent{Cause: cause})
	return true
}

func causeRank(c core.KillCause) int {
	switch c {
	case core.CauseMissile:
		return 3
	case core.CauseShield:
		return 2
	case core.CausePlanet:
		return 1
	}
	return 0
}
