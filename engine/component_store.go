package engine

import "github.com/lixenwraith/space-commander/component"

// ComponentStore holds every typed component store of the world
// Systems copy it once at construction; the pointers never change
type ComponentStore struct {
	Kinetic  *Store[component.KineticComponent]
	Collider *Store[component.ColliderComponent]

	Planet *Store[component.PlanetComponent]
	Enemy  *Store[component.EnemyComponent]
	Ghost  *Store[component.GhostComponent]

	Visibility *Store[component.VisibilityComponent]
	Reveal     *Store[component.RevealComponent]
	Scanned    *Store[component.ScannedComponent]
	Destroyed  *Store[component.DestroyedComponent]

	Missile *Store[component.MissileComponent]
	Marker  *Store[component.MarkerComponent]
	Scan    *Store[component.ScanComponent]
	Shield  *Store[component.ShieldComponent]
}

func newComponentStore() (ComponentStore, []remover) {
	cs := ComponentStore{
		Kinetic:    NewStore[component.KineticComponent](),
		Collider:   NewStore[component.ColliderComponent](),
		Planet:     NewStore[component.PlanetComponent](),
		Enemy:      NewStore[component.EnemyComponent](),
		Ghost:      NewStore[component.GhostComponent](),
		Visibility: NewStore[component.VisibilityComponent](),
		Reveal:     NewStore[component.RevealComponent](),
		Scanned:    NewStore[component.ScannedComponent](),
		Destroyed:  NewStore[component.DestroyedComponent](),
		Missile:    NewStore[component.MissileComponent](),
		Marker:     NewStore[component.MarkerComponent](),
		Scan:       NewStore[component.ScanComponent](),
		Shield:     NewStore[component.ShieldComponent](),
	}
	all := []remover{
		cs.Kinetic, cs.Collider, cs.Planet, cs.Enemy, cs.Ghost,
		cs.Visibility, cs.Reveal, cs.Scanned, cs.Destroyed,
		cs.Missile, cs.Marker, cs.Scan, cs.Shield,
	}
	return cs, all
}
