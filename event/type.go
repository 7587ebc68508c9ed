package event

// EventType represents the type of game event
type EventType int

const (
	// === Inbound Action Event ===

	// EventFireMissile requests a missile strike at a point
	// Trigger: Input collaborator
	// Consumer: MissileSystem | Payload: *FireMissilePayload
	EventFireMissile EventType = iota

	// EventScanRequest requests a radar scan from the planet
	// Trigger: Input collaborator, auto-scan timer
	// Consumer: ScanSystem | Payload: *ScanRequestPayload
	EventScanRequest

	// EventShieldToggle switches the shield on or off
	// Trigger: Input collaborator
	// Consumer: ShieldSystem | Payload: *ShieldTogglePayload
	EventShieldToggle

	// EventUpgradeRequest asks to buy an upgrade with current points
	// Trigger: Input collaborator
	// Consumer: ScoreSystem | Payload: *UpgradeRequestPayload
	EventUpgradeRequest

	// EventAutoScanConfig changes auto-scan enablement and interval
	// Trigger: Input collaborator
	// Consumer: ScanSystem | Payload: *AutoScanConfigPayload
	EventAutoScanConfig

	// EventRestart resets the run to its initial condition
	// Trigger: Input collaborator, entering main menu
	// Consumer: RestartSystem | Payload: nil
	EventRestart

	// === Internal Event ===

	// EventScore credits points for a kill
	// Trigger: CleanupSystem
	// Consumer: ScoreSystem | Payload: *ScorePayload
	EventScore

	// === Outbound Notification ===
	// Forwarded to presentation and audio listeners after the tick

	// EventScoreChanged reports new score pools
	// Trigger: ScoreSystem, RestartSystem | Payload: *ScoreChangedPayload
	EventScoreChanged

	// EventEnemyKilled reports a missile kill location
	// Trigger: CollisionSystem
	// Consumer: ScanSystem (dying scanners) | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventPlanetDamaged reports an enemy reaching the planet
	// Trigger: CleanupSystem | Payload: *PlanetDamagedPayload
	EventPlanetDamaged

	// EventEnemySpawned reports the border side of a new enemy
	// Trigger: SpawnerSystem
	// Consumer: WarningSystem | Payload: *EnemySpawnedPayload
	EventEnemySpawned

	// EventGameOver reports the end of a run
	// Trigger: CleanupSystem | Payload: *GameOverPayload
	EventGameOver

	// EventStateRequest asks the game-state collaborator for a transition
	// Trigger: CleanupSystem (lose) | Payload: *StateRequestPayload
	EventStateRequest

	// EventActionRejected reports an action refused for lack of energy
	// Trigger: Missile/Scan/Shield systems | Payload: *ActionRejectedPayload
	EventActionRejected

	// EventUpgradeResult reports a purchase attempt outcome
	// Trigger: ScoreSystem | Payload: *UpgradeResultPayload
	EventUpgradeResult

	// EventDifficultyRaised reports a director growth tick
	// Trigger: DirectorSystem | Payload: *DifficultyPayload
	EventDifficultyRaised

	// EventGameReset reports a completed restart
	// Trigger: RestartSystem | Payload: nil
	EventGameReset

	eventTypeCount
)

// EventTypeCount sizes per-type tables
const EventTypeCount = int(eventTypeCount)

var eventNames = [...]string{
	EventFireMissile:      "fire-missile",
	EventScanRequest:      "scan-request",
	EventShieldToggle:     "shield-toggle",
	EventUpgradeRequest:   "upgrade-request",
	EventAutoScanConfig:   "auto-scan-config",
	EventRestart:          "restart",
	EventScore:            "score",
	EventScoreChanged:     "score-changed",
	EventEnemyKilled:      "enemy-killed",
	EventPlanetDamaged:    "planet-damaged",
	EventEnemySpawned:     "enemy-spawned",
	EventGameOver:         "game-over",
	EventStateRequest:     "state-request",
	EventActionRejected:   "action-rejected",
	EventUpgradeResult:    "upgrade-result",
	EventDifficultyRaised: "difficulty-raised",
	EventGameReset:        "game-reset",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Outbound reports whether t is delivered to external listeners
func (t EventType) Outbound() bool {
	return t >= EventScoreChanged && t < eventTypeCount
}

// GameEvent is a single queued event stamped with the tick that produced it
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
