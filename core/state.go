package core

// GameState is the coarse state owned by the game-state collaborator
type GameState uint8

const (
	StateMainMenu GameState = iota
	StatePlaying
	StatePause
	StateLose
)

func (s GameState) String() string {
	switch s {
	case StateMainMenu:
		return "main-menu"
	case StatePlaying:
		return "playing"
	case StatePause:
		return "pause"
	case StateLose:
		return "lose"
	}
	return "unknown"
}

// Action is a resource-gated player action
type Action uint8

const (
	ActionMissile Action = iota
	ActionScan
	ActionShield
)

func (a Action) String() string {
	switch a {
	case ActionMissile:
		return "missile"
	case ActionScan:
		return "scan"
	case ActionShield:
		return "shield"
	}
	return "unknown"
}
