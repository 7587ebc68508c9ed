package engine

import "github.com/lixenwraith/space-commander/config"

// NewTestWorld creates a world with default tuning and a fixed random source
func NewTestWorld() *World {
	return NewWorld(NewResource(config.Default(), &SequenceRandom{}))
}
