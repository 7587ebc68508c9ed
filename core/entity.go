package core

// Entity is a stable integer handle into the world arena
// Zero is never issued and marks an absent reference
type Entity uint64

// NoEntity is the absent reference
const NoEntity Entity = 0

// Valid reports whether e refers to an issued entity slot
func (e Entity) Valid() bool {
	return e != NoEntity
}
