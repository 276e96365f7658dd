package components

import "github.com/yohamta/donburi"

// DeathData is the death sequence of an entity. It is inactive until the
// entity dies and is reset by a health reset.
type DeathData struct {
	Active         bool
	Elapsed        float64
	CollisionOffAt float64
	RemoveAt       float64 // 0 keeps the entity
	Deactivate     bool
	CollisionOff   bool
	Done           bool
}

var Death = donburi.NewComponentType[DeathData]()
