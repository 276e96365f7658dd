package components

import (
	"math/rand"

	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ArenaData is the arena singleton: bounds, centre and the pickup spawner.
type ArenaData struct {
	Center     gamemath.Vec3
	MinX, MaxX float64
	MinZ, MaxZ float64
	FloorY     float64

	SpawnTimer float64
	Rand       *rand.Rand
}

// Contains reports whether p lies within the arena bounds grown by margin.
func (a *ArenaData) Contains(p gamemath.Vec3, margin float64) bool {
	return p.X >= a.MinX-margin && p.X <= a.MaxX+margin &&
		p.Z >= a.MinZ-margin && p.Z <= a.MaxZ+margin &&
		p.Y >= a.FloorY-margin
}

var Arena = donburi.NewComponentType[ArenaData]()

// PickupData is an arena interactable that damages the boss when used.
type PickupData struct {
	Remaining float64
	Damage    float64
	Range     float64
	Trigger   bool // Consumed on touch rather than on interact
}

var Pickup = donburi.NewComponentType[PickupData]()

type JumpPadData struct {
	Multiplier float64
	Cooldown   float64
	Remaining  float64
	Radius     float64
}

var JumpPad = donburi.NewComponentType[JumpPadData]()
