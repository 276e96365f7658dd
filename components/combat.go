package components

import "github.com/yohamta/donburi"

// CombatTimersData holds countdowns in seconds. Zero means ready.
type CombatTimersData struct {
	AttackCooldown  float64
	ComboWindow     float64
	Invulnerability float64
}

var CombatTimers = donburi.NewComponentType[CombatTimersData]()

// ColliderData is the exact shape used after the resolv broad phase: a
// vertical cylinder standing on the entity position.
type ColliderData struct {
	Radius float64
	Height float64
}

var Collider = donburi.NewComponentType[ColliderData]()
