package components

import (
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/automoto/riftarena/tags"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Owner     *donburi.Entry
	Direction gamemath.Vec3 // Unit vector fixed at spawn
	Speed     float64
	Damage    float64
	Remaining float64 // Seconds of lifetime left
	Radius    float64
	Victim    tags.CollisionCategory
}

var Projectile = donburi.NewComponentType[ProjectileData]()
