package components

import (
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/automoto/riftarena/tags"
	"github.com/yohamta/donburi"
)

// Contact is what a Body reports after a move.
type Contact struct {
	Grounded bool
	Category tags.CollisionCategory
}

// Body is the physics collaborator. It resolves a displacement from pos and
// returns the final position.
type Body interface {
	Move(pos, delta gamemath.Vec3) (gamemath.Vec3, Contact)
}

type PhysicsData struct {
	Body          Body
	VerticalSpeed float64
	Gravity       float64
	Grounded      bool
	Ground        tags.CollisionCategory
	Disabled      bool
}

var Physics = donburi.NewComponentType[PhysicsData]()

// KnockbackData is a decaying impulse. Lunge marks a self-applied attack
// impulse, which does not count as a stagger.
type KnockbackData struct {
	Vector gamemath.Vec3
	Decay  float64
	Lunge  bool
}

var Knockback = donburi.NewComponentType[KnockbackData]()
