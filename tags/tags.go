package tags

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Boss       = donburi.NewTag().SetName("Boss")
	Projectile = donburi.NewTag().SetName("Projectile")
	Pickup     = donburi.NewTag().SetName("Pickup")
	JumpPad    = donburi.NewTag().SetName("JumpPad")
)

// Resolv tags for contact queries
const (
	ResolvFloor      = "floor"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvBoss       = "Boss"
	ResolvProjectile = "Projectile"
	ResolvPickup     = "Pickup"
	ResolvJumpPad    = "JumpPad"
	ResolvProbe      = "probe"
)

// CollisionCategory classifies the other side of a contact. It is resolved
// once when the contact is reported.
type CollisionCategory int

const (
	CategoryNone CollisionCategory = iota
	CategoryFloor
	CategoryPlayer
	CategoryEnemy
	CategoryBoss
	CategoryProjectile
	CategoryPickup
	CategoryJumpPad
)

var categoryTags = [...]string{
	CategoryNone:       "",
	CategoryFloor:      ResolvFloor,
	CategoryPlayer:     ResolvPlayer,
	CategoryEnemy:      ResolvEnemy,
	CategoryBoss:       ResolvBoss,
	CategoryProjectile: ResolvProjectile,
	CategoryPickup:     ResolvPickup,
	CategoryJumpPad:    ResolvJumpPad,
}

func (c CollisionCategory) String() string {
	if c <= CategoryNone || int(c) >= len(categoryTags) {
		return "none"
	}
	return categoryTags[c]
}

// ResolvTag returns the resolv tag objects of this category carry.
func (c CollisionCategory) ResolvTag() string {
	if c < CategoryNone || int(c) >= len(categoryTags) {
		return ""
	}
	return categoryTags[c]
}

// Damageable reports whether entities of this category carry health.
func (c CollisionCategory) Damageable() bool {
	return c == CategoryPlayer || c == CategoryEnemy || c == CategoryBoss
}

// CategoryOf resolves the category of a resolv object from its tags.
func CategoryOf(obj *resolv.Object) CollisionCategory {
	if obj == nil {
		return CategoryNone
	}
	for c := CategoryFloor; int(c) < len(categoryTags); c++ {
		if obj.HasTags(categoryTags[c]) {
			return c
		}
	}
	return CategoryNone
}
