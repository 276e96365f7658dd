package factory

import (
	"github.com/automoto/riftarena/archetypes"
	"github.com/automoto/riftarena/components"
	cfg "github.com/automoto/riftarena/config"
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/automoto/riftarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a projectile at start flying toward target. The
// direction is fixed here and never re-aimed.
func CreateProjectile(ecs *ecs.ECS, owner *donburi.Entry, start, target gamemath.Vec3, damage float64, pc *cfg.ProjectileConfig, victim tags.CollisionCategory) *donburi.Entry {
	dir := gamemath.Direction(start, target)
	if dir.IsZero() {
		dir = gamemath.V3(0, 0, 1)
	}

	p := archetypes.Projectile.Spawn(ecs)
	components.Transform.SetValue(p, components.TransformData{
		Position: start,
		Yaw:      gamemath.YawTowards(dir),
	})
	attachObject(ecs, p, start, pc.Radius*2, tags.ResolvProjectile)

	components.Projectile.SetValue(p, components.ProjectileData{
		Owner:     owner,
		Direction: dir,
		Speed:     pc.Speed,
		Damage:    damage,
		Remaining: pc.Lifetime,
		Radius:    pc.Radius,
		Victim:    victim,
	})
	return p
}
