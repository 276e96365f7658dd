package systems

import (
	"github.com/automoto/riftarena/components"
	cfg "github.com/automoto/riftarena/config"
	"github.com/automoto/riftarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves every projectile along its fixed direction. A
// projectile is spent on its first victim contact whether or not the damage
// lands. It also expires with its lifetime or past the arena bounds.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)

	var arena *components.ArenaData
	if entry, ok := components.Arena.First(ecs.World); ok {
		arena = components.Arena.Get(entry)
	}

	var spent []*donburi.Entry
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		if updateProjectile(e, arena, dt) {
			spent = append(spent, e)
		}
	})

	for _, e := range spent {
		destroyEntity(ecs, e)
	}
}

// updateProjectile reports whether the projectile is spent.
func updateProjectile(e *donburi.Entry, arena *components.ArenaData, dt float64) bool {
	p := components.Projectile.Get(e)
	tr := components.Transform.Get(e)

	p.Remaining -= dt
	if p.Remaining <= 0 {
		return true
	}

	tr.Position = tr.Position.Add(p.Direction.Scale(p.Speed * dt))
	syncObject(e)

	if arena != nil && !arena.Contains(tr.Position, cfg.Projectile.BoundsMargin) {
		return true
	}

	for _, target := range overlapSphere(e.World, tr.Position, p.Radius, p.Victim) {
		if p.Owner != nil && target.Entity() == p.Owner.Entity() {
			continue
		}
		ApplyDamage(target, p.Damage)
		return true
	}
	return false
}

// destroyEntity takes e out of the contact space and removes it from the
// world.
func destroyEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	removeObject(e)
	ecs.World.Remove(e.Entity())
}
