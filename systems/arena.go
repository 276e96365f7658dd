package systems

import (
	"math"

	"github.com/automoto/riftarena/components"
	cfg "github.com/automoto/riftarena/config"
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/automoto/riftarena/systems/factory"
	"github.com/automoto/riftarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateArena spawns pickups on a timer and consumes the ones the player
// uses. A consumed pickup damages the boss.
func UpdateArena(ecs *ecs.ECS) {
	entry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(entry)
	dt := deltaTime(ecs.World)

	arena.SpawnTimer += dt
	if arena.SpawnTimer >= cfg.Arena.PickupSpawnInterval {
		arena.SpawnTimer = 0
		if countPickups(ecs.World) < cfg.Arena.MaxPickups {
			factory.CreatePickup(ecs, pickupSpawnPoint(arena))
		}
	}

	player := livingPlayer(ecs.World)
	var used, expired []*donburi.Entry
	tags.Pickup.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Pickup.Get(e)
		p.Remaining -= dt
		if p.Remaining <= 0 {
			expired = append(expired, e)
			return
		}
		if player != nil && pickupActivated(e, p, player) {
			used = append(used, e)
		}
	})

	for _, e := range used {
		landed := false
		if boss := livingBoss(ecs.World); boss != nil {
			landed = ApplyDamage(boss, components.Pickup.Get(e).Damage)
		}
		components.PickupUsedEvents.Publish(ecs.World, components.PickupUsedEvent{Pickup: e, Landed: landed})
		destroyEntity(ecs, e)
	}
	for _, e := range expired {
		destroyEntity(ecs, e)
	}
}

func pickupActivated(e *donburi.Entry, p *components.PickupData, player *donburi.Entry) bool {
	d := gamemath.HorizontalDistance(components.Transform.Get(e).Position, components.Transform.Get(player).Position)
	if d > p.Range {
		return false
	}
	return p.Trigger || components.Input.Get(player).InteractPressed
}

// pickupSpawnPoint picks a point uniformly over the ring between the inner
// and outer radius around the arena centre.
func pickupSpawnPoint(arena *components.ArenaData) gamemath.Vec3 {
	inner, outer := cfg.Arena.InnerRadius, cfg.Arena.OuterRadius
	u, angle := 0.5, 0.0
	if arena.Rand != nil {
		u = arena.Rand.Float64()
		angle = arena.Rand.Float64() * 2 * math.Pi
	}
	r := math.Sqrt(inner*inner + u*(outer*outer-inner*inner))
	return gamemath.Vec3{
		X: arena.Center.X + r*math.Cos(angle),
		Y: arena.FloorY + cfg.Arena.SpawnHeight,
		Z: arena.Center.Z + r*math.Sin(angle),
	}
}

func countPickups(w donburi.World) int {
	n := 0
	tags.Pickup.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func livingBoss(w donburi.World) *donburi.Entry {
	var found *donburi.Entry
	tags.Boss.Each(w, func(e *donburi.Entry) {
		if found == nil && !IsDead(e) {
			found = e
		}
	})
	return found
}
