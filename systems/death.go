package systems

import (
	"log"

	"github.com/automoto/riftarena/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths advances every active death sequence: contacts stop after
// CollisionOffAt, then the entity is removed or deactivated at RemoveAt.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)

	var removals []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if !death.Active || death.Done {
			return
		}
		death.Elapsed += dt

		if !death.CollisionOff && death.Elapsed >= death.CollisionOffAt {
			death.CollisionOff = true
			removeObject(e)
			if e.HasComponent(components.HealthBar) {
				components.HealthBar.Get(e).Visible = false
			}
		}

		if death.RemoveAt <= 0 || death.Elapsed < death.RemoveAt {
			return
		}
		if death.Deactivate {
			death.Done = true
			log.Printf("[combat] entity %v deactivated", e.Entity())
			return
		}
		removals = append(removals, e)
	})

	for _, e := range removals {
		destroyEntity(ecs, e)
	}
}

// IsDeactivated reports whether e finished a death sequence that keeps the
// entity in the world.
func IsDeactivated(e *donburi.Entry) bool {
	if e == nil || !e.Valid() || !e.HasComponent(components.Death) {
		return false
	}
	return components.Death.Get(e).Done
}
