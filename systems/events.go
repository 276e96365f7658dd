package systems

import (
	"github.com/automoto/riftarena/components"
	"github.com/yohamta/donburi/ecs"
)

// DispatchEvents delivers the events published during this tick. It runs
// last so subscribers see the final state of the tick.
func DispatchEvents(ecs *ecs.ECS) {
	components.HealthChangedEvents.ProcessEvents(ecs.World)
	components.HitEvents.ProcessEvents(ecs.World)
	components.FinisherEvents.ProcessEvents(ecs.World)
	components.BossAttackEvents.ProcessEvents(ecs.World)
	components.PickupUsedEvents.ProcessEvents(ecs.World)
	components.DeathEvents.ProcessEvents(ecs.World)
}
