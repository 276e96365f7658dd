package systems

import (
	"github.com/automoto/riftarena/components"
	cfg "github.com/automoto/riftarena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the simulation clock by one step. It must run
// before every other system.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	clock.Delta = clock.Step
	if clock.Delta <= 0 {
		clock.Delta = 1 / cfg.Combat.TickRate
	}
	clock.Elapsed += clock.Delta
	clock.Tick++
}

// deltaTime returns the seconds covered by the current tick.
func deltaTime(w donburi.World) float64 {
	if entry, ok := components.Clock.First(w); ok {
		return components.Clock.Get(entry).Delta
	}
	return 1 / cfg.Combat.TickRate
}

// now returns the simulation time in seconds.
func now(w donburi.World) float64 {
	if entry, ok := components.Clock.First(w); ok {
		return components.Clock.Get(entry).Elapsed
	}
	return 0
}
