package factory

import (
	"math/rand"

	"github.com/automoto/riftarena/archetypes"
	"github.com/automoto/riftarena/components"
	"github.com/automoto/riftarena/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateClock creates the simulation clock advancing step seconds per tick.
func CreateClock(ecs *ecs.ECS, step float64) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{Step: step})
	return clock
}

// CreateArena creates the arena singleton from a layout. rng drives pickup
// placement.
func CreateArena(ecs *ecs.ECS, layout *leveldata.Arena, rng *rand.Rand) *donburi.Entry {
	arena := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(arena, components.ArenaData{
		Center: layout.Center,
		MinX:   layout.MinX,
		MaxX:   layout.MaxX,
		MinZ:   layout.MinZ,
		MaxZ:   layout.MaxZ,
		FloorY: layout.FloorY,
		Rand:   rng,
	})
	return arena
}
