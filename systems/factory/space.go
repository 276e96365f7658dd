package factory

import (
	"math"

	"github.com/automoto/riftarena/archetypes"
	"github.com/automoto/riftarena/components"
	cfg "github.com/automoto/riftarena/config"
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the contact space covering the arena bounds plus
// padding on every side.
func CreateSpace(ecs *ecs.ECS, arena *components.ArenaData) *donburi.Entry {
	pad := cfg.Combat.SpacePadding
	cell := cfg.Combat.SpaceCellSize
	width := int(math.Ceil(arena.MaxX-arena.MinX+2*pad)) + cell
	height := int(math.Ceil(arena.MaxZ-arena.MinZ+2*pad)) + cell

	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, &components.SpaceData{
		Space:   resolv.NewSpace(width, height, cell, cell),
		OriginX: pad - arena.MinX,
		OriginZ: pad - arena.MinZ,
	})
	return space
}

// attachObject gives e a square footprint of the given size centred on pos
// and registers it with the space when one exists.
func attachObject(ecs *ecs.ECS, e *donburi.Entry, pos gamemath.Vec3, size float64, tag string) *resolv.Object {
	obj := resolv.NewObject(0, 0, size, size, tag)
	obj.Data = e
	components.Object.Set(e, &components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		x, y := space.ToSpace(pos)
		obj.X = x - size/2
		obj.Y = y - size/2
		space.Add(obj)
	}
	return obj
}
