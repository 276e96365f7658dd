package systems

import (
	"math"

	"github.com/automoto/riftarena/components"
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/automoto/riftarena/tags"
	"github.com/yohamta/donburi"
)

// FloorBody is a flat floor bounded by the arena walls. It stands in for a
// physics engine when the host supplies none.
type FloorBody struct {
	FloorY     float64
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// NewFloorBody returns a floor matching the arena bounds.
func NewFloorBody(arena *components.ArenaData) *FloorBody {
	return &FloorBody{
		FloorY: arena.FloorY,
		MinX:   arena.MinX,
		MaxX:   arena.MaxX,
		MinZ:   arena.MinZ,
		MaxZ:   arena.MaxZ,
	}
}

func (b *FloorBody) Move(pos, delta gamemath.Vec3) (gamemath.Vec3, components.Contact) {
	next := pos.Add(delta)
	next.X = gamemath.Clamp(next.X, b.MinX, b.MaxX)
	next.Z = gamemath.Clamp(next.Z, b.MinZ, b.MaxZ)
	if next.Y <= b.FloorY {
		next.Y = b.FloorY
		return next, components.Contact{Grounded: true, Category: tags.CategoryFloor}
	}
	return next, components.Contact{}
}

var unboundedFloor = &FloorBody{
	MinX: math.Inf(-1), MaxX: math.Inf(1),
	MinZ: math.Inf(-1), MaxZ: math.Inf(1),
}

func defaultBody(w donburi.World) components.Body {
	if entry, ok := components.Arena.First(w); ok {
		return NewFloorBody(components.Arena.Get(entry))
	}
	return unboundedFloor
}

// moveBody displaces e through its body and records the reported contact.
func moveBody(e *donburi.Entry, delta gamemath.Vec3) components.Contact {
	ph := components.Physics.Get(e)
	if ph.Disabled {
		return components.Contact{}
	}
	body := ph.Body
	if body == nil {
		body = defaultBody(e.World)
	}
	tr := components.Transform.Get(e)
	pos, contact := body.Move(tr.Position, delta)
	tr.Position = pos
	ph.Grounded = contact.Grounded
	ph.Ground = contact.Category
	syncObject(e)
	return contact
}

// applyGravity integrates vertical speed. Grounded bodies hold a small
// downward speed so they stay in contact.
func applyGravity(ph *components.PhysicsData, groundedVelocity, dt float64) {
	if ph.Grounded && ph.VerticalSpeed < 0 {
		ph.VerticalSpeed = groundedVelocity
	}
	ph.VerticalSpeed += ph.Gravity * dt
}

// syncObject moves e's resolv footprint to its transform.
func syncObject(e *donburi.Entry) {
	if !e.HasComponent(components.Object) || !e.HasComponent(components.Transform) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil || obj.Space == nil {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	x, y := components.Space.Get(spaceEntry).ToSpace(components.Transform.Get(e).Position)
	obj.X = x - obj.W/2
	obj.Y = y - obj.H/2
	obj.Update()
}

// removeObject takes e out of contact queries.
func removeObject(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil || obj.Space == nil {
		return
	}
	obj.Space.Remove(obj.Object)
}

// restoreObject puts e back into contact queries.
func restoreObject(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil || obj.Space != nil {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	components.Space.Get(spaceEntry).Add(obj.Object)
	syncObject(e)
}
