package systems

import (
	"testing"

	"github.com/automoto/riftarena/components"
	cfg "github.com/automoto/riftarena/config"
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/automoto/riftarena/systems/factory"
	"github.com/automoto/riftarena/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestPickupsSpawnOnRingUpToMax(t *testing.T) {
	e := newTestECS(t)
	arena := newTestArena(t, e, 11)

	advance(e, 5.05)
	require.Equal(t, 1, countPickups(e.World))

	for i := 0; i < 40*60; i++ {
		tick(e)
		require.LessOrEqual(t, countPickups(e.World), cfg.Arena.MaxPickups)
	}

	tags.Pickup.Each(e.World, func(p *donburi.Entry) {
		pos := components.Transform.Get(p).Position
		d := gamemath.HorizontalDistance(pos, arena.Center)
		assert.GreaterOrEqual(t, d, cfg.Arena.InnerRadius-1e-9)
		assert.LessOrEqual(t, d, cfg.Arena.OuterRadius+1e-9)
		assert.Equal(t, arena.FloorY+cfg.Arena.SpawnHeight, pos.Y)
	})
}

func TestPickupSpawnIsSeeded(t *testing.T) {
	positions := func() []gamemath.Vec3 {
		e := newTestECS(t)
		newTestArena(t, e, 99)
		advance(e, 16)
		var out []gamemath.Vec3
		tags.Pickup.Each(e.World, func(p *donburi.Entry) {
			out = append(out, components.Transform.Get(p).Position)
		})
		return out
	}
	first := positions()
	assert.Len(t, first, 3)
	assert.ElementsMatch(t, first, positions())
}

func TestInteractingWithPickupDamagesBoss(t *testing.T) {
	e := newTestECS(t)
	newTestArena(t, e, 1)
	player := factory.CreatePlayer(e, gamemath.V3(4, 0, 0), nil, nil)
	boss := factory.CreateBoss(e, gamemath.V3(0, 0, -9), 0, gamemath.Vec3{}, nil, nil)
	pickup := factory.CreatePickup(e, gamemath.V3(5, 0, 0))

	var used []components.PickupUsedEvent
	components.PickupUsedEvents.Subscribe(e.World, func(w donburi.World, ev components.PickupUsedEvent) {
		used = append(used, ev)
	})

	tick(e)
	assert.True(t, pickup.Valid(), "standing next to it does nothing")

	press(e, player, components.InputData{InteractPressed: true})
	assert.False(t, pickup.Valid())
	assert.Equal(t, 950.0, healthOf(boss))
	require.Len(t, used, 1)
	assert.True(t, used[0].Landed)
}

func TestPickupOutOfRangeIgnored(t *testing.T) {
	e := newTestECS(t)
	newTestArena(t, e, 1)
	player := factory.CreatePlayer(e, gamemath.V3(0, 0, 0), nil, nil)
	boss := factory.CreateBoss(e, gamemath.V3(0, 0, -9), 0, gamemath.Vec3{}, nil, nil)
	pickup := factory.CreatePickup(e, gamemath.V3(5, 0, 0))

	press(e, player, components.InputData{InteractPressed: true})
	assert.True(t, pickup.Valid())
	assert.Equal(t, 1000.0, healthOf(boss))
}

func TestTriggerPickupConsumedOnTouch(t *testing.T) {
	e := newTestECS(t)
	newTestArena(t, e, 1)
	cfg.Arena.PickupTriggerMode = true
	factory.CreatePlayer(e, gamemath.V3(4, 0, 0), nil, nil)
	boss := factory.CreateBoss(e, gamemath.V3(0, 0, -9), 0, gamemath.Vec3{}, nil, nil)
	pickup := factory.CreatePickup(e, gamemath.V3(5, 0, 0))

	tick(e)
	assert.False(t, pickup.Valid())
	assert.Equal(t, 950.0, healthOf(boss))
}

func TestPickupWithoutBossStillConsumed(t *testing.T) {
	e := newTestECS(t)
	newTestArena(t, e, 1)
	player := factory.CreatePlayer(e, gamemath.V3(4, 0, 0), nil, nil)
	pickup := factory.CreatePickup(e, gamemath.V3(5, 0, 0))

	var used []components.PickupUsedEvent
	components.PickupUsedEvents.Subscribe(e.World, func(w donburi.World, ev components.PickupUsedEvent) {
		used = append(used, ev)
	})

	press(e, player, components.InputData{InteractPressed: true})
	assert.False(t, pickup.Valid())
	require.Len(t, used, 1)
	assert.False(t, used[0].Landed)
}

func TestPickupExpires(t *testing.T) {
	e := newTestECS(t)
	newTestArena(t, e, 1)
	pickup := factory.CreatePickup(e, gamemath.V3(5, 0, 0))
	components.Pickup.Get(pickup).Remaining = 1

	advance(e, 0.9)
	require.True(t, pickup.Valid())
	advance(e, 0.2)
	assert.False(t, pickup.Valid())
}

func TestJumpPadMultipliesJump(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, gamemath.V3(0.5, 0, 0), nil, nil)
	pad := factory.CreateJumpPad(e, gamemath.Vec3{}, 0)

	press(e, player, components.InputData{JumpPressed: true})

	want := gamemath.JumpVelocity(cfg.Player.JumpHeight*cfg.Arena.JumpPadMultiplier, cfg.Player.Gravity) + cfg.Player.Gravity*testStep
	assert.InDelta(t, want, components.Physics.Get(player).VerticalSpeed, 1e-9)
	assert.Equal(t, 0.0, components.Player.Get(player).JumpBoost, "the boost is spent on one jump")
	assert.InDelta(t, cfg.Arena.JumpPadCooldown, components.JumpPad.Get(pad).Remaining, 1e-9)
}

func TestJumpOffPadIsNormal(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, gamemath.V3(3, 0, 0), nil, nil)
	pad := factory.CreateJumpPad(e, gamemath.Vec3{}, 0)

	press(e, player, components.InputData{JumpPressed: true})

	want := gamemath.JumpVelocity(cfg.Player.JumpHeight, cfg.Player.Gravity) + cfg.Player.Gravity*testStep
	assert.InDelta(t, want, components.Physics.Get(player).VerticalSpeed, 1e-9)
	assert.Equal(t, 0.0, components.JumpPad.Get(pad).Remaining)
}

func TestJumpPadCooldown(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, gamemath.V3(0, 0, 0), nil, nil)
	factory.CreateJumpPad(e, gamemath.Vec3{}, 2)

	press(e, player, components.InputData{JumpPressed: true})
	advance(e, 0.3)
	// Back on the ground well inside the cooldown
	components.Transform.Get(player).Position.Y = 0
	components.Physics.Get(player).Grounded = true
	components.Physics.Get(player).VerticalSpeed = 0
	components.Player.Get(player).JumpCount = 0

	press(e, player, components.InputData{JumpPressed: true})
	want := gamemath.JumpVelocity(cfg.Player.JumpHeight, cfg.Player.Gravity) + cfg.Player.Gravity*testStep
	assert.InDelta(t, want, components.Physics.Get(player).VerticalSpeed, 1e-9)
}
