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

// CreatePickup spawns an arena interactable at pos.
func CreatePickup(ecs *ecs.ECS, pos gamemath.Vec3) *donburi.Entry {
	a := cfg.Arena
	pickup := archetypes.Pickup.Spawn(ecs)
	components.Transform.SetValue(pickup, components.TransformData{Position: pos})
	attachObject(ecs, pickup, pos, a.InteractRange*2, tags.ResolvPickup)
	components.Pickup.SetValue(pickup, components.PickupData{
		Remaining: a.PickupLifetime,
		Damage:    a.PickupDamage,
		Range:     a.InteractRange,
		Trigger:   a.PickupTriggerMode,
	})
	return pickup
}

// CreateJumpPad spawns a jump pad. multiplier <= 0 uses the configured one.
func CreateJumpPad(ecs *ecs.ECS, pos gamemath.Vec3, multiplier float64) *donburi.Entry {
	a := cfg.Arena
	if multiplier <= 0 {
		multiplier = a.JumpPadMultiplier
	}
	pad := archetypes.JumpPad.Spawn(ecs)
	components.Transform.SetValue(pad, components.TransformData{Position: pos})
	attachObject(ecs, pad, pos, a.JumpPadRadius*2, tags.ResolvJumpPad)
	components.JumpPad.SetValue(pad, components.JumpPadData{
		Multiplier: multiplier,
		Cooldown:   a.JumpPadCooldown,
		Radius:     a.JumpPadRadius,
	})
	return pad
}
