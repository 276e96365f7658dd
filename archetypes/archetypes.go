package archetypes

import (
	"github.com/automoto/riftarena/components"
	cfg "github.com/automoto/riftarena/config"
	"github.com/automoto/riftarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Combo,
		components.Input,
		components.Transform,
		components.Collider,
		components.Object,
		components.Health,
		components.HealthBar,
		components.Death,
		components.CombatTimers,
		components.Animation,
		components.Physics,
		components.Knockback,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.AIState,
		components.Transform,
		components.Collider,
		components.Object,
		components.Health,
		components.HealthBar,
		components.Death,
		components.CombatTimers,
		components.Animation,
		components.Physics,
		components.Knockback,
		components.Flash,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
		components.BossRuntime,
		components.Transform,
		components.Collider,
		components.Object,
		components.Health,
		components.HealthBar,
		components.Death,
		components.CombatTimers,
		components.Animation,
		components.Flash,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Transform,
		components.Object,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Transform,
		components.Object,
	)
	JumpPad = newArchetype(
		tags.JumpPad,
		components.JumpPad,
		components.Transform,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Arena = newArchetype(
		components.Arena,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
