package factory

import (
	"log"
	"math/rand"

	"github.com/automoto/riftarena/archetypes"
	"github.com/automoto/riftarena/components"
	cfg "github.com/automoto/riftarena/config"
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/automoto/riftarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBoss spawns the boss director. rng selects attacks, so a seeded
// source makes the attack order reproducible.
func CreateBoss(ecs *ecs.ECS, pos gamemath.Vec3, yaw float64, arenaCenter gamemath.Vec3, rng *rand.Rand, animator components.Animator) *donburi.Entry {
	b := cfg.Boss
	if rng == nil {
		log.Printf("[boss] no random source supplied, using a fixed seed")
		rng = rand.New(rand.NewSource(1))
	}
	projectile := cfg.Projectile

	boss := archetypes.Boss.Spawn(ecs)

	components.Transform.SetValue(boss, components.TransformData{Position: pos, Yaw: yaw})
	components.Collider.SetValue(boss, components.ColliderData{Radius: b.Radius, Height: b.Height})
	attachObject(ecs, boss, pos, b.Radius*2, tags.ResolvBoss)

	components.Boss.SetValue(boss, components.BossData{
		Attacks:        append([]cfg.AttackDefinition(nil), b.Attacks...),
		AttackCooldown: b.AttackCooldown,
		IdleDuration:   b.IdleDuration,
		TurnRate:       b.TurnRate,
		ArenaCenter:    arenaCenter,
		Projectile:     &projectile,
		Rand:           rng,
	})
	components.BossRuntime.SetValue(boss, components.BossRuntimeData{
		Phase:    components.BossReady,
		Cooldown: b.AttackCooldown,
		Current:  -1,
	})
	components.Health.SetValue(boss, components.HealthData{
		Current:           b.Health,
		Max:               b.Health,
		InvulnWindow:      b.InvulnWindow,
		RegenRate:         b.RegenRate,
		RegenDelay:        b.RegenDelay,
		HitTrigger:        "TakeDamage",
		DeathTrigger:      "Death",
		CollisionOffDelay: b.CollisionOffDelay,
		RemovalDelay:      b.CollisionOffDelay + b.DeactivateDelay,
		Deactivate:        true,
	})
	components.HealthBar.SetValue(boss, components.HealthBarData{Displayed: 1, Visible: true})
	components.Animation.SetValue(boss, components.AnimationData{Animator: animator})

	return boss
}
