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

// CreatePlayer spawns the player. A nil animator makes the player confirm
// its own hits after a fixed delay; a nil body falls back to the arena floor.
func CreatePlayer(ecs *ecs.ECS, pos gamemath.Vec3, animator components.Animator, body components.Body) *donburi.Entry {
	p := cfg.Player
	player := archetypes.Player.Spawn(ecs)

	components.Transform.SetValue(player, components.TransformData{Position: pos})
	components.Collider.SetValue(player, components.ColliderData{Radius: p.Radius, Height: p.Height})
	attachObject(ecs, player, pos, p.Radius*2, tags.ResolvPlayer)

	components.Player.SetValue(player, components.PlayerData{
		State:            components.PlayerIdle,
		AttackCooldown:   p.AttackCooldown,
		ComboThreshold:   p.ComboThreshold,
		ComboResetTime:   p.ComboResetTime,
		FinisherDuration: p.FinisherDuration,
		AttackRange:      p.AttackRange,
		AttackReach:      p.AttackReach,
		AttackDamage:     p.AttackDamage,
		LockOnRange:      p.LockOnRange,
		MoveSpeed:        p.MoveSpeed,
		RotationSpeed:    p.RotationSpeed,
		JumpHeight:       p.JumpHeight,
		MaxJumps:         p.MaxJumps,
		AutoConfirm:      !components.ReportsImpacts(animator),
		HitDelay:         cfg.Combat.AnimationHitDelay,
	})
	components.Health.SetValue(player, components.HealthData{
		Current:      p.Health,
		Max:          p.Health,
		InvulnWindow: p.InvulnWindow,
		HitTrigger:   "Hit",
		DeathTrigger: "Die",
		RemovalDelay: p.DestroyDelay,
	})
	components.HealthBar.SetValue(player, components.HealthBarData{Displayed: 1, Visible: true})
	components.Animation.SetValue(player, components.AnimationData{Animator: animator})
	components.Physics.SetValue(player, components.PhysicsData{
		Body:     body,
		Gravity:  p.Gravity,
		Grounded: true,
	})
	components.Knockback.SetValue(player, components.KnockbackData{Decay: p.KnockbackDecay})

	return player
}
