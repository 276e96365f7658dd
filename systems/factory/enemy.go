package factory

import (
	"log"

	"github.com/automoto/riftarena/archetypes"
	"github.com/automoto/riftarena/components"
	cfg "github.com/automoto/riftarena/config"
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/automoto/riftarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the named type, falling back to the
// default type for unknown names.
func CreateEnemy(ecs *ecs.ECS, pos gamemath.Vec3, enemyTypeName string, animator components.Animator, body components.Body) *donburi.Entry {
	enemyType, exists := cfg.Enemy.Types[enemyTypeName]
	if !exists {
		if enemyTypeName != "" {
			log.Printf("[enemy] unknown enemy type %q, using %q", enemyTypeName, cfg.Enemy.DefaultType)
		}
		enemyType = cfg.Enemy.EnemyType(cfg.Enemy.DefaultType)
		enemyTypeName = enemyType.Name
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	components.Transform.SetValue(enemy, components.TransformData{Position: pos})
	components.Collider.SetValue(enemy, components.ColliderData{Radius: enemyType.Radius, Height: enemyType.Height})
	attachObject(ecs, enemy, pos, enemyType.Radius*2, tags.ResolvEnemy)

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:       enemyTypeName,
		TypeConfig:     &enemyType,
		MoveSpeed:      enemyType.MoveSpeed,
		AttackDistance: enemyType.AttackDistance,
		AttackForce:    enemyType.AttackForce,
		BPM:            enemyType.BPM,
		KnockForce:     enemyType.KnockForce,
		ContactDamage:  enemyType.ContactDamage,
		TurnRate:       enemyType.TurnRate,
		CanAttack:      true,
	})
	components.AIState.SetValue(enemy, components.AIStateData{Kind: components.AIIdle})
	components.Health.SetValue(enemy, components.HealthData{
		Current:      enemyType.Health,
		Max:          enemyType.Health,
		HitTrigger:   "Hit",
		DeathTrigger: "Die",
		RemovalDelay: enemyType.RemovalDelay,
	})
	components.Animation.SetValue(enemy, components.AnimationData{Animator: animator})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Body:     body,
		Gravity:  cfg.Player.Gravity,
		Grounded: true,
	})
	components.Knockback.SetValue(enemy, components.KnockbackData{Decay: enemyType.KnockbackDecay})

	return enemy
}
