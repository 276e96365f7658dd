package systems

import (
	"github.com/automoto/riftarena/components"
	cfg "github.com/automoto/riftarena/config"
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/automoto/riftarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateEnemies(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	target := livingPlayer(ecs.World)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		updateEnemyAI(e, target, dt)
	})
}

// DamageEnemy is the external damage entry point for enemies. Attack timing
// is not affected by being hit.
func DamageEnemy(e *donburi.Entry, amount float64) bool {
	if !ApplyDamage(e, amount) {
		return false
	}
	if e.HasComponent(components.HealthBar) {
		components.HealthBar.Get(e).Visible = true
	}
	return true
}

func updateEnemyAI(e *donburi.Entry, target *donburi.Entry, dt float64) {
	enemy := components.Enemy.Get(e)
	state := components.AIState.Get(e)
	timers := components.CombatTimers.Get(e)
	physics := components.Physics.Get(e)
	kb := components.Knockback.Get(e)
	hp := components.Health.Get(e)

	if state.Kind == components.AIDead {
		if !hp.Dead {
			reviveEnemy(e, enemy, state, physics)
		}
		return
	}
	if hp.Dead {
		state.Die()
		physics.Disabled = true
		kb.Vector = gamemath.Vec3{}
		removeObject(e)
		return
	}

	if !enemy.CanAttack && timers.AttackCooldown == 0 {
		enemy.CanAttack = true
	}

	tr := components.Transform.Get(e)
	var toTarget gamemath.Vec3
	if target != nil {
		toTarget = components.Transform.Get(target).Position.Sub(tr.Position).Horizontal()
		if !toTarget.IsZero() {
			tr.Yaw = gamemath.SlerpYaw(tr.Yaw, gamemath.YawTowards(toTarget), enemy.TurnRate*dt)
		}
	}

	var horizontal gamemath.Vec3
	lunging := false
	if kb.Vector.Len() > cfg.Combat.KnockbackEpsilon {
		if !kb.Lunge {
			state.Stagger(kb.Vector)
		}
		horizontal = kb.Vector.Scale(dt)
		kb.Vector = gamemath.DecayToward(kb.Vector, kb.Decay, dt)
		lunging = kb.Lunge
	} else {
		kb.Vector = gamemath.Vec3{}
		kb.Lunge = false
		horizontal = decideEnemyMove(e, enemy, state, timers, kb, toTarget, target != nil, dt)
	}

	applyGravity(physics, cfg.Player.GroundedVelocity, dt)
	moveBody(e, horizontal.Add(gamemath.Vec3{Y: physics.VerticalSpeed * dt}))
	if lunging {
		checkLungeContact(e, enemy, target)
	}
}

// decideEnemyMove picks the next AI state when no knockback is active and
// returns the horizontal step for this tick.
func decideEnemyMove(e *donburi.Entry, enemy *components.EnemyData, state *components.AIStateData, timers *components.CombatTimersData, kb *components.KnockbackData, toTarget gamemath.Vec3, hasTarget bool, dt float64) gamemath.Vec3 {
	anim := animationOf(e)
	if !hasTarget {
		state.Idle()
		anim.SetBool("IsRunning", false)
		return gamemath.Vec3{}
	}

	distance := toTarget.Len()
	switch {
	case distance > enemy.AttackDistance:
		state.Pursue()
		anim.SetBool("IsRunning", true)
		return toTarget.Normalize().Scale(enemy.MoveSpeed * dt)
	case enemy.CanAttack:
		startLunge(e, enemy, state, timers, kb, toTarget)
	default:
		if state.Kind != components.AIAttacking {
			state.Idle()
		}
		anim.SetBool("IsRunning", false)
	}
	return gamemath.Vec3{}
}

// startLunge begins an attack: the enemy throws itself at the target and
// may not attack again for one beat.
func startLunge(e *donburi.Entry, enemy *components.EnemyData, state *components.AIStateData, timers *components.CombatTimersData, kb *components.KnockbackData, toTarget gamemath.Vec3) {
	enemy.AttackCount++
	state.Attack(enemy.AttackCount)

	anim := animationOf(e)
	anim.SetBool("IsRunning", false)
	anim.Trigger("Attack")

	kb.Vector = toTarget.Normalize().Scale(enemy.AttackForce)
	kb.Lunge = true
	enemy.LungeLanded = false
	enemy.CanAttack = false
	timers.AttackCooldown = gamemath.BeatInterval(enemy.BPM)
}

// checkLungeContact deals contact damage at most once per lunge, and only
// while the target is still within attack distance.
func checkLungeContact(e *donburi.Entry, enemy *components.EnemyData, target *donburi.Entry) {
	if enemy.LungeLanded || target == nil || enemy.ContactDamage <= 0 {
		return
	}
	tr := components.Transform.Get(e)
	if gamemath.HorizontalDistance(tr.Position, components.Transform.Get(target).Position) > enemy.AttackDistance {
		return
	}

	center := tr.Position
	radius := 0.0
	if e.HasComponent(components.Collider) {
		c := components.Collider.Get(e)
		center.Y += c.Height / 2
		radius = c.Radius
	}
	for _, hit := range overlapSphere(e.World, center, radius, tags.CategoryPlayer) {
		if hit.Entity() != target.Entity() {
			continue
		}
		enemy.LungeLanded = true
		ApplyDamage(target, enemy.ContactDamage)
		return
	}
}

// reviveEnemy returns an enemy to Idle after its health was reset.
func reviveEnemy(e *donburi.Entry, enemy *components.EnemyData, state *components.AIStateData, physics *components.PhysicsData) {
	state.Idle()
	physics.Disabled = false
	enemy.CanAttack = true
	enemy.LungeLanded = false
	restoreObject(e)
}

// livingPlayer returns the first living player, or nil.
func livingPlayer(w donburi.World) *donburi.Entry {
	var found *donburi.Entry
	tags.Player.Each(w, func(e *donburi.Entry) {
		if found == nil && !IsDead(e) {
			found = e
		}
	})
	return found
}
