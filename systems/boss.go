package systems

import (
	"log"

	"github.com/automoto/riftarena/components"
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/automoto/riftarena/systems/factory"
	"github.com/automoto/riftarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBosses advances each boss attack sequence by one tick. A sequence
// runs to completion once started; only death interrupts it.
func UpdateBosses(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	target := livingPlayer(ecs.World)

	tags.Boss.Each(ecs.World, func(e *donburi.Entry) {
		updateBoss(ecs, e, target, dt)
	})
}

func updateBoss(ecs *ecs.ECS, e *donburi.Entry, target *donburi.Entry, dt float64) {
	boss := components.Boss.Get(e)
	rt := components.BossRuntime.Get(e)
	hp := components.Health.Get(e)

	if rt.Phase == components.BossDead {
		if !hp.Dead {
			reviveBoss(e, boss, rt)
		}
		return
	}
	if hp.Dead {
		rt.Phase = components.BossDead
		rt.Current = -1
		rt.Elapsed = 0
		log.Printf("[boss] attack loop halted")
		return
	}

	if target != nil {
		tr := components.Transform.Get(e)
		dir := components.Transform.Get(target).Position.Sub(tr.Position).Horizontal()
		if !dir.IsZero() {
			tr.Yaw = gamemath.SlerpYaw(tr.Yaw, gamemath.YawTowards(dir), boss.TurnRate*dt)
		}
	}

	rt.SinceAttackStart += dt
	rt.Elapsed += dt

	switch rt.Phase {
	case components.BossReady:
		if rt.SinceAttackStart >= rt.Cooldown {
			beginBossAttack(e, boss, rt)
		}
	case components.BossWindup:
		attack := boss.Attacks[rt.Current]
		if rt.Elapsed >= attack.Windup {
			spawnBossProjectiles(ecs, e, boss, rt.Current)
			rt.Phase = components.BossRecover
			rt.Elapsed = 0
		}
	case components.BossRecover:
		if rt.Elapsed >= boss.IdleDuration {
			rt.Phase = components.BossReady
			rt.Current = -1
			rt.Elapsed = 0
			animationOf(e).Play("Idle")
		}
	}
}

// beginBossAttack picks one attack uniformly at random and restarts the
// cooldown clock.
func beginBossAttack(e *donburi.Entry, boss *components.BossData, rt *components.BossRuntimeData) {
	if len(boss.Attacks) == 0 {
		if !rt.WarnedNoAttacks {
			log.Printf("[boss] no attacks configured")
			rt.WarnedNoAttacks = true
		}
		return
	}

	idx := 0
	if boss.Rand != nil {
		idx = boss.Rand.Intn(len(boss.Attacks))
	}
	attack := boss.Attacks[idx]

	rt.Current = idx
	rt.Phase = components.BossWindup
	rt.Elapsed = 0
	rt.SinceAttackStart = 0
	rt.AttacksStarted++
	rt.Cooldown = boss.AttackCooldown
	if attack.Cooldown > 0 {
		rt.Cooldown = attack.Cooldown
	}

	anim := animationOf(e)
	anim.Play(attack.Animation)
	anim.Trigger(attack.ID)
	components.BossAttackEvents.Publish(e.World, components.BossAttackEvent{Boss: e, AttackID: attack.ID})
}

// spawnBossProjectiles fires one projectile per spawn point of the attack,
// all aimed at the arena centre.
func spawnBossProjectiles(ecs *ecs.ECS, e *donburi.Entry, boss *components.BossData, idx int) {
	if boss.Projectile == nil {
		log.Printf("[boss] no projectile configured, skipping spawn")
		return
	}
	attack := boss.Attacks[idx]
	damage := attack.Damage
	if damage <= 0 {
		damage = boss.Projectile.Damage
	}

	pos := components.Transform.Get(e).Position
	for _, offset := range attack.SpawnPoints {
		factory.CreateProjectile(ecs, e, pos.Add(offset), boss.ArenaCenter, damage, boss.Projectile, tags.CategoryPlayer)
	}
}

func reviveBoss(e *donburi.Entry, boss *components.BossData, rt *components.BossRuntimeData) {
	*rt = components.BossRuntimeData{
		Phase:    components.BossReady,
		Cooldown: boss.AttackCooldown,
		Current:  -1,
	}
	animationOf(e).Play("Idle")
}
