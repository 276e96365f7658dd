package systems

import (
	"log"
	"math"

	"github.com/automoto/riftarena/components"
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ApplyDamage subtracts amount from the target's health. It is a no-op for
// targets without health, dead or invulnerable targets, and amounts that
// are not positive. It reports whether the damage landed.
func ApplyDamage(target *donburi.Entry, amount float64) bool {
	if !hasHealth(target) {
		return false
	}
	if math.IsNaN(amount) || amount <= 0 {
		return false
	}
	hp := components.Health.Get(target)
	if hp.Dead || IsInvulnerable(target) {
		return false
	}

	hp.Current = gamemath.Clamp(hp.Current-amount, 0, hp.Max)
	hp.SinceDamage = 0
	if hp.InvulnWindow > 0 && target.HasComponent(components.CombatTimers) {
		components.CombatTimers.Get(target).Invulnerability = hp.InvulnWindow
	}
	healthChanged(target, hp)

	if hp.Current == 0 {
		Kill(target)
		return true
	}

	animationOf(target).Trigger(hp.HitTrigger)
	startFlash(target)
	components.HitEvents.Publish(target.World, components.HitEvent{
		Target:    target,
		Amount:    amount,
		Remaining: hp.Current,
	})
	return true
}

// Heal adds amount to the target's health, capped at Max. Dead targets and
// amounts that are not positive are ignored.
func Heal(target *donburi.Entry, amount float64) bool {
	if !hasHealth(target) {
		return false
	}
	if math.IsNaN(amount) || amount <= 0 {
		return false
	}
	hp := components.Health.Get(target)
	if hp.Dead || hp.Current >= hp.Max {
		return false
	}
	hp.Current = math.Min(hp.Max, hp.Current+amount)
	healthChanged(target, hp)
	return true
}

// Kill runs the one-time death transition. Later calls are no-ops and
// return false.
func Kill(target *donburi.Entry) bool {
	if !hasHealth(target) {
		return false
	}
	hp := components.Health.Get(target)
	if hp.Dead {
		return false
	}
	hp.Dead = true
	if hp.Current != 0 {
		hp.Current = 0
		healthChanged(target, hp)
	}

	if target.HasComponent(components.CombatTimers) {
		*components.CombatTimers.Get(target) = components.CombatTimersData{}
	}
	if target.HasComponent(components.Death) {
		components.Death.SetValue(target, components.DeathData{
			Active:         true,
			CollisionOffAt: hp.CollisionOffDelay,
			RemoveAt:       hp.RemovalDelay,
			Deactivate:     hp.Deactivate,
		})
	}

	animationOf(target).Trigger(hp.DeathTrigger)
	components.DeathEvents.Publish(target.World, components.DeathEvent{Entity: target})
	log.Printf("[combat] entity %v died", target.Entity())
	return true
}

// ResetHealth restores full health and clears the death latch. It is the
// only way back from death.
func ResetHealth(target *donburi.Entry) {
	if !hasHealth(target) {
		return
	}
	hp := components.Health.Get(target)
	hp.Current = hp.Max
	hp.Dead = false
	hp.SinceDamage = 0

	if target.HasComponent(components.CombatTimers) {
		*components.CombatTimers.Get(target) = components.CombatTimersData{}
	}
	if target.HasComponent(components.Death) {
		death := components.Death.Get(target)
		if death.CollisionOff {
			restoreObject(target)
		}
		*death = components.DeathData{}
	}
	if target.HasComponent(components.HealthBar) {
		components.HealthBar.Get(target).Visible = true
	}
	healthChanged(target, hp)
}

// IsInvulnerable reports whether the target is inside its invulnerability
// window.
func IsInvulnerable(target *donburi.Entry) bool {
	if target == nil || !target.Valid() || !target.HasComponent(components.CombatTimers) {
		return false
	}
	return components.CombatTimers.Get(target).Invulnerability > 0
}

// IsDead reports whether the target has latched death. Entities without
// health are never dead.
func IsDead(target *donburi.Entry) bool {
	if !hasHealth(target) {
		return false
	}
	return components.Health.Get(target).Dead
}

// HealthFraction is current/max for health bars.
func HealthFraction(target *donburi.Entry) float64 {
	if !hasHealth(target) {
		return 0
	}
	hp := components.Health.Get(target)
	if hp.Max <= 0 {
		return 0
	}
	return hp.Current / hp.Max
}

// UpdateCombatTimers counts every combat timer down by the tick delta.
func UpdateCombatTimers(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	components.CombatTimers.Each(ecs.World, func(e *donburi.Entry) {
		t := components.CombatTimers.Get(e)
		t.AttackCooldown = gamemath.CountDown(t.AttackCooldown, dt)
		t.ComboWindow = gamemath.CountDown(t.ComboWindow, dt)
		t.Invulnerability = gamemath.CountDown(t.Invulnerability, dt)
	})
}

// UpdateHealth regenerates health for entities that have gone long enough
// without taking damage.
func UpdateHealth(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		hp := components.Health.Get(e)
		if hp.Dead {
			return
		}
		hp.SinceDamage += dt
		if hp.RegenRate > 0 && hp.SinceDamage >= hp.RegenDelay {
			Heal(e, hp.RegenRate*dt)
		}
	})
}

func hasHealth(e *donburi.Entry) bool {
	return e != nil && e.Valid() && e.HasComponent(components.Health)
}

func healthChanged(e *donburi.Entry, hp *components.HealthData) {
	fraction := 0.0
	if hp.Max > 0 {
		fraction = hp.Current / hp.Max
	}
	retargetHealthBar(e, fraction)
	components.HealthChangedEvents.Publish(e.World, components.HealthChangedEvent{
		Entity:   e,
		Current:  hp.Current,
		Max:      hp.Max,
		Fraction: fraction,
	})
}

// animationOf returns nil when the entity has no animation component. The
// AnimationData methods accept a nil receiver.
func animationOf(e *donburi.Entry) *components.AnimationData {
	if e == nil || !e.Valid() || !e.HasComponent(components.Animation) {
		return nil
	}
	return components.Animation.Get(e)
}
