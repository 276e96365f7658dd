package systems

import (
	"log"

	"github.com/automoto/riftarena/components"
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/automoto/riftarena/tags"
	"github.com/yohamta/donburi"
)

// AttackHit resolves a player strike at its impact frame. Every living
// enemy or boss inside the hit sphere in front of the player takes the
// player's attack damage, and enemies are knocked away. It returns the
// number of targets the strike landed on.
func AttackHit(e *donburi.Entry) int {
	if e == nil || !e.Valid() || !e.HasComponent(components.Player) || IsDead(e) {
		return 0
	}
	player := components.Player.Get(e)
	tr := components.Transform.Get(e)

	center := tr.Position.Add(tr.Forward().Scale(player.AttackReach))
	if e.HasComponent(components.Collider) {
		center.Y += components.Collider.Get(e).Height / 2
	}

	hits := 0
	for _, target := range overlapSphere(e.World, center, player.AttackRange, tags.CategoryEnemy, tags.CategoryBoss) {
		if target.Entity() == e.Entity() {
			continue
		}
		var landed bool
		if target.HasComponent(components.Enemy) {
			landed = DamageEnemy(target, player.AttackDamage)
		} else {
			landed = ApplyDamage(target, player.AttackDamage)
		}
		if !landed {
			continue
		}
		hits++

		if target.HasComponent(components.Enemy) && !IsDead(target) {
			away := components.Transform.Get(target).Position.Sub(tr.Position).Horizontal()
			if away.IsZero() {
				away = tr.Forward()
			}
			KnockBack(target, away, components.Enemy.Get(target).KnockForce)
		}
	}
	if hits > 0 {
		log.Printf("[combat] strike landed on %d target(s)", hits)
	}
	return hits
}

// AttackEventBridge forwards an animation impact event to AttackHit. The
// player may have been removed since the clip started, in which case the
// event is dropped.
func AttackEventBridge(w donburi.World, player donburi.Entity) int {
	if !w.Valid(player) {
		return 0
	}
	return AttackHit(w.Entry(player))
}

// KnockBack pushes e along dir with the given speed. The impulse decays on
// its own and is never a hard lock.
func KnockBack(e *donburi.Entry, dir gamemath.Vec3, force float64) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Knockback) || force <= 0 || IsDead(e) {
		return
	}
	kb := components.Knockback.Get(e)
	kb.Vector = dir.Horizontal().Normalize().Scale(force)
	kb.Lunge = false
	if e.HasComponent(components.AIState) {
		components.AIState.Get(e).Stagger(kb.Vector)
	}
}
