package systems

import (
	"github.com/automoto/riftarena/components"
	cfg "github.com/automoto/riftarena/config"
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/automoto/riftarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	t := now(ecs.World)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		updatePlayer(e, dt, t)
	})
}

func updatePlayer(e *donburi.Entry, dt, t float64) {
	player := components.Player.Get(e)
	combo := components.Combo.Get(e)
	input := components.Input.Get(e)
	physics := components.Physics.Get(e)

	if IsDead(e) {
		player.PendingHits = nil
		physics.VerticalSpeed = 0
		return
	}

	updateFinisher(combo, dt)
	decayCombo(player, combo, t)

	if input.AttackPressed {
		TryAttack(e)
	}
	updatePendingHits(e, player, dt)

	moving := updatePlayerMovement(e, player, combo, input, dt)
	updatePlayerState(e, player, combo, moving)
}

// TryAttack handles an attack input. It is accepted only when the attack
// cooldown has elapsed and no finisher is resolving, and reports whether
// it was accepted.
func TryAttack(e *donburi.Entry) bool {
	if IsDead(e) {
		return false
	}
	player := components.Player.Get(e)
	combo := components.Combo.Get(e)
	timers := components.CombatTimers.Get(e)
	if timers.AttackCooldown > 0 || combo.InCombo {
		return false
	}

	t := now(e.World)
	decayCombo(player, combo, t)
	lockOn(e, player)

	combo.StrikesLanded++
	combo.LastStrikeTime = t
	timers.ComboWindow = player.ComboResetTime
	anim := animationOf(e)

	if combo.StrikesLanded >= player.ComboThreshold {
		combo.StrikesLanded = 0
		combo.InCombo = true
		combo.FinisherRemaining = player.FinisherDuration
		player.State = components.PlayerFinisher
		anim.Trigger("Combo")
		components.FinisherEvents.Publish(e.World, components.FinisherEvent{Player: e})
	} else {
		if combo.UsingOffHand {
			anim.Trigger("AttackLeft")
		} else {
			anim.Trigger("AttackRight")
		}
		combo.UsingOffHand = !combo.UsingOffHand
		timers.AttackCooldown = player.AttackCooldown
		player.State = components.PlayerAttacking
	}

	if player.AutoConfirm {
		player.PendingHits = append(player.PendingHits, player.HitDelay)
	}
	return true
}

// decayCombo drops the strike counter once more than ComboResetTime has
// passed since the last strike. Exactly ComboResetTime does not reset.
func decayCombo(player *components.PlayerData, combo *components.ComboData, t float64) {
	if combo.StrikesLanded > 0 && t-combo.LastStrikeTime > player.ComboResetTime {
		combo.StrikesLanded = 0
	}
}

func updateFinisher(combo *components.ComboData, dt float64) {
	if !combo.InCombo {
		return
	}
	combo.FinisherRemaining = gamemath.CountDown(combo.FinisherRemaining, dt)
	if combo.FinisherRemaining == 0 {
		combo.InCombo = false
	}
}

// updatePendingHits confirms every auto-confirmed strike whose impact time
// has come, one AttackHit each.
func updatePendingHits(e *donburi.Entry, player *components.PlayerData, dt float64) {
	if len(player.PendingHits) == 0 {
		return
	}
	due := 0
	waiting := player.PendingHits[:0]
	for _, left := range player.PendingHits {
		left -= dt
		if left <= 0 {
			due++
			continue
		}
		waiting = append(waiting, left)
	}
	player.PendingHits = waiting
	for i := 0; i < due; i++ {
		AttackHit(e)
	}
}

// lockOn snaps the player to face the nearest living enemy or boss within
// LockOnRange.
func lockOn(e *donburi.Entry, player *components.PlayerData) {
	tr := components.Transform.Get(e)
	var nearest *donburi.Entry
	best := player.LockOnRange

	consider := func(other *donburi.Entry) {
		if IsDead(other) {
			return
		}
		d := gamemath.HorizontalDistance(tr.Position, components.Transform.Get(other).Position)
		if d <= best {
			best = d
			nearest = other
		}
	}
	tags.Enemy.Each(e.World, consider)
	tags.Boss.Each(e.World, consider)

	if nearest == nil {
		return
	}
	dir := components.Transform.Get(nearest).Position.Sub(tr.Position).Horizontal()
	if !dir.IsZero() {
		tr.Yaw = gamemath.YawTowards(dir)
	}
}

// updatePlayerMovement moves the player and reports whether movement input
// was applied. Finishers and knockback suppress movement; light attacks
// only suppress turning.
func updatePlayerMovement(e *donburi.Entry, player *components.PlayerData, combo *components.ComboData, input *components.InputData, dt float64) bool {
	tr := components.Transform.Get(e)
	physics := components.Physics.Get(e)
	timers := components.CombatTimers.Get(e)
	kb := components.Knockback.Get(e)
	anim := animationOf(e)

	var horizontal gamemath.Vec3
	moving := false
	knocked := kb.Vector.Len() > cfg.Combat.KnockbackEpsilon

	if knocked {
		horizontal = kb.Vector.Scale(dt)
		kb.Vector = gamemath.DecayToward(kb.Vector, kb.Decay, dt)
	} else {
		kb.Vector = gamemath.Vec3{}
	}

	canMove := !knocked && !combo.InCombo
	if canMove {
		dir := gamemath.Vec3{X: input.MoveX, Z: input.MoveZ}
		if dir.Len() > 1 {
			dir = dir.Normalize()
		}
		if !dir.IsZero() {
			moving = true
			horizontal = dir.Scale(player.MoveSpeed * dt)
			if timers.AttackCooldown == 0 {
				tr.Yaw = gamemath.SlerpYaw(tr.Yaw, gamemath.YawTowards(dir), player.RotationSpeed*dt)
			}
		}

		if input.JumpPressed && player.JumpCount < player.MaxJumps {
			height := player.JumpHeight
			if player.JumpBoost > 0 {
				height *= player.JumpBoost
			}
			physics.VerticalSpeed = gamemath.JumpVelocity(height, physics.Gravity)
			physics.Grounded = false
			player.JumpCount++
			anim.SetBool("IsJumping", true)
		}
	}
	player.JumpBoost = 0

	applyGravity(physics, cfg.Player.GroundedVelocity, dt)
	contact := moveBody(e, horizontal.Add(gamemath.Vec3{Y: physics.VerticalSpeed * dt}))
	if contact.Grounded && contact.Category == tags.CategoryFloor {
		if player.JumpCount > 0 {
			anim.SetBool("IsJumping", false)
		}
		player.JumpCount = 0
	}
	return moving
}

func updatePlayerState(e *donburi.Entry, player *components.PlayerData, combo *components.ComboData, moving bool) {
	timers := components.CombatTimers.Get(e)
	switch {
	case combo.InCombo:
		player.State = components.PlayerFinisher
	case timers.AttackCooldown > 0:
		player.State = components.PlayerAttacking
	case moving:
		player.State = components.PlayerMoving
	default:
		player.State = components.PlayerIdle
	}
	animationOf(e).SetBool("IsRunning", moving)
}
