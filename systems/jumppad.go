package systems

import (
	"github.com/automoto/riftarena/components"
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/automoto/riftarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateJumpPads boosts the next jump of a player standing on a pad. It
// runs before the player update so the boost applies to this tick's jump.
func UpdateJumpPads(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	player := livingPlayer(ecs.World)

	tags.JumpPad.Each(ecs.World, func(e *donburi.Entry) {
		pad := components.JumpPad.Get(e)
		pad.Remaining = gamemath.CountDown(pad.Remaining, dt)
		if player == nil || pad.Remaining > 0 {
			return
		}
		if !components.Input.Get(player).JumpPressed || !components.Physics.Get(player).Grounded {
			return
		}
		padPos := components.Transform.Get(e).Position
		if gamemath.HorizontalDistance(padPos, components.Transform.Get(player).Position) > pad.Radius {
			return
		}
		components.Player.Get(player).JumpBoost = pad.Multiplier
		pad.Remaining = pad.Cooldown
	})
}
