package debugview

import (
	"github.com/automoto/riftarena/components"
	cfg "github.com/automoto/riftarena/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Input polls the keyboard and gamepads once per frame and turns the bound
// actions into the player's tick input.
type Input struct {
	current  [cfg.ActionCount]bool
	previous [cfg.ActionCount]bool
	stickX   float64
	stickZ   float64

	gamepadIDs []ebiten.GamepadID
}

func NewInput() *Input {
	return &Input{}
}

// Poll swaps the frame buffers and reads raw device state.
func (in *Input) Poll() {
	in.previous = in.current
	in.current = [cfg.ActionCount]bool{}
	in.stickX, in.stickZ = 0, 0

	in.gamepadIDs = ebiten.AppendGamepadIDs(in.gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.current[actionID] = true
			}
		}
		for _, gpID := range in.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					in.current[actionID] = true
				}
			}
		}
	}

	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range in.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h < -deadzone || h > deadzone {
			in.stickX = h
		}
		// Stick up is negative, world forward is +Z
		if v < -deadzone || v > deadzone {
			in.stickZ = -v
		}
	}
}

// Pressed reports whether the action is held this frame.
func (in *Input) Pressed(id cfg.ActionID) bool {
	return in.current[id]
}

// JustPressed reports whether the action went down this frame.
func (in *Input) JustPressed(id cfg.ActionID) bool {
	return in.current[id] && !in.previous[id]
}

// Player builds the tick input. Buttons are edge-triggered.
func (in *Input) Player() components.InputData {
	data := components.InputData{
		MoveX:           in.stickX,
		MoveZ:           in.stickZ,
		AttackPressed:   in.JustPressed(cfg.ActionAttack),
		JumpPressed:     in.JustPressed(cfg.ActionJump),
		InteractPressed: in.JustPressed(cfg.ActionInteract),
	}
	if in.current[cfg.ActionMoveLeft] {
		data.MoveX--
	}
	if in.current[cfg.ActionMoveRight] {
		data.MoveX++
	}
	if in.current[cfg.ActionMoveForward] {
		data.MoveZ++
	}
	if in.current[cfg.ActionMoveBack] {
		data.MoveZ--
	}
	data.MoveX = clampAxis(data.MoveX)
	data.MoveZ = clampAxis(data.MoveZ)
	return data
}

func clampAxis(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
