package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical arena action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveForward // +Z, drawn toward the top of the debug view
	ActionMoveBack
	ActionJump
	ActionAttack
	ActionInteract
	ActionToggleDebug
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding lists the keys and standard gamepad buttons bound to one
// action. Any of them triggers it.
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings       map[ActionID]InputBinding
	AnalogDeadzone float64 // Left stick magnitude ignored on each axis, 0 to 1
}

// Input is the global input configuration
var Input InputConfig

func keys(k ...ebiten.Key) []ebiten.Key { return k }

func buttons(b ...ebiten.StandardGamepadButton) []ebiten.StandardGamepadButton { return b }

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:    {keys(ebiten.KeyLeft, ebiten.KeyA), buttons(ebiten.StandardGamepadButtonLeftLeft)},
			ActionMoveRight:   {keys(ebiten.KeyRight, ebiten.KeyD), buttons(ebiten.StandardGamepadButtonLeftRight)},
			ActionMoveForward: {keys(ebiten.KeyUp, ebiten.KeyW), buttons(ebiten.StandardGamepadButtonLeftTop)},
			ActionMoveBack:    {keys(ebiten.KeyDown, ebiten.KeyS), buttons(ebiten.StandardGamepadButtonLeftBottom)},

			// Face buttons: A / Cross jumps, X / Square attacks, Y / Triangle interacts
			ActionJump:     {keys(ebiten.KeySpace), buttons(ebiten.StandardGamepadButtonRightBottom)},
			ActionAttack:   {keys(ebiten.KeyJ, ebiten.KeyZ), buttons(ebiten.StandardGamepadButtonRightLeft)},
			ActionInteract: {keys(ebiten.KeyE), buttons(ebiten.StandardGamepadButtonRightTop)},

			ActionToggleDebug: {Keys: keys(ebiten.KeyF1)},
			ActionQuit:        {keys(ebiten.KeyEscape), buttons(ebiten.StandardGamepadButtonCenterRight)},
		},
	}
}
