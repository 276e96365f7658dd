package components

import "github.com/yohamta/donburi"

// InputData is written by the input collaborator before every tick. Pressed
// flags are edge-triggered: true only on the tick the button went down.
type InputData struct {
	MoveX float64
	MoveZ float64

	AttackPressed   bool
	JumpPressed     bool
	InteractPressed bool
}

var Input = donburi.NewComponentType[InputData]()
