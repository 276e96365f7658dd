package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks the damage flash. Intensity fades from 1 to 0.
type FlashData struct {
	Intensity float32
	Tween     *gween.Tween
}

var Flash = donburi.NewComponentType[FlashData]()
