package components

import (
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/yohamta/donburi"
)

type TransformData struct {
	Position gamemath.Vec3
	Yaw      float64 // Heading around the vertical axis, 0 faces +Z
}

// Forward returns the ground-plane direction the entity faces.
func (t *TransformData) Forward() gamemath.Vec3 {
	return gamemath.Forward(t.Yaw)
}

var Transform = donburi.NewComponentType[TransformData]()
