package components

import (
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData maps the arena ground plane onto a resolv space. World X maps
// to space X and world Z to space Y, shifted by the origin so every arena
// position lands on a non-negative cell.
type SpaceData struct {
	*resolv.Space
	OriginX float64
	OriginZ float64
}

// ToSpace converts a world position to space coordinates.
func (s *SpaceData) ToSpace(p gamemath.Vec3) (x, y float64) {
	return p.X + s.OriginX, p.Z + s.OriginZ
}

var Space = donburi.NewComponentType[SpaceData]()
