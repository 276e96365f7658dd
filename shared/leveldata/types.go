// Package leveldata parses arena layouts from TMX files. It has no
// dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

import "github.com/automoto/riftarena/shared/gamemath"

// Arena holds everything the simulation needs from a TMX arena layout, in
// world units. The arena rectangle's centre is the world origin on the
// ground plane.
type Arena struct {
	Name string

	MinX, MaxX float64
	MinZ, MaxZ float64
	FloorY     float64

	// Target point for boss projectiles
	Center gamemath.Vec3

	PlayerSpawn gamemath.Vec3
	EnemySpawns []EnemySpawn
	Boss        *BossSpawn
	JumpPads    []JumpPadSpawn
}

// EnemySpawn places one enemy of the named type.
type EnemySpawn struct {
	Position gamemath.Vec3
	Type     string
}

// BossSpawn places the boss.
type BossSpawn struct {
	Position gamemath.Vec3
	Yaw      float64
}

// JumpPadSpawn places a jump pad. A zero Multiplier uses the configured one.
type JumpPadSpawn struct {
	Position   gamemath.Vec3
	Multiplier float64
}
