package components

import (
	"math/rand"

	"github.com/automoto/riftarena/config"
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/yohamta/donburi"
)

type BossData struct {
	Attacks        []config.AttackDefinition
	AttackCooldown float64
	IdleDuration   float64
	TurnRate       float64

	// Projectiles from every attack fly toward this point.
	ArenaCenter gamemath.Vec3
	// Nil disables projectile spawning.
	Projectile *config.ProjectileConfig

	Rand *rand.Rand
}

var Boss = donburi.NewComponentType[BossData]()

type BossPhase int

const (
	BossReady BossPhase = iota
	BossWindup
	BossRecover
	BossDead
)

func (p BossPhase) String() string {
	switch p {
	case BossWindup:
		return "Windup"
	case BossRecover:
		return "Recover"
	case BossDead:
		return "Dead"
	default:
		return "Ready"
	}
}

// BossRuntimeData is the resumable attack sequence. Phase and Elapsed are
// enough to continue the sequence on the next tick.
type BossRuntimeData struct {
	Phase            BossPhase
	Elapsed          float64 // Time spent in the current phase
	SinceAttackStart float64
	Cooldown         float64 // Gate for the next attack, restarted when one begins
	Current          int     // Index into BossData.Attacks, -1 when none
	AttacksStarted   int
	WarnedNoAttacks  bool
}

var BossRuntime = donburi.NewComponentType[BossRuntimeData]()
