package components

import (
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/yohamta/donburi"
)

type AIStateKind int

const (
	AIIdle AIStateKind = iota
	AIPursuing
	AIAttacking
	AIStaggered
	AIDead
)

func (k AIStateKind) String() string {
	switch k {
	case AIPursuing:
		return "Pursuing"
	case AIAttacking:
		return "Attacking"
	case AIStaggered:
		return "Staggered"
	case AIDead:
		return "Dead"
	default:
		return "Idle"
	}
}

// AIStateData is a tagged variant. AttackID is meaningful only while
// Attacking and Knockback only while Staggered.
type AIStateData struct {
	Kind      AIStateKind
	AttackID  int
	Knockback gamemath.Vec3
}

func (s *AIStateData) Idle() {
	*s = AIStateData{Kind: AIIdle}
}

func (s *AIStateData) Pursue() {
	*s = AIStateData{Kind: AIPursuing}
}

func (s *AIStateData) Attack(id int) {
	*s = AIStateData{Kind: AIAttacking, AttackID: id}
}

func (s *AIStateData) Stagger(knockback gamemath.Vec3) {
	*s = AIStateData{Kind: AIStaggered, Knockback: knockback}
}

func (s *AIStateData) Die() {
	*s = AIStateData{Kind: AIDead}
}

var AIState = donburi.NewComponentType[AIStateData]()
