package components

import (
	"github.com/automoto/riftarena/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string
	TypeConfig *config.EnemyTypeConfig

	MoveSpeed      float64
	AttackDistance float64
	AttackForce    float64
	BPM            float64
	KnockForce     float64
	ContactDamage  float64
	TurnRate       float64

	CanAttack   bool
	AttackCount int  // Id of the latest lunge
	LungeLanded bool // The current lunge already dealt its damage
}

var Enemy = donburi.NewComponentType[EnemyData]()
