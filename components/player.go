package components

import "github.com/yohamta/donburi"

type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerMoving
	PlayerAttacking
	PlayerFinisher
)

func (s PlayerState) String() string {
	switch s {
	case PlayerMoving:
		return "Moving"
	case PlayerAttacking:
		return "Attacking"
	case PlayerFinisher:
		return "ComboFinisher"
	default:
		return "Idle"
	}
}

type PlayerData struct {
	State PlayerState

	// Designer-tunable through systems.SetAttackCooldown and friends
	AttackCooldown   float64
	ComboThreshold   int
	ComboResetTime   float64
	FinisherDuration float64
	AttackRange      float64
	AttackReach      float64
	AttackDamage     float64
	LockOnRange      float64
	MoveSpeed        float64
	RotationSpeed    float64
	JumpHeight       float64
	MaxJumps         int

	JumpCount int
	JumpBoost float64 // Multiplier for the next jump, set by jump pads

	// When no animator reports impact frames the controller confirms its
	// own hits after HitDelay.
	AutoConfirm bool
	HitDelay    float64
	PendingHits []float64 // Seconds left until each accepted strike lands
}

var Player = donburi.NewComponentType[PlayerData]()

// ComboData tracks consecutive strikes toward a finisher.
type ComboData struct {
	StrikesLanded     int
	LastStrikeTime    float64
	UsingOffHand      bool
	InCombo           bool
	FinisherRemaining float64
}

var Combo = donburi.NewComponentType[ComboData]()
