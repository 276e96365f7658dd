package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// HitEvent is published when damage lands and the target survives.
type HitEvent struct {
	Target    *donburi.Entry
	Amount    float64
	Remaining float64
}

// DeathEvent is published once per death.
type DeathEvent struct {
	Entity *donburi.Entry
}

// HealthChangedEvent is published after any change to Current.
type HealthChangedEvent struct {
	Entity   *donburi.Entry
	Current  float64
	Max      float64
	Fraction float64
}

// FinisherEvent is published when a combo reaches its threshold.
type FinisherEvent struct {
	Player *donburi.Entry
}

// BossAttackEvent is published when the boss commits to an attack.
type BossAttackEvent struct {
	Boss     *donburi.Entry
	AttackID string
}

// PickupUsedEvent is published when an arena pickup is consumed.
type PickupUsedEvent struct {
	Pickup *donburi.Entry
	Landed bool
}

var (
	HitEvents           = events.NewEventType[HitEvent]()
	DeathEvents         = events.NewEventType[DeathEvent]()
	HealthChangedEvents = events.NewEventType[HealthChangedEvent]()
	FinisherEvents      = events.NewEventType[FinisherEvent]()
	BossAttackEvents    = events.NewEventType[BossAttackEvent]()
	PickupUsedEvents    = events.NewEventType[PickupUsedEvent]()
)
