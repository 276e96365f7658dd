package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HealthData is mutated only by the damage pipeline in systems/damage.go.
type HealthData struct {
	Current float64
	Max     float64
	Dead    bool

	InvulnWindow float64 // Seconds of invulnerability started by each landed hit
	RegenRate    float64 // Health per second, 0 disables
	RegenDelay   float64 // Seconds without damage before regeneration starts
	SinceDamage  float64

	HitTrigger        string
	DeathTrigger      string
	CollisionOffDelay float64 // Seconds from death until contacts stop
	RemovalDelay      float64 // Seconds from death until removal, 0 keeps the entity
	Deactivate        bool    // Keep the entry after RemovalDelay instead of removing it
}

// HealthBarData is the tweened value an external health bar displays.
type HealthBarData struct {
	Displayed float64
	Visible   bool
	Tween     *gween.Tween
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()
