package systems

import (
	"log"
	"math"

	"github.com/automoto/riftarena/components"
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// The setters below are the only way to change combat timing at runtime.
// Invalid values are logged and ignored. A running countdown keeps its
// remaining time; the new value applies from the next restart.

func SetAttackCooldown(player *donburi.Entry, seconds float64) bool {
	if !validEntry(player, components.Player) || !validDuration(seconds, "attack cooldown") {
		return false
	}
	components.Player.Get(player).AttackCooldown = seconds
	return true
}

func SetComboThreshold(player *donburi.Entry, strikes int) bool {
	if !validEntry(player, components.Player) {
		return false
	}
	if strikes < 1 {
		log.Printf("[tuning] combo threshold %d must be at least 1", strikes)
		return false
	}
	components.Player.Get(player).ComboThreshold = strikes
	return true
}

// SetEnemyBPM changes how many attacks per minute an enemy may start.
func SetEnemyBPM(enemy *donburi.Entry, bpm float64) bool {
	if !validEntry(enemy, components.Enemy) {
		return false
	}
	if math.IsNaN(bpm) || bpm <= 0 {
		log.Printf("[tuning] enemy bpm %v must be positive", bpm)
		return false
	}
	components.Enemy.Get(enemy).BPM = bpm
	return true
}

// SetBossAttackCooldown changes the shared gate between boss attacks. The
// gate currently counting is updated too.
func SetBossAttackCooldown(boss *donburi.Entry, seconds float64) bool {
	if !validEntry(boss, components.Boss) || !validDuration(seconds, "boss attack cooldown") {
		return false
	}
	components.Boss.Get(boss).AttackCooldown = seconds
	rt := components.BossRuntime.Get(boss)
	rt.Cooldown = seconds
	return true
}

// EnemyAttackInterval is the seconds between lunges at the enemy's BPM.
func EnemyAttackInterval(enemy *donburi.Entry) float64 {
	if !validEntry(enemy, components.Enemy) {
		return 0
	}
	return gamemath.BeatInterval(components.Enemy.Get(enemy).BPM)
}

func validEntry(e *donburi.Entry, c donburi.IComponentType) bool {
	return e != nil && e.Valid() && e.HasComponent(c)
}

func validDuration(seconds float64, name string) bool {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		log.Printf("[tuning] %s %v must be a non-negative duration", name, seconds)
		return false
	}
	return true
}
