package systems

import (
	"github.com/automoto/riftarena/components"
	cfg "github.com/automoto/riftarena/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances damage flashes and health bar tweens.
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(deltaTime(ecs.World))
	updateFlashEffects(ecs, dt)
	updateHealthBars(ecs, dt)
}

func updateFlashEffects(ecs *ecs.ECS, dt float32) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Tween == nil {
			return
		}
		v, done := flash.Tween.Update(dt)
		flash.Intensity = v
		if done {
			flash.Intensity = 0
			flash.Tween = nil
		}
	})
}

func updateHealthBars(ecs *ecs.ECS, dt float32) {
	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		bar := components.HealthBar.Get(e)
		if bar.Tween == nil {
			return
		}
		v, done := bar.Tween.Update(dt)
		bar.Displayed = float64(v)
		if done {
			bar.Tween = nil
		}
	})
}

// startFlash restarts the damage flash on e.
func startFlash(e *donburi.Entry) {
	if !e.HasComponent(components.Flash) || cfg.Combat.DamageFlash <= 0 {
		return
	}
	flash := components.Flash.Get(e)
	flash.Intensity = 1
	flash.Tween = gween.New(1, 0, float32(cfg.Combat.DamageFlash), ease.Linear)
}

// retargetHealthBar tweens the displayed fraction from its current value to
// fraction.
func retargetHealthBar(e *donburi.Entry, fraction float64) {
	if !e.HasComponent(components.HealthBar) {
		return
	}
	bar := components.HealthBar.Get(e)
	if cfg.Combat.HealthBarTween <= 0 {
		bar.Displayed = fraction
		bar.Tween = nil
		return
	}
	bar.Tween = gween.New(float32(bar.Displayed), float32(fraction), float32(cfg.Combat.HealthBarTween), ease.OutQuad)
}

// DisplayedHealthFraction is the tweened value a health bar should draw.
func DisplayedHealthFraction(e *donburi.Entry) float64 {
	if e == nil || !e.Valid() || !e.HasComponent(components.HealthBar) {
		return HealthFraction(e)
	}
	return components.HealthBar.Get(e).Displayed
}

// FlashIntensity is the damage flash strength in [0, 1].
func FlashIntensity(e *donburi.Entry) float64 {
	if e == nil || !e.Valid() || !e.HasComponent(components.Flash) {
		return 0
	}
	return float64(components.Flash.Get(e).Intensity)
}
