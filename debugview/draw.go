package debugview

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/riftarena/components"
	cfg "github.com/automoto/riftarena/config"
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/automoto/riftarena/systems"
	"github.com/automoto/riftarena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	floorColor   = color.RGBA{R: 30, G: 30, B: 40, A: 255}
	boundsColor  = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	deadColor    = color.RGBA{R: 70, G: 70, B: 70, A: 255}
	healthBarBg  = color.RGBA{R: 90, G: 0, B: 0, A: 255}
	barWidth     = float32(32)
	barHeight    = float32(4)
	headingScale = float32(1.5)
)

// View projects the arena floor onto the screen, +Z up, centred on the
// arena centre.
type View struct {
	center gamemath.Vec3
	scale  float64
	width  int
	height int
}

func (v View) toScreen(p gamemath.Vec3) (float32, float32) {
	x := float64(v.width)/2 + (p.X-v.center.X)*v.scale
	y := float64(v.height)/2 - (p.Z-v.center.Z)*v.scale
	return float32(x), float32(y)
}

// Draw renders the arena top-down: bounds, pads, pickups, fighters with
// their heading and health, and projectiles.
func Draw(ecs *ecs.ECS, screen *ebiten.Image, showDebug bool) {
	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := View{center: arena.Center, scale: cfg.C.Scale, width: width, height: height}

	x0, y0 := view.toScreen(gamemath.Vec3{X: arena.MinX, Z: arena.MaxZ})
	x1, y1 := view.toScreen(gamemath.Vec3{X: arena.MaxX, Z: arena.MinZ})
	vector.FillRect(screen, x0, y0, x1-x0, y1-y0, floorColor, false)
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 2, boundsColor, false)

	tags.JumpPad.Each(ecs.World, func(e *donburi.Entry) {
		pad := components.JumpPad.Get(e)
		x, y := view.toScreen(components.Transform.Get(e).Position)
		c := cfg.LightBlue
		if pad.Remaining > 0 {
			c = boundsColor
		}
		vector.StrokeCircle(screen, x, y, float32(pad.Radius*view.scale), 2, c, true)
	})

	tags.Pickup.Each(ecs.World, func(e *donburi.Entry) {
		x, y := view.toScreen(components.Transform.Get(e).Position)
		vector.FillCircle(screen, x, y, 5, cfg.Yellow, true)
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		drawFighter(screen, view, e, cfg.Red)
	})
	tags.Boss.Each(ecs.World, func(e *donburi.Entry) {
		drawFighter(screen, view, e, cfg.Purple)
	})
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		drawFighter(screen, view, e, cfg.Blue)
	})

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		x, y := view.toScreen(components.Transform.Get(e).Position)
		vector.FillCircle(screen, x, y, float32(math.Max(p.Radius*view.scale, 2)), cfg.Orange, true)
	})

	if showDebug {
		drawStatus(ecs, screen)
	}
}

func drawFighter(screen *ebiten.Image, view View, e *donburi.Entry, base color.RGBA) {
	t := components.Transform.Get(e)
	x, y := view.toScreen(t.Position)

	radius := float32(0.5 * view.scale)
	if e.HasComponent(components.Collider) {
		radius = float32(components.Collider.Get(e).Radius * view.scale)
	}

	c := base
	if systems.IsDead(e) {
		c = deadColor
	} else if flash := systems.FlashIntensity(e); flash > 0 {
		c = lerpColor(base, cfg.White, flash)
	}
	vector.FillCircle(screen, x, y, radius, c, true)

	fwd := t.Forward()
	hx := x + float32(fwd.X)*radius*headingScale
	hy := y - float32(fwd.Z)*radius*headingScale
	vector.StrokeLine(screen, x, y, hx, hy, 2, cfg.White, true)

	if !e.HasComponent(components.HealthBar) || !components.HealthBar.Get(e).Visible {
		return
	}
	bx := x - barWidth/2
	by := y - radius - barHeight - 4
	vector.FillRect(screen, bx, by, barWidth, barHeight, healthBarBg, false)
	vector.FillRect(screen, bx, by, barWidth*float32(systems.DisplayedHealthFraction(e)), barHeight, cfg.Green, false)
}

func drawStatus(ecs *ecs.ECS, screen *ebiten.Image) {
	line := 0
	printf := func(format string, args ...any) {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(format, args...), 8, 8+line*16)
		line++
	}

	printf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS())
	if player, ok := tags.Player.First(ecs.World); ok {
		p := components.Player.Get(player)
		combo := components.Combo.Get(player)
		hp := components.Health.Get(player)
		printf("player %s hp %.0f/%.0f combo %d", p.State, hp.Current, hp.Max, combo.StrikesLanded)
	}
	if boss, ok := tags.Boss.First(ecs.World); ok {
		rt := components.BossRuntime.Get(boss)
		hp := components.Health.Get(boss)
		printf("boss %s hp %.0f/%.0f attacks %d", rt.Phase, hp.Current, hp.Max, rt.AttacksStarted)
	}
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		ai := components.AIState.Get(e)
		hp := components.Health.Get(e)
		printf("enemy %v %s hp %.0f", e.Entity(), ai.Kind, hp.Current)
	})
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}
