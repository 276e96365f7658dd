package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/riftarena/components"
	cfg "github.com/automoto/riftarena/config"
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/automoto/riftarena/shared/leveldata"
	"github.com/automoto/riftarena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testStep = 1.0 / 60

// recordingAnimator records everything the controllers ask of it.
type recordingAnimator struct {
	triggers []string
	bools    map[string]bool
	clips    []string
}

func newRecordingAnimator() *recordingAnimator {
	return &recordingAnimator{bools: make(map[string]bool)}
}

func (a *recordingAnimator) SetTrigger(name string) { a.triggers = append(a.triggers, name) }

func (a *recordingAnimator) SetBool(name string, value bool) { a.bools[name] = value }

func (a *recordingAnimator) Play(clip string) { a.clips = append(a.clips, clip) }

func (a *recordingAnimator) ReportsImpacts() bool { return true }

func (a *recordingAnimator) count(trigger string) int {
	n := 0
	for _, t := range a.triggers {
		if t == trigger {
			n++
		}
	}
	return n
}

// newTestECS returns a world with a clock and restores the config tables
// when the test ends.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e, testStep)
	return e
}

// newTestArena adds a 40x40 arena with a contact space centred on the
// origin.
func newTestArena(t *testing.T, e *ecs.ECS, seed int64) *components.ArenaData {
	t.Helper()
	layout := &leveldata.Arena{
		Name: "test",
		MinX: -20, MaxX: 20,
		MinZ: -20, MaxZ: 20,
		Center: gamemath.V3(0, 1.5, 0),
	}
	entry := factory.CreateArena(e, layout, rand.New(rand.NewSource(seed)))
	arena := components.Arena.Get(entry)
	factory.CreateSpace(e, arena)
	return arena
}

var tickOrder = []func(*ecs.ECS){
	UpdateClock,
	UpdateCombatTimers,
	UpdateHealth,
	UpdateJumpPads,
	UpdatePlayer,
	UpdateEnemies,
	UpdateBosses,
	UpdateProjectiles,
	UpdateArena,
	UpdateObjects,
	UpdateDeaths,
	UpdateEffects,
	DispatchEvents,
}

func tick(e *ecs.ECS) {
	for _, system := range tickOrder {
		system(e)
	}
}

// advance runs whole ticks covering seconds.
func advance(e *ecs.ECS, seconds float64) {
	n := int(math.Round(seconds / testStep))
	for i := 0; i < n; i++ {
		tick(e)
	}
}

// setClock moves simulation time without running any system.
func setClock(e *ecs.ECS, elapsed float64) {
	entry, _ := components.Clock.First(e.World)
	components.Clock.Get(entry).Elapsed = elapsed
}

func setInput(player *donburi.Entry, in components.InputData) {
	components.Input.SetValue(player, in)
}

func healthOf(e *donburi.Entry) float64 {
	return components.Health.Get(e).Current
}
