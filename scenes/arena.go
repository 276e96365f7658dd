package scenes

import (
	"log"
	"math/rand"
	"sync"

	"github.com/automoto/riftarena/components"
	cfg "github.com/automoto/riftarena/config"
	"github.com/automoto/riftarena/shared/leveldata"
	"github.com/automoto/riftarena/systems"
	"github.com/automoto/riftarena/systems/factory"
	"github.com/automoto/riftarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AnimatorFunc supplies the animation collaborator for a spawned entity.
// kind is "player", "boss", or an enemy type name. Returning nil is fine.
type AnimatorFunc func(kind string) components.Animator

// ArenaOptions configures an ArenaScene.
type ArenaOptions struct {
	Seed      int64
	Step      float64 // Seconds per tick, 0 uses the configured tick rate
	Animators AnimatorFunc
}

// ArenaScene runs one arena fight: the player, the enemies and the boss
// from a layout, ticked in a fixed order.
type ArenaScene struct {
	ecs     *ecs.ECS
	layout  *leveldata.Arena
	options ArenaOptions
	once    sync.Once

	player *donburi.Entry
	boss   *donburi.Entry

	onDeath      func(donburi.World, components.DeathEvent)
	onBossAttack func(donburi.World, components.BossAttackEvent)
	onPickup     func(donburi.World, components.PickupUsedEvent)
}

func NewArenaScene(layout *leveldata.Arena, options ArenaOptions) *ArenaScene {
	return &ArenaScene{layout: layout, options: options}
}

// Update runs one tick.
func (s *ArenaScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

// Advance runs whole ticks covering seconds. Pressed inputs only count on
// the first of them.
func (s *ArenaScene) Advance(seconds float64) {
	s.once.Do(s.configure)
	step := s.step()
	for elapsed := 0.0; elapsed+step/2 < seconds; elapsed += step {
		s.ecs.Update()
		s.clearPressed()
	}
}

// SetInput replaces the player's input for the next tick.
func (s *ArenaScene) SetInput(in components.InputData) {
	s.once.Do(s.configure)
	if s.player == nil || !s.player.Valid() {
		return
	}
	components.Input.SetValue(s.player, in)
}

func (s *ArenaScene) ECS() *ecs.ECS {
	s.once.Do(s.configure)
	return s.ecs
}

func (s *ArenaScene) Player() *donburi.Entry {
	s.once.Do(s.configure)
	return s.player
}

func (s *ArenaScene) Boss() *donburi.Entry {
	s.once.Do(s.configure)
	return s.boss
}

// Finished reports whether the fight is over, either way.
func (s *ArenaScene) Finished() bool {
	s.once.Do(s.configure)
	if s.player == nil || !s.player.Valid() || systems.IsDead(s.player) {
		return true
	}
	return s.boss != nil && systems.IsDead(s.boss)
}

// Close drops the scene's event subscriptions.
func (s *ArenaScene) Close() {
	if s.ecs == nil {
		return
	}
	components.DeathEvents.Unsubscribe(s.ecs.World, s.onDeath)
	components.BossAttackEvents.Unsubscribe(s.ecs.World, s.onBossAttack)
	components.PickupUsedEvents.Unsubscribe(s.ecs.World, s.onPickup)
}

func (s *ArenaScene) step() float64 {
	if s.options.Step > 0 {
		return s.options.Step
	}
	return 1 / cfg.Combat.TickRate
}

func (s *ArenaScene) clearPressed() {
	if s.player == nil || !s.player.Valid() {
		return
	}
	in := components.Input.Get(s.player)
	in.AttackPressed = false
	in.JumpPressed = false
	in.InteractPressed = false
}

func (s *ArenaScene) animator(kind string) components.Animator {
	if s.options.Animators == nil {
		return nil
	}
	return s.options.Animators(kind)
}

func (s *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateCombatTimers)
	ecs.AddSystem(systems.UpdateHealth)
	ecs.AddSystem(systems.UpdateJumpPads)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdateBosses)
	ecs.AddSystem(systems.UpdateProjectiles)
	ecs.AddSystem(systems.UpdateArena)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateDeaths)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.DispatchEvents)

	s.ecs = ecs

	rng := rand.New(rand.NewSource(s.options.Seed))
	factory.CreateClock(s.ecs, s.options.Step)
	arenaEntry := factory.CreateArena(s.ecs, s.layout, rng)
	arena := components.Arena.Get(arenaEntry)
	factory.CreateSpace(s.ecs, arena)
	body := systems.NewFloorBody(arena)

	for _, pad := range s.layout.JumpPads {
		factory.CreateJumpPad(s.ecs, pad.Position, pad.Multiplier)
	}
	s.player = factory.CreatePlayer(s.ecs, s.layout.PlayerSpawn, s.animator("player"), body)
	for _, spawn := range s.layout.EnemySpawns {
		factory.CreateEnemy(s.ecs, spawn.Position, spawn.Type, s.animator(spawn.Type), body)
	}
	if b := s.layout.Boss; b != nil {
		s.boss = factory.CreateBoss(s.ecs, b.Position, b.Yaw, s.layout.Center, rng, s.animator("boss"))
	}

	s.subscribe()
	log.Printf("[arena] %s ready: %d enemies, boss=%v, seed %d",
		s.layout.Name, len(s.layout.EnemySpawns), s.boss != nil, s.options.Seed)
}

func (s *ArenaScene) subscribe() {
	s.onDeath = func(w donburi.World, ev components.DeathEvent) {
		if ev.Entity == nil || !ev.Entity.Valid() {
			return
		}
		switch {
		case ev.Entity.HasComponent(tags.Player):
			log.Printf("[arena] player died")
		case ev.Entity.HasComponent(tags.Boss):
			log.Printf("[arena] boss defeated")
		default:
			log.Printf("[arena] enemy %v died", ev.Entity.Entity())
		}
	}
	s.onBossAttack = func(w donburi.World, ev components.BossAttackEvent) {
		log.Printf("[arena] boss attack %s", ev.AttackID)
	}
	s.onPickup = func(w donburi.World, ev components.PickupUsedEvent) {
		log.Printf("[arena] pickup used, landed=%v", ev.Landed)
	}
	components.DeathEvents.Subscribe(s.ecs.World, s.onDeath)
	components.BossAttackEvents.Subscribe(s.ecs.World, s.onBossAttack)
	components.PickupUsedEvents.Subscribe(s.ecs.World, s.onPickup)
}
