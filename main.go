package main

import (
	"flag"
	"log"

	"github.com/automoto/riftarena/assets"
	"github.com/automoto/riftarena/components"
	"github.com/automoto/riftarena/config"
	"github.com/automoto/riftarena/debugview"
	"github.com/automoto/riftarena/scenes"
	"github.com/automoto/riftarena/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const appName = "riftarena"

type Game struct {
	arenaName string
	verbose   bool

	scene   *scenes.ArenaScene
	input   *debugview.Input
	watcher *config.Watcher
	store   systems.TuningStore
	tuning  *systems.SavedTuning

	showDebug bool
}

func NewGame(arenaName string, verbose bool) (*Game, error) {
	g := &Game{
		arenaName: arenaName,
		verbose:   verbose,
		input:     debugview.NewInput(),
	}

	store, err := systems.OpenTuningStore(appName)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		store = systems.NewMemoryStore()
	}
	g.store = store
	if g.tuning, err = systems.LoadTuning(store); err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
	}

	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// restart builds a fresh fight from the current tables.
func (g *Game) restart() error {
	layout, err := assets.LoadArena(g.arenaName)
	if err != nil {
		return err
	}
	if g.scene != nil {
		g.tuning = g.capture()
		g.scene.Close()
	}
	g.scene = scenes.NewArenaScene(layout, scenes.ArenaOptions{
		Seed:      config.Debug.Seed,
		Animators: g.animator,
	})
	systems.ApplyTuning(g.scene.ECS().World, g.tuning)
	return nil
}

func (g *Game) animator(kind string) components.Animator {
	return &debugview.TriggerLog{Name: kind, Verbose: g.verbose}
}

func (g *Game) capture() *systems.SavedTuning {
	t := systems.CaptureTuning(g.scene.ECS().World)
	return &t
}

func (g *Game) Update() error {
	g.input.Poll()
	if g.input.JustPressed(config.ActionQuit) {
		return ebiten.Termination
	}
	if g.input.JustPressed(config.ActionToggleDebug) {
		g.showDebug = !g.showDebug
	}

	if g.watcher != nil {
		path, err := g.watcher.Poll()
		if err != nil {
			log.Printf("[config] reload failed: %v", err)
		} else if path != "" {
			log.Printf("[config] reloaded %s, restarting fight", path)
			if err := g.restart(); err != nil {
				return err
			}
		}
	}

	if g.scene.Finished() {
		return nil
	}
	g.scene.SetInput(g.input.Player())
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	debugview.Draw(g.scene.ECS(), screen, g.showDebug)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func (g *Game) Close() {
	if err := systems.SaveTuning(g.store, g.capture()); err != nil {
		log.Printf("Warning: Could not save tuning: %v", err)
	}
	g.scene.Close()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func main() {
	arenaName := flag.String("arena", "arena", "Arena layout to load")
	seed := flag.Int64("seed", 1, "Seed for boss attacks and pickup placement")
	watch := flag.String("watch", "", "Directory of YAML table overrides to hot reload")
	verbose := flag.Bool("verbose", false, "Log animation triggers")
	flag.Parse()

	if err := config.LoadEmbedded(); err != nil {
		log.Fatalf("Failed to load combat tables: %v", err)
	}
	config.Debug.Seed = *seed
	config.Debug.WatchConfig = *watch

	g, err := NewGame(*arenaName, *verbose)
	if err != nil {
		log.Fatal(err)
	}
	if config.Debug.WatchConfig != "" {
		if g.watcher, err = config.NewWatcher(config.Debug.WatchConfig); err != nil {
			log.Printf("Warning: Could not watch %s: %v", config.Debug.WatchConfig, err)
		}
	}
	defer g.Close()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Rift Arena")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
