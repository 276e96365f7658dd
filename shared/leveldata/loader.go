package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

var (
	ErrNoArena       = errors.New("leveldata: layout has no Arena object")
	ErrNoPlayerSpawn = errors.New("leveldata: layout has no PlayerSpawn object")
)

const defaultPixelsPerUnit = 32.0

// LoadArena parses a TMX arena layout. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	groups := make(map[string]*tiled.ObjectGroup, len(levelMap.ObjectGroups))
	for _, og := range levelMap.ObjectGroups {
		groups[og.Name] = og
	}

	// The arena rectangle fixes the coordinate transform for every other
	// object, so it is parsed first.
	bounds, ok := groups["Arena"]
	if !ok || len(bounds.Objects) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoArena)
	}
	ao := bounds.Objects[0]
	ppu := ao.Properties.GetFloat("pixelsPerUnit")
	if ppu <= 0 {
		ppu = defaultPixelsPerUnit
	}
	originX := ao.X + ao.Width/2
	originY := ao.Y + ao.Height/2
	floorY := ao.Properties.GetFloat("floorHeight")

	toWorld := func(o *tiled.Object, height float64) gamemath.Vec3 {
		x, y := o.X, o.Y
		if o.Width > 0 || o.Height > 0 {
			x += o.Width / 2
			y += o.Height / 2
		}
		return gamemath.Vec3{
			X: (x - originX) / ppu,
			Y: floorY + height,
			Z: (y - originY) / ppu,
		}
	}

	arena := &Arena{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MinX:   -ao.Width / 2 / ppu,
		MaxX:   ao.Width / 2 / ppu,
		MinZ:   -ao.Height / 2 / ppu,
		MaxZ:   ao.Height / 2 / ppu,
		FloorY: floorY,
		Center: toWorld(ao, ao.Properties.GetFloat("centerHeight")),
	}

	spawns, ok := groups["PlayerSpawn"]
	if !ok || len(spawns.Objects) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayerSpawn)
	}
	// Lowest spawnIndex wins
	sort.SliceStable(spawns.Objects, func(i, j int) bool {
		return spawns.Objects[i].Properties.GetInt("spawnIndex") < spawns.Objects[j].Properties.GetInt("spawnIndex")
	})
	arena.PlayerSpawn = toWorld(spawns.Objects[0], 0)

	if og, ok := groups["Enemies"]; ok {
		for _, o := range og.Objects {
			arena.EnemySpawns = append(arena.EnemySpawns, EnemySpawn{
				Position: toWorld(o, 0),
				Type:     o.Properties.GetString("enemyType"),
			})
		}
	}

	if og, ok := groups["Boss"]; ok && len(og.Objects) > 0 {
		o := og.Objects[0]
		pos := toWorld(o, o.Properties.GetFloat("height"))
		arena.Boss = &BossSpawn{
			Position: pos,
			Yaw:      gamemath.YawTowards(arena.Center.Sub(pos).Horizontal()),
		}
		if deg := o.Properties.GetFloat("yawDegrees"); deg != 0 {
			arena.Boss.Yaw = deg * math.Pi / 180
		}
	}

	if og, ok := groups["JumpPads"]; ok {
		for _, o := range og.Objects {
			arena.JumpPads = append(arena.JumpPads, JumpPadSpawn{
				Position:   toWorld(o, 0),
				Multiplier: o.Properties.GetFloat("multiplier"),
			})
		}
	}

	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		a, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[a.Name] = a
		names = append(names, a.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
