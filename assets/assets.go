package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/automoto/riftarena/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

var (
	arenasOnce sync.Once
	arenas     map[string]*leveldata.Arena
	arenaNames []string
	arenasErr  error
)

// FS exposes the embedded asset tree.
func FS() fs.FS {
	return assetFS
}

// ArenaNames lists the embedded arena layouts in sorted order.
func ArenaNames() ([]string, error) {
	loadArenas()
	return arenaNames, arenasErr
}

// LoadArena returns the embedded arena layout with the given stem name.
func LoadArena(name string) (*leveldata.Arena, error) {
	loadArenas()
	if arenasErr != nil {
		return nil, arenasErr
	}
	a, ok := arenas[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown arena %q", name)
	}
	return a, nil
}

func loadArenas() {
	arenasOnce.Do(func() {
		arenas, arenaNames, arenasErr = leveldata.LoadAllArenas(assetFS, "levels")
	})
}
