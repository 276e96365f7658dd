package systems

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/riftarena/components"
	cfg "github.com/automoto/riftarena/config"
	"github.com/automoto/riftarena/tags"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

const tuningKey = "tuning"

// SavedTuning is the designer tuning stored on disk between sessions. A nil
// field was not saved and leaves the current value alone.
type SavedTuning struct {
	AttackCooldown     *float64           `json:"attackCooldown,omitempty"`
	ComboThreshold     *int               `json:"comboThreshold,omitempty"`
	EnemyBPM           map[string]float64 `json:"enemyBpm,omitempty"`
	BossAttackCooldown *float64           `json:"bossAttackCooldown,omitempty"`
}

// TuningStore is the key/value store tuning is saved to. *gdata.Manager
// satisfies it.
type TuningStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// OpenTuningStore opens the per-user gdata store for appName.
func OpenTuningStore(appName string) (TuningStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("persistence: open store: %w", err)
	}
	return m, nil
}

// MemoryStore keeps items in memory. It is used when no disk store is
// available.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

func (s *MemoryStore) LoadItem(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (s *MemoryStore) SaveItem(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = append([]byte(nil), data...)
	return nil
}

// LoadTuning returns the saved tuning, or nil when nothing was saved yet.
func LoadTuning(store TuningStore) (*SavedTuning, error) {
	if store == nil {
		return nil, nil
	}
	data, err := store.LoadItem(tuningKey)
	if err != nil {
		return nil, fmt.Errorf("persistence: load tuning: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var t SavedTuning
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("persistence: parse tuning: %w", err)
	}
	return &t, nil
}

func SaveTuning(store TuningStore, t *SavedTuning) error {
	if store == nil || t == nil {
		return nil
	}
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("persistence: encode tuning: %w", err)
	}
	if err := store.SaveItem(tuningKey, data); err != nil {
		return fmt.Errorf("persistence: save tuning: %w", err)
	}
	return nil
}

// CaptureTuning reads the live tuning from the world. Values for entities
// that are missing come from the active config tables.
func CaptureTuning(w donburi.World) SavedTuning {
	attackCooldown := cfg.Player.AttackCooldown
	comboThreshold := cfg.Player.ComboThreshold
	bossCooldown := cfg.Boss.AttackCooldown
	bpm := make(map[string]float64, len(cfg.Enemy.Types))
	for name, et := range cfg.Enemy.Types {
		bpm[name] = et.BPM
	}

	if player, ok := tags.Player.First(w); ok {
		p := components.Player.Get(player)
		attackCooldown = p.AttackCooldown
		comboThreshold = p.ComboThreshold
	}
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		bpm[enemy.TypeName] = enemy.BPM
	})
	if boss, ok := tags.Boss.First(w); ok {
		bossCooldown = components.Boss.Get(boss).AttackCooldown
	}
	return SavedTuning{
		AttackCooldown:     &attackCooldown,
		ComboThreshold:     &comboThreshold,
		EnemyBPM:           bpm,
		BossAttackCooldown: &bossCooldown,
	}
}

// ApplyTuning pushes saved tuning into the config tables and every live
// entity. Missing and invalid values are skipped.
func ApplyTuning(w donburi.World, t *SavedTuning) {
	if t == nil {
		return
	}

	attackCooldown := t.AttackCooldown != nil && validDuration(*t.AttackCooldown, "saved attack cooldown")
	if attackCooldown {
		cfg.Player.AttackCooldown = *t.AttackCooldown
	}
	comboThreshold := t.ComboThreshold != nil && *t.ComboThreshold >= 1
	if comboThreshold {
		cfg.Player.ComboThreshold = *t.ComboThreshold
	}
	bossCooldown := t.BossAttackCooldown != nil && validDuration(*t.BossAttackCooldown, "saved boss attack cooldown")
	if bossCooldown {
		cfg.Boss.AttackCooldown = *t.BossAttackCooldown
	}
	for name, bpm := range t.EnemyBPM {
		et, ok := cfg.Enemy.Types[name]
		if !ok || bpm <= 0 {
			log.Printf("[persistence] ignoring saved bpm %v for %q", bpm, name)
			continue
		}
		et.BPM = bpm
		cfg.Enemy.Types[name] = et
	}

	tags.Player.Each(w, func(e *donburi.Entry) {
		if attackCooldown {
			SetAttackCooldown(e, *t.AttackCooldown)
		}
		if comboThreshold {
			SetComboThreshold(e, *t.ComboThreshold)
		}
	})
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if bpm, ok := t.EnemyBPM[components.Enemy.Get(e).TypeName]; ok {
			SetEnemyBPM(e, bpm)
		}
	})
	if bossCooldown {
		tags.Boss.Each(w, func(e *donburi.Entry) {
			SetBossAttackCooldown(e, *t.BossAttackCooldown)
		})
	}
}
