package systems

import (
	"errors"
	"testing"

	"github.com/automoto/riftarena/components"
	cfg "github.com/automoto/riftarena/config"
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/automoto/riftarena/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{ err error }

func (s failingStore) LoadItem(string) ([]byte, error) { return nil, s.err }

func (s failingStore) SaveItem(string, []byte) error { return s.err }

func TestTuningRoundTripThroughStore(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, gamemath.Vec3{}, nil, nil)
	enemy := factory.CreateEnemy(e, gamemath.Vec3{}, "brute", nil, nil)
	boss := factory.CreateBoss(e, gamemath.Vec3{}, 0, gamemath.Vec3{}, nil, nil)

	SetAttackCooldown(player, 0.5)
	SetComboThreshold(player, 3)
	SetEnemyBPM(enemy, 48)
	SetBossAttackCooldown(boss, 2)

	store := NewMemoryStore()
	captured := CaptureTuning(e.World)
	require.NoError(t, SaveTuning(store, &captured))

	loaded, err := LoadTuning(store)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.NotNil(t, loaded.AttackCooldown)
	assert.Equal(t, 0.5, *loaded.AttackCooldown)
	assert.Equal(t, 3, *loaded.ComboThreshold)
	assert.Equal(t, 48.0, loaded.EnemyBPM["brute"])
	assert.Equal(t, 35.0, loaded.EnemyBPM["grunt"])
	assert.Equal(t, 2.0, *loaded.BossAttackCooldown)

	// A fresh session picks the saved values up for new and live entities
	next := newTestECS(t)
	livePlayer := factory.CreatePlayer(next, gamemath.Vec3{}, nil, nil)
	ApplyTuning(next.World, loaded)
	newEnemy := factory.CreateEnemy(next, gamemath.Vec3{}, "brute", nil, nil)

	assert.Equal(t, 0.5, components.Player.Get(livePlayer).AttackCooldown)
	assert.Equal(t, 3, components.Player.Get(livePlayer).ComboThreshold)
	assert.Equal(t, 48.0, components.Enemy.Get(newEnemy).BPM)
	assert.Equal(t, 2.0, cfg.Boss.AttackCooldown)
}

func TestLoadTuningEmptyStore(t *testing.T) {
	loaded, err := LoadTuning(NewMemoryStore())
	assert.NoError(t, err)
	assert.Nil(t, loaded)

	loaded, err = LoadTuning(nil)
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestTuningStoreErrorsAreWrapped(t *testing.T) {
	boom := errors.New("disk full")
	_, err := LoadTuning(failingStore{boom})
	assert.ErrorIs(t, err, boom)

	err = SaveTuning(failingStore{boom}, &SavedTuning{})
	assert.ErrorIs(t, err, boom)
}

func TestLoadTuningRejectsCorruptData(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SaveItem(tuningKey, []byte("{not json")))

	_, err := LoadTuning(store)
	assert.Error(t, err)
}

func TestApplyTuningSkipsInvalidValues(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, gamemath.Vec3{}, nil, nil)

	ApplyTuning(e.World, &SavedTuning{
		AttackCooldown:     ptr(-1.0),
		ComboThreshold:     ptr(0),
		EnemyBPM:           map[string]float64{"grunt": -5, "dragon": 60},
		BossAttackCooldown: ptr(-2.0),
	})

	assert.Equal(t, 0.7, components.Player.Get(player).AttackCooldown)
	assert.Equal(t, 4, components.Player.Get(player).ComboThreshold)
	assert.Equal(t, 35.0, cfg.Enemy.Types["grunt"].BPM)
	assert.NotContains(t, cfg.Enemy.Types, "dragon")
	assert.Equal(t, 3.0, cfg.Boss.AttackCooldown)
}

func TestApplyTuningLeavesMissingKeysAlone(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, gamemath.Vec3{}, nil, nil)
	boss := factory.CreateBoss(e, gamemath.Vec3{}, 0, gamemath.Vec3{}, nil, nil)

	store := NewMemoryStore()
	require.NoError(t, store.SaveItem(tuningKey, []byte(`{"comboThreshold":2}`)))
	loaded, err := LoadTuning(store)
	require.NoError(t, err)
	assert.Nil(t, loaded.AttackCooldown)
	assert.Nil(t, loaded.BossAttackCooldown)

	ApplyTuning(e.World, loaded)

	assert.Equal(t, 2, components.Player.Get(player).ComboThreshold)
	assert.Equal(t, 0.7, components.Player.Get(player).AttackCooldown)
	assert.Equal(t, 0.7, cfg.Player.AttackCooldown)
	assert.Equal(t, 3.0, components.Boss.Get(boss).AttackCooldown)
	assert.Equal(t, 3.0, cfg.Boss.AttackCooldown)
}

func TestSaveTuningOmitsUnsetKeys(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, SaveTuning(store, &SavedTuning{ComboThreshold: ptr(5)}))

	data, err := store.LoadItem(tuningKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"comboThreshold":5}`, string(data))
}

func ptr[T any](v T) *T { return &v }
