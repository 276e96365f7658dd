package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTablesMatchDefaults(t *testing.T) {
	parsed, err := Parse(EmbeddedTables())
	require.NoError(t, err)

	def := Defaults()
	assert.Equal(t, def.Player, parsed.Player)
	assert.Equal(t, def.Boss.Attacks, parsed.Boss.Attacks)
	assert.Equal(t, def.Enemy.Types["grunt"], parsed.Enemy.Types["grunt"])
	assert.Equal(t, def.Enemy.Types["brute"], parsed.Enemy.Types["brute"])
	assert.Equal(t, def.Combat, parsed.Combat)
}

func TestParseOverridesOnTopOfDefaults(t *testing.T) {
	parsed, err := Parse([]byte(`
player:
  attack_cooldown: 0.4
boss:
  attack_cooldown: 1.5
`))
	require.NoError(t, err)

	assert.Equal(t, 0.4, parsed.Player.AttackCooldown)
	assert.Equal(t, 1.5, parsed.Boss.AttackCooldown)
	assert.Equal(t, 4, parsed.Player.ComboThreshold)
	assert.Len(t, parsed.Boss.Attacks, 3)
}

func TestParseLayersEnemyTypeFields(t *testing.T) {
	parsed, err := Parse([]byte(`
enemy:
  types:
    grunt:
      bpm: 40
    stalker:
      move_speed: 3.5
`))
	require.NoError(t, err)

	def := Defaults().Enemy.Types["grunt"]
	grunt := parsed.Enemy.Types["grunt"]
	assert.Equal(t, 40.0, grunt.BPM)
	assert.Equal(t, def.ContactDamage, grunt.ContactDamage)
	assert.Equal(t, def.AttackForce, grunt.AttackForce)
	assert.Equal(t, def.KnockForce, grunt.KnockForce)
	assert.Equal(t, def.RemovalDelay, grunt.RemovalDelay)

	assert.Equal(t, Defaults().Enemy.Types["brute"], parsed.Enemy.Types["brute"])

	stalker := parsed.Enemy.Types["stalker"]
	assert.Equal(t, "stalker", stalker.Name)
	assert.Equal(t, 3.5, stalker.MoveSpeed)
	assert.Equal(t, def.ContactDamage, stalker.ContactDamage)
	assert.Equal(t, def.RemovalDelay, stalker.RemovalDelay)
}

func TestParseReadsCombatKnockbackEpsilon(t *testing.T) {
	parsed, err := Parse([]byte("combat:\n  knockback_epsilon: 0.3\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.3, parsed.Combat.KnockbackEpsilon)

	parsed, err = Parse([]byte("combat:\n  knockback_epsilon: -1\n"))
	require.NoError(t, err)
	assert.Equal(t, Defaults().Combat.KnockbackEpsilon, parsed.Combat.KnockbackEpsilon)
}

func TestParseRepairsInvalidValues(t *testing.T) {
	parsed, err := Parse([]byte(`
player:
  combo_threshold: 0
  attack_cooldown: -1
  gravity: 3
enemy:
  types:
    grunt:
      bpm: 0
      attack_distance: -2
arena:
  inner_radius: 12
  outer_radius: 10
`))
	require.NoError(t, err)

	def := Defaults()
	assert.Equal(t, def.Player.ComboThreshold, parsed.Player.ComboThreshold)
	assert.Equal(t, def.Player.AttackCooldown, parsed.Player.AttackCooldown)
	assert.Equal(t, def.Player.Gravity, parsed.Player.Gravity)

	grunt := parsed.Enemy.Types["grunt"]
	assert.Equal(t, "grunt", grunt.Name)
	assert.Equal(t, def.Enemy.Types["grunt"].BPM, grunt.BPM)
	assert.Equal(t, def.Enemy.Types["grunt"].AttackDistance, grunt.AttackDistance)

	assert.InDelta(t, 3.0, parsed.Arena.InnerRadius, 1e-9)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("player: [not, a, map"))
	assert.Error(t, err)
}

func TestLoadFileWrapsMissingFile(t *testing.T) {
	err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestAttackLookup(t *testing.T) {
	b := Defaults().Boss

	a, err := b.Attack("Attack3")
	require.NoError(t, err)
	assert.Len(t, a.SpawnPoints, 4)
	assert.Equal(t, 4.0, a.Windup)

	_, err = b.Attack("Tailswipe")
	assert.ErrorIs(t, err, ErrUnknownAttack)
}

func TestEnemyTypeFallsBackToDefault(t *testing.T) {
	e := Defaults().Enemy
	assert.Equal(t, "brute", e.EnemyType("brute").Name)
	assert.Equal(t, "grunt", e.EnemyType("wyvern").Name)
}

func TestCurrentIsACopy(t *testing.T) {
	t.Cleanup(Reset)

	cur := Current()
	cur.Boss.Attacks[0].Windup = 99
	cur.Enemy.Types["grunt"] = EnemyTypeConfig{Name: "changed"}

	assert.Equal(t, 3.0, Boss.Attacks[0].Windup)
	assert.Equal(t, "grunt", Enemy.Types["grunt"].Name)
}

func TestWatcherAppliesChangedTables(t *testing.T) {
	t.Cleanup(Reset)

	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "combat.yaml")
	staged := filepath.Join(dir, "combat.tmp")
	require.NoError(t, os.WriteFile(staged, []byte("boss:\n  attack_cooldown: 7\n"), 0o644))
	require.NoError(t, os.Rename(staged, path))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	var applied string
	require.Eventually(t, func() bool {
		name, err := w.Poll()
		if err != nil || name == "" {
			return false
		}
		applied = name
		return true
	}, 5*time.Second, 20*time.Millisecond)

	assert.Equal(t, path, applied)
	assert.Equal(t, 7.0, Boss.AttackCooldown)
}
