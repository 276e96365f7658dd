package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/riftarena/components"
	cfg "github.com/automoto/riftarena/config"
	"github.com/automoto/riftarena/shared/gamemath"
	"github.com/automoto/riftarena/systems/factory"
	"github.com/automoto/riftarena/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type bossAttack struct {
	id string
	at float64
}

func countProjectiles(w donburi.World) int {
	n := 0
	tags.Projectile.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestBossAttackOrderFollowsSeed(t *testing.T) {
	e := newTestECS(t)
	anim := newRecordingAnimator()
	factory.CreateBoss(e, gamemath.V3(0, 0, -9), 0, gamemath.V3(0, 1.5, 0), rand.New(rand.NewSource(42)), anim)

	var started []bossAttack
	components.BossAttackEvents.Subscribe(e.World, func(w donburi.World, ev components.BossAttackEvent) {
		started = append(started, bossAttack{ev.AttackID, now(w)})
	})

	advance(e, 40)

	require.GreaterOrEqual(t, len(started), 4)
	ids := []string{"Attack1", "Attack2", "Attack3"}
	expect := rand.New(rand.NewSource(42))
	for i, a := range started {
		assert.Equal(t, ids[expect.Intn(len(ids))], a.id, "attack %d", i)
	}

	assert.InDelta(t, 3, started[0].at, 0.02)
	for i := 1; i < len(started); i++ {
		assert.GreaterOrEqual(t, started[i].at-started[i-1].at, 3.0)
	}
	assert.Contains(t, anim.clips, "Idle")
}

func TestBossRunsOneAttackAtATime(t *testing.T) {
	e := newTestECS(t)
	boss := factory.CreateBoss(e, gamemath.V3(0, 0, -9), 0, gamemath.Vec3{}, rand.New(rand.NewSource(7)), nil)
	rt := components.BossRuntime.Get(boss)

	started := 0
	for i := 0; i < 60*30; i++ {
		before := rt.AttacksStarted
		phase := rt.Phase
		tick(e)
		if rt.AttacksStarted != before {
			started++
			assert.Equal(t, components.BossReady, phase, "attacks start only from Ready")
		}
	}
	assert.Equal(t, rt.AttacksStarted, started)
	assert.Greater(t, started, 2)
}

func TestBossSpawnsProjectilesAfterWindup(t *testing.T) {
	e := newTestECS(t)
	newTestArena(t, e, 1)
	boss := factory.CreateBoss(e, gamemath.V3(0, 0, -9), 0, gamemath.V3(0, 1.5, 0), rand.New(rand.NewSource(3)), nil)
	rt := components.BossRuntime.Get(boss)

	for rt.Phase != components.BossWindup {
		tick(e)
	}
	attack := components.Boss.Get(boss).Attacks[rt.Current]

	advance(e, attack.Windup-0.1)
	assert.Equal(t, 0, countProjectiles(e.World))

	advance(e, 0.15)
	assert.Equal(t, components.BossRecover, rt.Phase)
	assert.Equal(t, len(attack.SpawnPoints), countProjectiles(e.World))

	tags.Projectile.Each(e.World, func(p *donburi.Entry) {
		data := components.Projectile.Get(p)
		assert.Equal(t, boss.Entity(), data.Owner.Entity())
		assert.Equal(t, attack.Damage, data.Damage)
		assert.InDelta(t, 1, data.Direction.Len(), 1e-9)
		assert.Greater(t, data.Direction.Z, 0.0, "aimed at the arena centre")
	})
}

func TestBossDeathHaltsSequence(t *testing.T) {
	e := newTestECS(t)
	newTestArena(t, e, 1)
	anim := newRecordingAnimator()
	boss := factory.CreateBoss(e, gamemath.V3(0, 0, -9), 0, gamemath.V3(0, 1.5, 0), rand.New(rand.NewSource(3)), anim)
	rt := components.BossRuntime.Get(boss)

	for rt.Phase != components.BossWindup {
		tick(e)
	}
	require.True(t, Kill(boss))
	assert.False(t, Kill(boss))

	advance(e, 1)
	assert.Equal(t, components.BossDead, rt.Phase)
	assert.Equal(t, 0, countProjectiles(e.World), "the pending attack never fires")
	assert.NotNil(t, components.Object.Get(boss).Space)
	assert.Equal(t, 1, anim.count("Death"))

	advance(e, 1.1)
	assert.Nil(t, components.Object.Get(boss).Space)
	assert.False(t, components.HealthBar.Get(boss).Visible)
	assert.False(t, IsDeactivated(boss))

	advance(e, 3)
	assert.True(t, IsDeactivated(boss))
	assert.True(t, boss.Valid())

	started := rt.AttacksStarted
	advance(e, 10)
	assert.Equal(t, started, rt.AttacksStarted)
	assert.Equal(t, 1, anim.count("Death"))
}

func TestBossTurnsTowardPlayerInPlace(t *testing.T) {
	e := newTestECS(t)
	factory.CreatePlayer(e, gamemath.V3(10, 0, -9), nil, nil)
	boss := factory.CreateBoss(e, gamemath.V3(0, 0, -9), 0, gamemath.Vec3{}, rand.New(rand.NewSource(1)), nil)

	advance(e, 3)
	tr := components.Transform.Get(boss)
	assert.InDelta(t, math.Pi/2, tr.Yaw, 0.01)
	assert.Equal(t, gamemath.V3(0, 0, -9), tr.Position)
}

func TestBossDegradesWithoutCollaborators(t *testing.T) {
	t.Run("no attacks", func(t *testing.T) {
		e := newTestECS(t)
		cfg.Boss.Attacks = nil
		boss := factory.CreateBoss(e, gamemath.Vec3{}, 0, gamemath.Vec3{}, nil, nil)

		advance(e, 10)
		rt := components.BossRuntime.Get(boss)
		assert.Equal(t, components.BossReady, rt.Phase)
		assert.Equal(t, 0, rt.AttacksStarted)
	})

	t.Run("no projectile", func(t *testing.T) {
		e := newTestECS(t)
		boss := factory.CreateBoss(e, gamemath.Vec3{}, 0, gamemath.Vec3{}, rand.New(rand.NewSource(1)), nil)
		components.Boss.Get(boss).Projectile = nil

		advance(e, 20)
		assert.Equal(t, 0, countProjectiles(e.World))
		assert.Greater(t, components.BossRuntime.Get(boss).AttacksStarted, 1)
	})
}

func TestAttackCooldownOverride(t *testing.T) {
	e := newTestECS(t)
	cfg.Boss.Attacks = []cfg.AttackDefinition{{
		ID:          "Slam",
		Animation:   "Slam",
		Windup:      0.5,
		SpawnPoints: []gamemath.Vec3{{Y: 1}},
		Cooldown:    6,
	}}
	cfg.Boss.IdleDuration = 0.5
	boss := factory.CreateBoss(e, gamemath.Vec3{}, 0, gamemath.V3(0, 0, 5), nil, nil)
	rt := components.BossRuntime.Get(boss)

	advance(e, 3.1)
	require.Equal(t, 1, rt.AttacksStarted)
	assert.Equal(t, 6.0, rt.Cooldown)

	advance(e, 5)
	assert.Equal(t, 1, rt.AttacksStarted)
	advance(e, 1.1)
	assert.Equal(t, 2, rt.AttacksStarted)
}
