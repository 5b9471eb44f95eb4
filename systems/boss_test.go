package systems

import (
	"math"
	"testing"

	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/systems/factory"
	"github.com/automoto/deal-closer/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func newBossWorld(t *testing.T) (*testWorld, *donburi.Entry) {
	t.Helper()
	w := newTestWorld(t, emptyLayout())
	boss := factory.CreateBoss(w.ecs, 4400, 440)
	return w, boss
}

func TestBossActivationGate(t *testing.T) {
	tests := []struct {
		name    string
		cameraX float64
		want    cfg.BossPhase
	}{
		{"gate exactly at the right edge", 3400, cfg.BossDormant},
		{"gate inside the view", 3450, cfg.BossPhaseOne},
		{"well inside", 3500, cfg.BossPhaseOne},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, boss := newBossWorld(t)
			w.camera().X = tt.cameraX

			UpdateEnemies(w.ecs)

			assert.Equal(t, tt.want, components.Boss.Get(boss).Phase)
			assert.Equal(t, tt.want != cfg.BossDormant, w.level().BossActivated)
		})
	}
}

func TestDormantBossIsImmune(t *testing.T) {
	w, boss := newBossWorld(t)

	assert.False(t, Targetable(boss))
	assert.False(t, DamageEnemy(w.ecs, boss, 50))
	assert.Equal(t, cfg.Enemies.Boss.Health, components.Health.Get(boss).Current)

	w.movePlayer(4410, 470)
	ctx, ok := newWorldContext(w.ecs)
	require.True(t, ok)
	assert.False(t, checkPlayerCollision(ctx, boss))
	assert.Equal(t, 100, components.Health.Get(w.player()).Current)
}

func TestDormantBossIgnoresPlayerShots(t *testing.T) {
	w, boss := newBossWorld(t)
	shot := factory.CreateProjectile(w.ecs, cfg.ProjectileEmail, 4430, 480, 1)

	UpdateCollisions(w.ecs)

	assert.True(t, shot.Valid(), "shot passes through")
	assert.Equal(t, cfg.Enemies.Boss.Health, components.Health.Get(boss).Current)
}

func TestBossEntersPhaseTwoAtHalfHealth(t *testing.T) {
	w, boss := newBossWorld(t)
	components.Boss.Get(boss).Phase = cfg.BossPhaseOne

	DamageEnemy(w.ecs, boss, 89)
	assert.Equal(t, cfg.BossPhaseOne, components.Boss.Get(boss).Phase)

	DamageEnemy(w.ecs, boss, 1)
	assert.Equal(t, cfg.BossPhaseTwo, components.Boss.Get(boss).Phase)
	assert.True(t, Targetable(boss))
}

func TestBossScoreIsRoundedToThousands(t *testing.T) {
	_, boss := newBossWorld(t)
	score := components.Enemy.Get(boss).ScoreValue

	assert.GreaterOrEqual(t, score, 500000)
	assert.LessOrEqual(t, score, 5000000)
	assert.Zero(t, score%1000)
}

// enrage puts the boss in phase two with its next attack due this tick and
// the player inside attack range.
func enrage(t *testing.T) (*testWorld, *donburi.Entry) {
	t.Helper()
	w, boss := newBossWorld(t)
	w.movePlayer(4200, 470)
	w.camera().X = 3800

	b := components.Boss.Get(boss)
	b.Phase = cfg.BossPhaseTwo
	b.AttackTimer = cfg.Enemies.Boss.AttackInterval
	components.Health.Get(boss).Current = 90
	return w, boss
}

func TestPhaseTwoBurstIsStaggered(t *testing.T) {
	w, _ := enrage(t)

	w.tick()
	assert.Equal(t, 1, count(w.ecs, tags.EnemyProjectile))
	assert.Equal(t, 2, PendingEvents(w.ecs))

	w.ticks(20)
	assert.Equal(t, 3, count(w.ecs, tags.EnemyProjectile))
	assert.Zero(t, PendingEvents(w.ecs))

	var dirs []float64
	tags.EnemyProjectile.Each(w.ecs.World, func(entry *donburi.Entry) {
		dirs = append(dirs, components.Projectile.Get(entry).Direction)
	})
	assert.ElementsMatch(t, []float64{-1.3, -1, -0.7}, roundAll(dirs))
}

func TestBurstStopsWhenBossIsRemoved(t *testing.T) {
	w, boss := enrage(t)
	w.tick()
	require.Equal(t, 2, PendingEvents(w.ecs))

	removeEntity(w.ecs, boss)
	w.ticks(20)

	assert.Equal(t, 1, count(w.ecs, tags.EnemyProjectile))
	assert.Zero(t, PendingEvents(w.ecs))
}

func TestBurstStopsWhenMatchEnds(t *testing.T) {
	w, boss := enrage(t)
	w.tick()
	require.Equal(t, 2, PendingEvents(w.ecs))

	GameOver(w.ecs, false)
	assert.Zero(t, PendingEvents(w.ecs))

	fireBurstShot(w.ecs, boss, 2)
	assert.Equal(t, 1, count(w.ecs, tags.EnemyProjectile))
}

func roundAll(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Round(v*100) / 100
	}
	return out
}
