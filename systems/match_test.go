package systems

import (
	"testing"

	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVictoryFreezesSimulation(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	w.movePlayer(4701, 470)

	w.tick()
	require.Equal(t, cfg.MatchStateGameOver, w.match().State)
	assert.True(t, w.match().Victory)

	x := w.playerObj().X
	score := w.match().Score
	w.press(cfg.ActionMoveLeft, cfg.ActionFirePrimary)
	w.ticks(30)

	assert.Equal(t, x, w.playerObj().X)
	assert.Equal(t, score, w.match().Score)
	assert.Zero(t, w.audio.count(cfg.SoundEmailShoot))
	assert.Equal(t, 1, w.audio.count(cfg.SoundVictory))
}

func TestVictoryNeedsToCrossTheLine(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	w.movePlayer(4700, 470)
	UpdateMatch(w.ecs)
	assert.Equal(t, cfg.MatchStatePlaying, w.match().State)
}

func TestGameOverIsOneWay(t *testing.T) {
	w := newTestWorld(t, emptyLayout())

	GameOver(w.ecs, false)
	GameOver(w.ecs, true)

	assert.Equal(t, cfg.MatchStateGameOver, w.match().State)
	assert.False(t, w.match().Victory)
	assert.False(t, IsPlaying(w.ecs))
}

func TestBossSightingLatches(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	factory.CreateBoss(w.ecs, 4400, 440)

	w.camera().X = 3000
	UpdateMatch(w.ecs)
	assert.False(t, w.level().BossSighted)
	assert.False(t, TakeSnapshot(w.ecs).BossVisible)

	w.camera().X = 3600
	UpdateMatch(w.ecs)
	require.True(t, w.level().BossSighted)

	w.camera().X = 0
	UpdateMatch(w.ecs)
	snap := TakeSnapshot(w.ecs)
	assert.True(t, snap.BossVisible)
	assert.Equal(t, 1.0, snap.BossHealthFraction)
	assert.False(t, snap.BossEnraged)
}

func TestSnapshot(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	factory.CreatePatroller(w.ecs, 1000, 480)
	factory.CreateFloater(w.ecs, 1200, 300)
	AddScore(w.ecs, 1234)
	components.Health.Get(w.player()).Current = 25

	w.tick()
	snap := TakeSnapshot(w.ecs)

	assert.Equal(t, 1234, snap.Score)
	assert.Equal(t, 25, snap.Health)
	assert.Equal(t, 100, snap.MaxHealth)
	assert.InDelta(t, 0.25, snap.HealthFraction, 1e-9)
	assert.Equal(t, cfg.Player.StartingAmmo, snap.CallAmmo)
	assert.Equal(t, 2, snap.ActiveEnemies)
	assert.InDelta(t, testDT, snap.Clock, 1e-9)
	assert.InDelta(t, 60, snap.FPS, 1e-9)
	assert.Equal(t, cfg.MatchStatePlaying, snap.State)
}

func TestClockCapsDelta(t *testing.T) {
	w := newTestWorld(t, emptyLayout())

	SetDelta(w.ecs, 0.5, 2)
	UpdateClock(w.ecs)
	assert.InDelta(t, cfg.C.MaxDelta, TakeSnapshot(w.ecs).Clock, 1e-9)

	SetDelta(w.ecs, -1, 0)
	UpdateClock(w.ecs)
	assert.InDelta(t, cfg.C.MaxDelta, TakeSnapshot(w.ecs).Clock, 1e-9)
}
