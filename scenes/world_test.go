package scenes

import (
	"testing"

	"github.com/automoto/deal-closer/assets"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRight holds right and fire and taps jump once a second.
func runRight() systems.InputSource {
	tick := 0
	return func() [cfg.ActionCount]bool {
		var held [cfg.ActionCount]bool
		held[cfg.ActionMoveRight] = true
		held[cfg.ActionFirePrimary] = true
		held[cfg.ActionJump] = tick%60 == 0
		tick++
		return held
	}
}

func newOfficeWorld(t *testing.T, seed int64) *World {
	t.Helper()
	w, err := NewWorld(WorldOptions{
		Layout: assets.MustLoadLevel(cfg.Level.Path),
		Seed:   seed,
		Input:  runRight(),
	})
	require.NoError(t, err)
	w.Start()
	return w
}

func TestNewWorldRequiresLayout(t *testing.T) {
	_, err := NewWorld(WorldOptions{})
	assert.ErrorIs(t, err, errNoLayout)
}

func TestNewWorldInitialState(t *testing.T) {
	w := newOfficeWorld(t, 1)
	snap := w.Snapshot()

	assert.Equal(t, cfg.MatchStatePlaying, snap.State)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 100, snap.Health)
	assert.Equal(t, cfg.Player.StartingAmmo, snap.CallAmmo)
	assert.Equal(t, 7, snap.ActiveEnemies)
	assert.False(t, snap.BossVisible)
}

func TestStepCapsDelta(t *testing.T) {
	w := newOfficeWorld(t, 1)
	w.Step(1)
	assert.InDelta(t, cfg.C.MaxDelta, w.Snapshot().Clock, 1e-9)
	assert.InDelta(t, 1, w.Snapshot().FPS, 1e-9)
}

func TestRestartResetsMatch(t *testing.T) {
	w := newOfficeWorld(t, 1)
	for i := 0; i < 600; i++ {
		w.Step(1.0 / 60)
	}
	require.Greater(t, w.Snapshot().Clock, 0.0)

	require.NoError(t, w.Restart())

	snap := w.Snapshot()
	assert.Equal(t, cfg.MatchStatePlaying, snap.State)
	assert.Zero(t, snap.Score)
	assert.Zero(t, snap.Clock)
	assert.Equal(t, 100, snap.Health)
	assert.Equal(t, 7, snap.ActiveEnemies)
	assert.Zero(t, systems.PendingEvents(w.ECS()))
}

// loopCounter counts music starts and stops.
type loopCounter struct {
	starts, stops int
}

func (l *loopCounter) PlaySound(cfg.SoundID) error { return nil }
func (l *loopCounter) PlayMusic() error            { l.starts++; return nil }
func (l *loopCounter) StopMusic()                  { l.stops++ }

func TestRestartRestartsMusicLoop(t *testing.T) {
	backend := &loopCounter{}
	w, err := NewWorld(WorldOptions{
		Layout:  assets.MustLoadLevel(cfg.Level.Path),
		Seed:    1,
		Input:   runRight(),
		Backend: backend,
	})
	require.NoError(t, err)
	w.Start()
	w.Step(1.0 / 60)
	require.Equal(t, 1, backend.starts)

	require.NoError(t, w.Restart())
	assert.Equal(t, 1, backend.stops)

	w.Step(1.0 / 60)
	assert.Equal(t, 2, backend.starts)
	assert.Equal(t, 1, backend.stops)
}

func TestSameSeedSameMatch(t *testing.T) {
	a := newOfficeWorld(t, 42)
	b := newOfficeWorld(t, 42)
	for i := 0; i < 1200; i++ {
		a.Step(1.0 / 60)
		b.Step(1.0 / 60)
	}
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestScriptedRunEnds(t *testing.T) {
	w := newOfficeWorld(t, 3)
	for i := 0; i < 60*120 && w.Snapshot().State == cfg.MatchStatePlaying; i++ {
		w.Step(1.0 / 60)
	}

	snap := w.Snapshot()
	assert.Equal(t, cfg.MatchStateGameOver, snap.State)
	assert.Greater(t, snap.Score, 0)
	if snap.Victory {
		assert.Greater(t, snap.Health, 0)
	} else {
		assert.Zero(t, snap.Health)
	}
}
