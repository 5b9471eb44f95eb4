package systems

import (
	"testing"

	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateAudioDrainsQueue(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	PlaySFX(w.ecs, cfg.SoundJump)
	PlaySFX(w.ecs, cfg.SoundEnemyHit)

	UpdateAudio(w.ecs)

	assert.Equal(t, []cfg.SoundID{cfg.SoundJump, cfg.SoundEnemyHit}, w.audio.sounds)
	assert.Empty(t, getAudio(w.ecs).PendingSFX)
}

func TestFailingBackendNeverStopsTheTick(t *testing.T) {
	tests := []struct {
		name    string
		backend *recordingBackend
	}{
		{"error", &recordingBackend{err: errDeviceLost}},
		{"panic", &recordingBackend{panics: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, emptyLayout())
			getAudio(w.ecs).Backend = tt.backend
			PlaySFX(w.ecs, cfg.SoundEmailShoot)
			PlaySFX(w.ecs, cfg.SoundCallShoot)

			assert.NotPanics(t, func() { UpdateAudio(w.ecs) })
			assert.Len(t, tt.backend.sounds, 2, "every sound is attempted")
			assert.Empty(t, getAudio(w.ecs).PendingSFX)

			assert.NotPanics(t, func() { w.ticks(10) })
			assert.True(t, IsPlaying(w.ecs))
		})
	}
}

func TestNilBackendDropsSounds(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	audio := getAudio(w.ecs)
	audio.Backend = nil
	PlaySFX(w.ecs, cfg.SoundJump)
	PlayBackgroundMusic(w.ecs)

	UpdateAudio(w.ecs)

	assert.Empty(t, audio.PendingSFX)
	assert.False(t, audio.MusicPending)
	assert.False(t, audio.MusicPlaying)
}

func TestBackgroundMusicStartsOnce(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	PlayBackgroundMusic(w.ecs)

	UpdateAudio(w.ecs)
	UpdateAudio(w.ecs)

	assert.Equal(t, 1, w.audio.music)
	entry, ok := components.Audio.First(w.ecs.World)
	require.True(t, ok)
	assert.True(t, components.Audio.Get(entry).MusicPlaying)

	StopBackgroundMusic(w.ecs)
	assert.False(t, getAudio(w.ecs).MusicPlaying)
	assert.Equal(t, 1, w.audio.stops)

	StopBackgroundMusic(w.ecs)
	assert.Equal(t, 1, w.audio.stops, "stopping twice is a no-op")
}

func TestSoundsQueuedDuringDrainWaitForNextTick(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	w.audio.onPlay = func(id cfg.SoundID) {
		if id == cfg.SoundJump {
			PlaySFX(w.ecs, cfg.SoundEnemyHit)
			PlaySFX(w.ecs, cfg.SoundEnemyHit)
		}
	}
	PlaySFX(w.ecs, cfg.SoundJump)
	PlaySFX(w.ecs, cfg.SoundCallShoot)

	UpdateAudio(w.ecs)
	assert.Equal(t, []cfg.SoundID{cfg.SoundJump, cfg.SoundCallShoot}, w.audio.sounds)
	assert.Equal(t, []cfg.SoundID{cfg.SoundEnemyHit, cfg.SoundEnemyHit}, getAudio(w.ecs).PendingSFX)

	UpdateAudio(w.ecs)
	assert.Equal(t, 2, w.audio.count(cfg.SoundEnemyHit))
	assert.Empty(t, getAudio(w.ecs).PendingSFX)
}
