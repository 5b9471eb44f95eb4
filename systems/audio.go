package systems

import (
	"fmt"

	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

func getAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return nil
	}
	return components.Audio.Get(entry)
}

// PlaySFX queues a sound effect for the end of the tick.
func PlaySFX(e *ecs.ECS, id cfg.SoundID) {
	audio := getAudio(e)
	if audio == nil {
		return
	}
	audio.PendingSFX = append(audio.PendingSFX, id)
}

// PlayBackgroundMusic requests the ambient loop.
func PlayBackgroundMusic(e *ecs.ECS) {
	if audio := getAudio(e); audio != nil {
		audio.MusicPending = true
	}
}

// StopBackgroundMusic stops the ambient loop if it is playing.
func StopBackgroundMusic(e *ecs.ECS) {
	audio := getAudio(e)
	if audio == nil || !audio.MusicPlaying {
		return
	}
	audio.MusicPlaying = false
	if audio.Backend != nil {
		audio.Backend.StopMusic()
	}
}

// UpdateAudio hands queued sounds to the backend. Playback is best effort:
// failures are logged and never stop the tick.
func UpdateAudio(e *ecs.ECS) {
	audio := getAudio(e)
	if audio == nil {
		return
	}
	pending := audio.PendingSFX
	audio.PendingSFX = nil
	if audio.Backend == nil {
		audio.MusicPending = false
		return
	}

	if audio.MusicPending {
		audio.MusicPending = false
		if err := safePlay(audio.Backend.PlayMusic); err != nil {
			log.Warn("music playback failed", "err", err)
		} else {
			audio.MusicPlaying = true
		}
	}

	for _, id := range pending {
		id := id
		if err := safePlay(func() error { return audio.Backend.PlaySound(id) }); err != nil {
			log.Warn("sound playback failed", "sound", id, "err", err)
		}
	}
}

// safePlay turns a backend panic into an error.
func safePlay(play func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("audio backend panic: %v", r)
		}
	}()
	return play()
}
