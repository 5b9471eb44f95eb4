package components

import (
	"github.com/automoto/deal-closer/config"
	"github.com/yohamta/donburi"
)

// SoundBackend plays synthesized sounds. Implementations must not block.
type SoundBackend interface {
	PlaySound(id config.SoundID) error
	PlayMusic() error
	StopMusic()
}

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Backend      SoundBackend
	PendingSFX   []config.SoundID
	MusicPending bool
	MusicPlaying bool
}

var Audio = donburi.NewComponentType[AudioData]()
