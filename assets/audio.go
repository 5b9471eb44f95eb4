package assets

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/synth"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader renders and caches synthesized audio
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte // Cache rendered PCM for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(id config.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	tones, ok := config.Sound.Effects[id]
	if !ok {
		return fmt.Errorf("no tones for sound %s", id)
	}
	l.sfxCache[id] = synth.Render(tones, l.context.SampleRate(), 1, 0)
	return nil
}

// LoadSFX returns a new player for a cached sound effect, rendering it first
// if needed.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
}

// LoadMusic returns a looping player for the ambient track.
// Music is not cached.
func (l *AudioLoader) LoadMusic() (*audio.Player, error) {
	pcm := synth.Render(config.Sound.Music, l.context.SampleRate(), 1, config.Sound.LoopLength)
	if len(pcm) == 0 {
		return nil, fmt.Errorf("ambient track is empty")
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	return l.context.NewPlayer(loop)
}

var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

// AudioBackend plays synthesized audio through ebiten. An audio.Context can
// only be created once per process, so every backend shares it.
type AudioBackend struct {
	loader *AudioLoader
	music  *audio.Player
}

// NewAudioBackend creates the shared context on first use and preloads all
// sound effects.
func NewAudioBackend() (*AudioBackend, error) {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(config.Audio.SampleRate)
	})
	b := &AudioBackend{loader: NewAudioLoader(globalAudioContext)}
	for id := range config.Sound.Effects {
		if err := b.loader.PreloadSFX(id); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *AudioBackend) PlaySound(id config.SoundID) error {
	if config.Audio.Muted || config.Audio.SFXVol <= 0 {
		return nil
	}
	player, err := b.loader.LoadSFX(id)
	if err != nil {
		return fmt.Errorf("play %s: %w", id, err)
	}
	player.SetVolume(config.Audio.SFXVol)
	player.Play()
	return nil
}

func (b *AudioBackend) PlayMusic() error {
	if b.music != nil || config.Audio.Muted {
		return nil
	}
	player, err := b.loader.LoadMusic()
	if err != nil {
		return fmt.Errorf("play music: %w", err)
	}
	player.SetVolume(config.Audio.MusicVol)
	player.Play()
	b.music = player
	return nil
}

func (b *AudioBackend) StopMusic() {
	if b.music == nil {
		return
	}
	_ = b.music.Close()
	b.music = nil
}
