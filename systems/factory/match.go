package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/deal-closer/archetypes"
	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch spawns the match singleton with its clock, event queue and RNG.
// A zero seed picks one from the wall clock.
func CreateMatch(ecs *ecs.ECS, seed int64) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	components.Match.SetValue(match, components.MatchData{State: cfg.MatchStatePlaying})
	components.Clock.SetValue(match, components.ClockData{})
	components.Schedule.SetValue(match, components.ScheduleData{})
	components.RNG.SetValue(match, components.RNGData{
		Seed: seed,
		Rand: rand.New(rand.NewSource(seed)),
	})
	return match
}

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	input := archetypes.Input.Spawn(ecs)
	components.Input.SetValue(input, components.InputData{})
	return input
}

// CreateAudio spawns the audio singleton. A nil backend drops every sound.
func CreateAudio(ecs *ecs.ECS, backend components.SoundBackend) *donburi.Entry {
	audio := archetypes.Audio.Spawn(ecs)
	components.Audio.SetValue(audio, components.AudioData{Backend: backend})
	return audio
}
