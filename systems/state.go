package systems

import (
	"github.com/automoto/deal-closer/components"
	"github.com/yohamta/donburi/ecs"
)

// IsPlaying reports whether the match is still running.
func IsPlaying(e *ecs.ECS) bool {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return false
	}
	return components.Match.Get(matchEntry).Playing()
}

// WithPlaying wraps a system to skip execution once the match is over.
// The check runs per system, so systems after a GameOver in the same tick
// are skipped too.
func WithPlaying(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsPlaying(e) {
			return
		}
		system(e)
	}
}
