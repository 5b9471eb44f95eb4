package systems

import (
	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/yohamta/donburi/ecs"
)

// SetDelta stores the step the next Update will simulate. The host loop calls
// it once per frame before ecs.Update.
func SetDelta(e *ecs.ECS, dt, fps float64) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(matchEntry)
	clock.Delta = dt
	clock.FPS = fps
}

// UpdateClock caps the pending step and advances simulated time.
func UpdateClock(e *ecs.ECS) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(matchEntry)
	match := components.Match.Get(matchEntry)

	if clock.Delta < 0 {
		clock.Delta = 0
	}
	if clock.Delta > cfg.C.MaxDelta {
		clock.Delta = cfg.C.MaxDelta
	}
	clock.Elapsed += clock.Delta

	match.Ticks++
	match.Elapsed = clock.Elapsed
}
