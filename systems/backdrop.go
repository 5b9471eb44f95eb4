package systems

import (
	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBackdrop flips a random subset of skyline windows whenever the
// refresh timer runs out.
func UpdateBackdrop(e *ecs.ECS) {
	w, ok := newWorldContext(e)
	if !ok {
		return
	}
	entry, ok := components.Backdrop.First(e.World)
	if !ok {
		return
	}
	backdrop := components.Backdrop.Get(entry)

	backdrop.RefreshTimer -= w.dt()
	if backdrop.RefreshTimer > 0 {
		return
	}
	c := cfg.Level
	for i := range backdrop.Buildings {
		lit := backdrop.Buildings[i].Lit
		for j := range lit {
			if w.rng.Rand.Float64() < c.WindowRerollOdds {
				lit[j] = w.rng.Rand.Float64() < c.WindowLitOdds
			}
		}
	}
	backdrop.RefreshTimer = w.rng.Range(c.WindowRefreshMin, c.WindowRefreshMax)
}
