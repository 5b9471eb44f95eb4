package systems

import (
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner launches floaters from just past the leading viewport edge
// at random intervals, until the spawn stop position comes into view.
func UpdateSpawner(e *ecs.ECS) {
	w, ok := newWorldContext(e)
	if !ok {
		return
	}
	level := w.level
	if level.SpawnHalted {
		return
	}
	if w.camera.X > level.SpawnStopX-w.camera.Width {
		level.SpawnHalted = true
		log.Debug("floater spawning halted", "camera", w.camera.X)
		return
	}

	c := cfg.Level.Spawner
	level.SpawnTimer += w.dt()
	if level.SpawnTimer < level.SpawnInterval {
		return
	}
	x := w.camera.X + w.camera.Width + c.EdgeMargin
	y := w.rng.Range(c.MinY, c.MaxY)
	factory.CreateFloater(e, x, y)

	level.SpawnTimer = 0
	level.SpawnInterval = w.rng.Range(c.MinInterval, c.MaxInterval)
}
