package systems

import (
	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/gamemath"
	"github.com/automoto/deal-closer/systems/factory"
	"github.com/automoto/deal-closer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// worldContext is the explicit handle entity behaviours act through, in
// place of reaching into global game state.
type worldContext struct {
	ecs    *ecs.ECS
	player *donburi.Entry
	level  *components.LevelData
	camera *components.CameraData
	clock  *components.ClockData
	rng    *components.RNGData
	match  *components.MatchData
}

// newWorldContext gathers the singletons of one tick. It fails when the
// world is not fully built.
func newWorldContext(e *ecs.ECS) (*worldContext, bool) {
	player, ok := tags.Player.First(e.World)
	if !ok {
		return nil, false
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return nil, false
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, false
	}
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return nil, false
	}
	return &worldContext{
		ecs:    e,
		player: player,
		level:  components.Level.Get(levelEntry),
		camera: components.Camera.Get(cameraEntry),
		clock:  components.Clock.Get(matchEntry),
		rng:    components.RNG.Get(matchEntry),
		match:  components.Match.Get(matchEntry),
	}, true
}

func (w *worldContext) dt() float64 {
	return w.clock.Delta
}

func (w *worldContext) playerBounds() gamemath.Rect {
	return components.Object.Get(w.player).Bounds()
}

func (w *worldContext) playerX() float64 {
	return components.Object.Get(w.player).X
}

func (w *worldContext) fireEnemyProjectile(x, y, direction float64) {
	factory.CreateProjectile(w.ecs, cfg.ProjectileEnemy, x, y, direction)
}

func (w *worldContext) playSound(id cfg.SoundID) {
	PlaySFX(w.ecs, id)
}

func (w *worldContext) damagePlayer(amount int) {
	DamagePlayer(w.ecs, w.player, amount)
}

// after queues fire to run once the simulation clock has advanced by delay.
func (w *worldContext) after(delay float64, owner *donburi.Entry, fire func(*ecs.ECS, *donburi.Entry)) {
	Schedule(w.ecs, delay, owner, fire)
}

// removeEntity drops e from the broadphase space and the world.
func removeEntity(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(e.World); ok {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(entry).Object)
		}
	}
	e.World.Remove(entry.Entity())
}
