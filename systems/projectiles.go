package systems

import (
	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/gamemath"
	"github.com/automoto/deal-closer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// trailOffset is how far from the shot centre a trail particle may start.
const trailOffset = 5

// UpdateProjectiles moves the player's shots and culls the ones that left
// the camera.
func UpdateProjectiles(e *ecs.ECS) {
	w, ok := newWorldContext(e)
	if !ok {
		return
	}
	var spent []*donburi.Entry
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		if !moveProjectile(w, entry) {
			spent = append(spent, entry)
		}
	})
	for _, entry := range spent {
		removeEntity(e, entry)
	}
}

// UpdateEnemyProjectiles moves enemy shots and applies their hit on the
// player. A shot that connects is spent immediately.
func UpdateEnemyProjectiles(e *ecs.ECS) {
	w, ok := newWorldContext(e)
	if !ok {
		return
	}
	var spent []*donburi.Entry
	tags.EnemyProjectile.Each(e.World, func(entry *donburi.Entry) {
		if moveProjectile(w, entry) && IsPlaying(e) {
			p := components.Projectile.Get(entry)
			if gamemath.Intersects(components.Object.Get(entry).Bounds(), w.playerBounds()) {
				w.damagePlayer(p.Damage)
				p.Hit()
			}
		}
		if !components.Projectile.Get(entry).Active {
			spent = append(spent, entry)
		}
	})
	for _, entry := range spent {
		removeEntity(e, entry)
	}
}

// moveProjectile advances one shot and reports whether it is still live.
// Shots only travel horizontally; a boss spread changes their speed.
func moveProjectile(w *worldContext, entry *donburi.Entry) bool {
	p := components.Projectile.Get(entry)
	if !p.Active {
		return false
	}
	obj := components.Object.Get(entry)
	dt := w.dt()

	obj.X += p.Speed * p.Direction * dt
	p.AnimationTime += dt

	centreX := obj.X + obj.W/2
	margin := cfg.Projectiles.CullMargin
	if centreX < w.camera.X-margin || centreX > w.camera.X+w.camera.Width+margin {
		p.Active = false
	}

	if entry.HasComponent(components.Trail) {
		updateTrail(w, components.Trail.Get(entry), obj.X+obj.W/2, obj.Y+obj.H/2)
	}

	obj.Update()
	return p.Active
}

// updateTrail ages the cosmetic particles and sometimes adds a new one.
func updateTrail(w *worldContext, trail *components.TrailData, x, y float64) {
	c := cfg.Projectiles
	dt := w.dt()

	if w.rng.Rand.Float64() < c.TrailChance {
		half := c.TrailSpread / 2
		trail.Particles = append(trail.Particles, components.TrailParticle{
			X:    x + w.rng.Range(-trailOffset, trailOffset),
			Y:    y + w.rng.Range(-trailOffset, trailOffset),
			VX:   w.rng.Range(-half, half),
			VY:   w.rng.Range(-half, half),
			Life: c.TrailLifetime,
		})
	}

	live := trail.Particles[:0]
	for _, part := range trail.Particles {
		part.X += part.VX * dt
		part.Y += part.VY * dt
		part.Life -= dt
		if part.Life > 0 {
			live = append(live, part)
		}
	}
	trail.Particles = live
}
