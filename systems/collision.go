package systems

import (
	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/gamemath"
	"github.com/automoto/deal-closer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions arbitrates player shots against enemies, then enemy
// bodies against the player. Each shot damages at most one enemy.
func UpdateCollisions(e *ecs.ECS) {
	w, ok := newWorldContext(e)
	if !ok {
		return
	}

	var spent []*donburi.Entry
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		if p.Active {
			resolveProjectileHit(e, entry, p)
		}
		if !p.Active {
			spent = append(spent, entry)
		}
	})
	for _, entry := range spent {
		removeEntity(e, entry)
	}

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if !IsPlaying(e) {
			return
		}
		checkPlayerCollision(w, entry)
	})

	pruneInactiveEnemies(e)
}

// resolveProjectileHit finds the first enemy the shot overlaps. The space
// narrows the candidates and Intersects decides.
func resolveProjectileHit(e *ecs.ECS, entry *donburi.Entry, p *components.ProjectileData) {
	obj := components.Object.Get(entry)
	col := obj.Check(0, 0, tags.ResolvEnemy)
	if col == nil {
		return
	}
	bounds := obj.Bounds()
	for _, o := range col.Objects {
		target, ok := o.Data.(*donburi.Entry)
		if !ok || !target.Valid() || !Targetable(target) {
			continue
		}
		if !gamemath.Intersects(bounds, components.Object.Get(target).Bounds()) {
			continue
		}
		DamageEnemy(e, target, p.Damage)
		if components.Health.Get(target).IsDepleted() {
			PlaySFX(e, cfg.SoundEnemyDestroy)
		} else {
			PlaySFX(e, cfg.SoundEnemyHit)
		}
		p.Hit()
		return
	}
}
