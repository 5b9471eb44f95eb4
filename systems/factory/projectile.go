package factory

import (
	"github.com/automoto/deal-closer/archetypes"
	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a projectile whose body is centred on (x, y).
// Enemy projectiles use their own archetype so they only ever hit the player.
func CreateProjectile(ecs *ecs.ECS, kind cfg.ProjectileKind, x, y, direction float64) *donburi.Entry {
	stats := kind.Stats()

	var p *donburi.Entry
	resolvTag := tags.ResolvProjectile
	if kind == cfg.ProjectileEnemy {
		p = archetypes.EnemyProjectile.Spawn(ecs)
		resolvTag = tags.ResolvEnemyProjectile
	} else if kind == cfg.ProjectileCall {
		p = archetypes.Projectile.Spawn(ecs, components.Trail)
	} else {
		p = archetypes.Projectile.Spawn(ecs)
	}

	obj := resolv.NewObject(x-stats.Width/2, y-stats.Height/2, stats.Width, stats.Height, resolvTag)
	addObject(ecs, p, obj)

	components.Projectile.SetValue(p, components.ProjectileData{
		Kind:      kind,
		Direction: direction,
		Speed:     stats.Speed,
		Damage:    stats.Damage,
		Active:    true,
	})
	return p
}
