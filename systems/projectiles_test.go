package systems

import (
	"testing"

	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectileCulledBeyondMargin(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	w.camera().X = 1000
	SetDelta(w.ecs, testDT, 60)
	shot := factory.CreateProjectile(w.ecs, cfg.ProjectileEmail, 1000, 300, -1)

	for i := 0; i < 4; i++ {
		UpdateProjectiles(w.ecs)
	}
	require.True(t, shot.Valid(), "inside the cull margin")

	UpdateProjectiles(w.ecs)
	UpdateProjectiles(w.ecs)
	assert.False(t, shot.Valid())
}

func TestProjectileInViewKeepsFlying(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	SetDelta(w.ecs, testDT, 60)
	shot := factory.CreateProjectile(w.ecs, cfg.ProjectileEmail, 400, 300, 1)

	UpdateProjectiles(w.ecs)

	require.True(t, shot.Valid())
	obj := components.Object.Get(shot)
	assert.InDelta(t, 410, obj.X+obj.W/2, 1e-9)
	assert.InDelta(t, 300, obj.Y+obj.H/2, 1e-9, "shots travel horizontally")
}

func TestShotDamagesOnlyOneEnemy(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	a := factory.CreatePatroller(w.ecs, 1100, 480)
	b := factory.CreatePatroller(w.ecs, 1100, 480)
	shot := factory.CreateProjectile(w.ecs, cfg.ProjectileEmail, 1110, 500, 1)

	UpdateCollisions(w.ecs)

	lost := 80 - components.Health.Get(a).Current - components.Health.Get(b).Current
	assert.Equal(t, cfg.Projectiles.Email.Damage, lost)
	assert.False(t, shot.Valid())

	UpdateAudio(w.ecs)
	assert.Equal(t, 1, w.audio.count(cfg.SoundEnemyHit))
}

func TestCallKillsFloaterInOneHit(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	floater := factory.CreateFloater(w.ecs, 1100, 300)
	factory.CreateProjectile(w.ecs, cfg.ProjectileCall, 1110, 310, 1)

	UpdateCollisions(w.ecs)

	assert.False(t, floater.Valid())
	assert.Equal(t, cfg.Enemies.Floater.Score, w.match().Score)
	UpdateAudio(w.ecs)
	assert.Equal(t, 1, w.audio.count(cfg.SoundEnemyDestroy))
}

func TestEnemyShotHitsPlayer(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	SetDelta(w.ecs, testDT, 60)
	shot := factory.CreateProjectile(w.ecs, cfg.ProjectileEnemy, 120, 495, -1)

	UpdateEnemyProjectiles(w.ecs)

	assert.Equal(t, 100-cfg.Projectiles.Enemy.Damage, components.Health.Get(w.player()).Current)
	assert.False(t, shot.Valid())
}

func TestCallTrailParticlesExpire(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	SetDelta(w.ecs, testDT, 60)
	shot := factory.CreateProjectile(w.ecs, cfg.ProjectileCall, 400, 300, 1)

	for i := 0; i < 30; i++ {
		UpdateProjectiles(w.ecs)
	}

	require.True(t, shot.Valid())
	trail := components.Trail.Get(shot)
	assert.NotEmpty(t, trail.Particles)
	for _, p := range trail.Particles {
		assert.Greater(t, p.Life, 0.0)
		assert.LessOrEqual(t, p.Life, cfg.Projectiles.TrailLifetime)
	}
}
