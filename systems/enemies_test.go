package systems

import (
	"testing"

	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/systems/factory"
	"github.com/automoto/deal-closer/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloaterContactUsesFloaterUp(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	floater := factory.CreateFloater(w.ecs, 110, 480)

	UpdateCollisions(w.ecs)

	assert.Equal(t, 66, components.Health.Get(w.player()).Current)
	assert.False(t, floater.Valid(), "floater is removed after contact")
	assert.Equal(t, 0, w.match().Score, "contact is not a kill")
}

func TestFloaterLeavingScreenIsNotAKill(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	floater := factory.CreateFloater(w.ecs, -99, 100)

	w.tick()

	assert.False(t, floater.Valid())
	assert.Equal(t, 0, w.match().Score)
}

func TestPatrollerContactCooldown(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	patroller := factory.CreatePatroller(w.ecs, 110, 480)
	ctx, ok := newWorldContext(w.ecs)
	require.True(t, ok)

	assert.True(t, checkPlayerCollision(ctx, patroller))
	assert.False(t, checkPlayerCollision(ctx, patroller), "cooldown blocks a second hit")
	assert.Equal(t, 80, components.Health.Get(w.player()).Current)

	components.Enemy.Get(patroller).ContactCooldown = 0
	assert.True(t, checkPlayerCollision(ctx, patroller))
	assert.Equal(t, 60, components.Health.Get(w.player()).Current)
}

func TestPatrollerStaysWithinPatrolRange(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	w.movePlayer(2000, 470)
	patroller := factory.CreatePatroller(w.ecs, 1000, 480)
	c := cfg.Enemies.Patroller
	step := c.Speed * testDT

	for i := 0; i < 900; i++ {
		w.tick()
		x := components.Object.Get(patroller).X
		require.GreaterOrEqual(t, x, 1000-c.PatrolDistance-step)
		require.LessOrEqual(t, x, 1000+c.PatrolDistance+step)
	}
}

func TestPatrollerShootsPlayerInRange(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	factory.CreatePatroller(w.ecs, 200, 480)

	w.ticks(200)

	assert.Equal(t, 80, components.Health.Get(w.player()).Current)
	assert.Equal(t, cfg.MatchStatePlaying, w.match().State)
}

func TestDamageEnemyScoresOnce(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	patroller := factory.CreatePatroller(w.ecs, 1000, 480)

	assert.False(t, DamageEnemy(w.ecs, patroller, 15))
	assert.Equal(t, 25, components.Health.Get(patroller).Current)
	assert.Greater(t, components.Flash.Get(patroller).Remaining, 0.0)

	assert.True(t, DamageEnemy(w.ecs, patroller, 100))
	assert.Equal(t, 0, components.Health.Get(patroller).Current, "health floors at zero")
	assert.Equal(t, cfg.Enemies.Patroller.Score, w.match().Score)

	assert.False(t, DamageEnemy(w.ecs, patroller, 100))
	assert.Equal(t, cfg.Enemies.Patroller.Score, w.match().Score)
}

func TestInactiveEnemiesArePruned(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	floater := factory.CreateFloater(w.ecs, 1000, 300)
	DamageEnemy(w.ecs, floater, 100)

	UpdateCollisions(w.ecs)

	assert.False(t, floater.Valid())
	assert.Equal(t, 0, count(w.ecs, tags.Enemy))
}
