package factory

import (
	"fmt"
	"math"

	"github.com/automoto/deal-closer/archetypes"
	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the given kind with its top-left corner at (x, y).
func CreateEnemy(ecs *ecs.ECS, kind cfg.EnemyKind, x, y float64) (*donburi.Entry, error) {
	switch kind {
	case cfg.EnemyMeetingDecline:
		return CreateFloater(ecs, x, y), nil
	case cfg.EnemyFinanceReview:
		return CreatePatroller(ecs, x, y), nil
	case cfg.EnemyCriticalStakeholder:
		return CreateBoss(ecs, x, y), nil
	}
	return nil, fmt.Errorf("unknown enemy kind %d", kind)
}

func spawnEnemy(ecs *ecs.ECS, data components.EnemyData, health int, x, y, w, h float64, extra ...donburi.IComponentType) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs, extra...)
	addObject(ecs, enemy, resolv.NewObject(x, y, w, h, tags.ResolvEnemy))

	data.Active = true
	components.Enemy.SetValue(enemy, data)
	components.Health.SetValue(enemy, components.HealthData{Current: health, Max: health})
	return enemy
}

// CreateFloater spawns a MeetingDecline that drifts left on a sine path.
func CreateFloater(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	c := cfg.Enemies.Floater
	enemy := spawnEnemy(ecs, components.EnemyData{
		Kind:       cfg.EnemyMeetingDecline,
		ScoreValue: c.Score,
	}, c.Health, x, y, c.Width, c.Height, components.Floater)
	components.Floater.SetValue(enemy, components.FloaterData{OriginY: y})
	return enemy
}

// CreatePatroller spawns a FinanceReview pacing around x.
func CreatePatroller(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	c := cfg.Enemies.Patroller
	enemy := spawnEnemy(ecs, components.EnemyData{
		Kind:          cfg.EnemyFinanceReview,
		ScoreValue:    c.Score,
		ContactDamage: c.ContactDamage,
	}, c.Health, x, y, c.Width, c.Height, components.Patroller)
	components.Patroller.SetValue(enemy, components.PatrollerData{
		StartX:    x,
		Direction: 1,
	})
	return enemy
}

// CreateBoss spawns a dormant CriticalStakeholder. Its score is rolled from
// the match RNG when one exists.
func CreateBoss(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	c := cfg.Enemies.Boss
	score := c.MinScore
	if rngEntry, ok := components.RNG.First(ecs.World); ok {
		score += components.RNG.Get(rngEntry).Range(0, c.ScoreRange)
	}
	enemy := spawnEnemy(ecs, components.EnemyData{
		Kind:          cfg.EnemyCriticalStakeholder,
		ScoreValue:    int(math.Round(score/c.ScoreRound) * c.ScoreRound),
		ContactDamage: c.ContactDamage,
	}, c.Health, x, y, c.Width, c.Height, components.Boss, components.Physics)

	pulse := gween.NewSequence(
		gween.New(1, 1.15, 0.3, ease.InOutSine),
		gween.New(1.15, 1, 0.3, ease.InOutSine),
	)
	pulse.SetLoop(-1)
	components.Boss.SetValue(enemy, components.BossData{
		Phase:       cfg.BossDormant,
		Direction:   1,
		EnragePulse: 1,
		Pulse:       pulse,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{OnGround: true})
	return enemy
}
