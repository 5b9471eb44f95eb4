package systems

import (
	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Snapshot is a read-only copy of the state the HUD and overlays show.
type Snapshot struct {
	Score          int
	Health         int
	MaxHealth      int
	HealthFraction float64
	CallAmmo       int

	State   cfg.MatchStateID
	Victory bool

	BossVisible        bool
	BossHealthFraction float64
	BossEnraged        bool

	ActiveEnemies int
	Clock         float64
	FPS           float64
}

// TakeSnapshot copies the current match, player and boss state.
func TakeSnapshot(e *ecs.ECS) Snapshot {
	var s Snapshot
	if matchEntry, ok := components.Match.First(e.World); ok {
		match := components.Match.Get(matchEntry)
		clock := components.Clock.Get(matchEntry)
		s.Score = match.Score
		s.State = match.State
		s.Victory = match.Victory
		s.Clock = clock.Elapsed
		s.FPS = clock.FPS
	}

	if player, ok := tags.Player.First(e.World); ok {
		health := components.Health.Get(player)
		s.Health = health.Current
		s.MaxHealth = health.Max
		s.HealthFraction = health.Fraction()
		s.CallAmmo = components.Player.Get(player).CallAmmo
	}

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if components.Enemy.Get(entry).Active {
			s.ActiveEnemies++
		}
	})

	if levelEntry, ok := components.Level.First(e.World); ok {
		if boss, ok := findBoss(e); ok && components.Level.Get(levelEntry).BossSighted {
			s.BossVisible = true
			s.BossHealthFraction = components.Health.Get(boss).Fraction()
			s.BossEnraged = components.Boss.Get(boss).Phase == cfg.BossPhaseTwo
		}
	}
	return s
}
