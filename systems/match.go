package systems

import (
	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AddScore adds points to the match total.
func AddScore(e *ecs.ECS, points int) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	components.Match.Get(matchEntry).AddScore(points)
}

// GameOver ends the match. It is one-way: later calls keep the first result.
func GameOver(e *ecs.ECS, victory bool) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	if !match.Playing() {
		return
	}
	match.State = cfg.MatchStateGameOver
	match.Victory = victory
	ClearSchedule(e)

	if victory {
		PlaySFX(e, cfg.SoundVictory)
	} else {
		PlaySFX(e, cfg.SoundGameOver)
	}
	log.Info("match over", "victory", victory, "score", match.Score, "elapsed", match.Elapsed)
}

// UpdateMatch latches the boss sighting for the HUD and checks the victory
// line.
func UpdateMatch(e *ecs.ECS) {
	w, ok := newWorldContext(e)
	if !ok {
		return
	}

	if !w.level.BossSighted {
		if boss, ok := findBoss(e); ok {
			obj := components.Object.Get(boss)
			if w.camera.InView(obj.X, cfg.Level.BossSightMargin) {
				w.level.BossSighted = true
			}
		}
	}

	if w.playerX() > w.level.VictoryX {
		GameOver(e, true)
	}
}

// findBoss returns the active boss, if one is left.
func findBoss(e *ecs.ECS) (*donburi.Entry, bool) {
	var boss *donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if boss != nil || !entry.HasComponent(components.Boss) {
			return
		}
		if components.Enemy.Get(entry).Active {
			boss = entry
		}
	})
	return boss, boss != nil
}
