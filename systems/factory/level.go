package factory

import (
	"fmt"

	"github.com/automoto/deal-closer/archetypes"
	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level record and everything placed in the layout:
// platforms, enemies, collectibles and the backdrop skyline.
func CreateLevel(ecs *ecs.ECS, layout *leveldata.Layout) (*donburi.Entry, error) {
	level := archetypes.Level.Spawn(ecs)

	levelData := &components.LevelData{
		Name:       layout.Name,
		Width:      layout.Width,
		Height:     layout.Height,
		GroundY:    layout.GroundY,
		BossGateX:  layout.BossGateX,
		SpawnStopX: layout.SpawnStopX,
		VictoryX:   layout.Width - cfg.Level.VictoryMargin,
	}
	if rngEntry, ok := components.RNG.First(ecs.World); ok {
		levelData.SpawnInterval = components.RNG.Get(rngEntry).Range(cfg.Level.Spawner.MinInterval, cfg.Level.Spawner.MaxInterval)
	} else {
		levelData.SpawnInterval = cfg.Level.Spawner.MinInterval
	}
	components.Level.Set(level, levelData)

	for _, p := range layout.Platforms {
		CreatePlatform(ecs, p)
	}

	for _, spawn := range layout.Enemies {
		kind, ok := cfg.ParseEnemyKind(spawn.Kind)
		if !ok {
			return nil, fmt.Errorf("level %s: unknown enemy %q", layout.Name, spawn.Kind)
		}
		if _, err := CreateEnemy(ecs, kind, spawn.X, spawn.Y); err != nil {
			return nil, err
		}
	}

	for _, spawn := range layout.Collectibles {
		kind, ok := cfg.ParseCollectibleKind(spawn.Kind)
		if !ok {
			return nil, fmt.Errorf("level %s: unknown collectible %q", layout.Name, spawn.Kind)
		}
		CreateCollectible(ecs, kind, spawn)
	}

	CreateBackdrop(ecs, layout.Buildings)

	return level, nil
}
