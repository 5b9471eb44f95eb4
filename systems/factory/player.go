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

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	addObject(ecs, player, obj)

	components.Player.SetValue(player, components.PlayerData{
		FacingRight:    true,
		JumpsRemaining: cfg.Player.MaxJumps,
		MaxJumps:       cfg.Player.MaxJumps,
		CallAmmo:       cfg.Player.StartingAmmo,
	})
	components.Physics.SetValue(player, components.PhysicsData{})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	return player
}
