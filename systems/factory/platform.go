package factory

import (
	"github.com/automoto/deal-closer/archetypes"
	"github.com/automoto/deal-closer/leveldata"
	"github.com/automoto/deal-closer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	addObject(ecs, platform, resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvPlatform))
	return platform
}
