package factory

import (
	"github.com/automoto/deal-closer/archetypes"
	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/leveldata"
	"github.com/automoto/deal-closer/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCollectible(ecs *ecs.ECS, kind cfg.CollectibleKind, spawn leveldata.CollectibleSpawn) *donburi.Entry {
	c := archetypes.Collectible.Spawn(ecs)
	addObject(ecs, c, resolv.NewObject(spawn.X, spawn.Y, spawn.W, spawn.H, tags.ResolvCollectible))

	// The bob moves the drawing only, the pickup body stays put.
	amp := float32(cfg.Collectibles.BobAmplitude)
	half := float32(cfg.Collectibles.BobDuration / 2)
	bob := gween.NewSequence(
		gween.New(-amp, amp, half, ease.InOutSine),
		gween.New(amp, -amp, half, ease.InOutSine),
	)
	bob.SetLoop(-1)

	components.Collectible.SetValue(c, components.CollectibleData{
		Kind:  kind,
		Value: spawn.Value,
		Bob:   bob,
	})
	return c
}
