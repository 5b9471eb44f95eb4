package systems

import (
	"math"

	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/gamemath"
	"github.com/automoto/deal-closer/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollectibles bobs every pickup and collects the ones the player
// touches.
func UpdateCollectibles(e *ecs.ECS) {
	w, ok := newWorldContext(e)
	if !ok {
		return
	}
	dt := float32(w.dt())
	tags.Collectible.Each(e.World, func(entry *donburi.Entry) {
		c := components.Collectible.Get(entry)
		if c.Collected || c.Bob == nil {
			return
		}
		v, _, _ := c.Bob.Update(dt)
		c.BobOffset = float64(v)
	})

	playerObj := components.Object.Get(w.player)
	col := playerObj.Check(0, 0, tags.ResolvCollectible)
	if col == nil {
		return
	}
	bounds := playerObj.Bounds()
	for _, o := range col.Objects {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if !gamemath.Intersects(bounds, components.Object.Get(entry).Bounds()) {
			continue
		}
		Collect(e, w.player, entry)
	}
}

// Collect applies a pickup to the player. The Collected latch makes repeat
// calls no-ops; it reports whether the effect was applied.
func Collect(e *ecs.ECS, player, entry *donburi.Entry) bool {
	c := components.Collectible.Get(entry)
	if c.Collected {
		return false
	}
	c.Collected = true

	switch c.Kind {
	case cfg.CollectibleHealth:
		health := components.Health.Get(player)
		health.Heal(int(math.Floor(float64(health.Max) * cfg.Collectibles.HealFraction)))
	case cfg.CollectibleAmmo:
		components.Player.Get(player).CallAmmo += c.Value
	case cfg.CollectibleBonus:
		AddScore(e, c.Value)
	}
	PlaySFX(e, cfg.SoundCollectItem)
	log.Debug("collected", "kind", c.Kind, "value", c.Value)
	return true
}
