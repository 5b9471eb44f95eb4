package systems

import (
	"testing"

	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/leveldata"
	"github.com/automoto/deal-closer/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestCollectEffects(t *testing.T) {
	tests := []struct {
		name       string
		kind       cfg.CollectibleKind
		value      int
		health     int
		ammo       int
		wantHealth int
		wantAmmo   int
		wantScore  int
	}{
		{"health heals half", cfg.CollectibleHealth, 0, 30, 10, 80, 10, 0},
		{"health is capped", cfg.CollectibleHealth, 0, 90, 10, 100, 10, 0},
		{"ammo adds value", cfg.CollectibleAmmo, 5, 100, 10, 100, 15, 0},
		{"ammo is uncapped", cfg.CollectibleAmmo, 5, 100, 1000, 100, 1005, 0},
		{"bonus scores", cfg.CollectibleBonus, 500, 100, 10, 100, 10, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, emptyLayout())
			player := w.player()
			components.Health.Get(player).Current = tt.health
			components.Player.Get(player).CallAmmo = tt.ammo
			pickup := factory.CreateCollectible(w.ecs, tt.kind, leveldata.CollectibleSpawn{
				X: 1000, Y: 480, W: 20, H: 20, Value: tt.value,
			})

			assert.True(t, Collect(w.ecs, player, pickup))
			assert.False(t, Collect(w.ecs, player, pickup), "second collect is a no-op")

			assert.Equal(t, tt.wantHealth, components.Health.Get(player).Current)
			assert.Equal(t, tt.wantAmmo, components.Player.Get(player).CallAmmo)
			assert.Equal(t, tt.wantScore, w.match().Score)
		})
	}
}

func TestCollectOnTouch(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	pickup := factory.CreateCollectible(w.ecs, cfg.CollectibleBonus, leveldata.CollectibleSpawn{
		X: 110, Y: 480, W: 20, H: 20, Value: 1000,
	})

	w.ticks(10)

	assert.True(t, components.Collectible.Get(pickup).Collected)
	assert.Equal(t, 1000, w.match().Score)
	assert.Equal(t, 1, w.audio.count(cfg.SoundCollectItem))
}

func TestCollectibleBobsInPlace(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	pickup := factory.CreateCollectible(w.ecs, cfg.CollectibleHealth, leveldata.CollectibleSpawn{
		X: 2000, Y: 300, W: 20, H: 20,
	})

	w.ticks(6)

	c := components.Collectible.Get(pickup)
	assert.NotZero(t, c.BobOffset)
	assert.LessOrEqual(t, c.BobOffset, cfg.Collectibles.BobAmplitude)
	assert.Equal(t, 300.0, components.Object.Get(pickup).Y, "only the drawing moves")
}
