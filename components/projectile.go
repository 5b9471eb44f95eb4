package components

import (
	"github.com/automoto/deal-closer/config"
	"github.com/yohamta/donburi"
)

// ProjectileData is shared by player and enemy projectiles.
// The body is centred on the shot's position.
type ProjectileData struct {
	Kind      config.ProjectileKind
	Direction float64 // ±1, plus spread for boss bursts
	Speed     float64
	Damage    int
	Active    bool

	AnimationTime float64
}

// Hit is terminal: the projectile never damages a second target.
func (p *ProjectileData) Hit() {
	p.Active = false
}

var Projectile = donburi.NewComponentType[ProjectileData]()
