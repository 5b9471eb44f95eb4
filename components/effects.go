package components

import "github.com/yohamta/donburi"

// FlashData tracks the damage flash, in seconds remaining.
type FlashData struct {
	Remaining float64
}

var Flash = donburi.NewComponentType[FlashData]()

// ScreenShakeData tracks the player's hit shake, in seconds remaining.
type ScreenShakeData struct {
	Remaining float64
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// TrailParticle is a cosmetic particle left behind a projectile.
type TrailParticle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
}

// TrailData holds the particles of one projectile.
type TrailData struct {
	Particles []TrailParticle
}

var Trail = donburi.NewComponentType[TrailData]()
