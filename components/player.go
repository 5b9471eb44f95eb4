package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	FacingRight bool
	Moving      bool

	JumpsRemaining int
	MaxJumps       int

	EmailCooldown float64
	CallCooldown  float64
	CallAmmo      int

	// Set once health first reaches zero
	Defeated bool

	AnimationTime float64
}

// Facing returns +1 when facing right, -1 otherwise.
func (p *PlayerData) Facing() float64 {
	if p.FacingRight {
		return 1
	}
	return -1
}

var Player = donburi.NewComponentType[PlayerData]()
