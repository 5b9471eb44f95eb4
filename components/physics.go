package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	SpeedX   float64 // px/s
	SpeedY   float64 // px/s
	OnGround bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
