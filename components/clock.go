package components

import "github.com/yohamta/donburi"

// ClockData carries the capped delta of the current tick.
type ClockData struct {
	Delta   float64
	Elapsed float64
	// FPS is the smoothed frame rate reported by the host loop
	FPS float64
}

var Clock = donburi.NewComponentType[ClockData]()
