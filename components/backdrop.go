package components

import "github.com/yohamta/donburi"

// Building is a decorative skyline block with a grid of windows.
type Building struct {
	X, Width, Height float64
	Floors, Columns  int
	Lit              []bool // Floors*Columns, row-major
}

// BackdropData is the decorative skyline, refreshed on a timer.
type BackdropData struct {
	Buildings    []Building
	RefreshTimer float64
}

var Backdrop = donburi.NewComponentType[BackdropData]()
