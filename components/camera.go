package components

import "github.com/yohamta/donburi"

type CameraData struct {
	X       float64 // world-space offset of the viewport's left edge
	Y       float64
	TargetX float64
	Width   float64
	Height  float64
}

// Left returns the world x of the viewport's left edge.
func (c *CameraData) Left() float64 { return c.X }

// Right returns the world x of the viewport's right edge.
func (c *CameraData) Right() float64 { return c.X + c.Width }

// InView reports whether world x lies inside the viewport expanded by margin.
func (c *CameraData) InView(x, margin float64) bool {
	return x >= c.X-margin && x <= c.X+c.Width+margin
}

var Camera = donburi.NewComponentType[CameraData]()
