package render

import "image/color"

// Canvas draws world-space primitives onto a Surface.
// It is the only place world coordinates are converted to screen coordinates.
type Canvas struct {
	surface Surface
	offsetX float64
	offsetY float64
}

// NewCanvas returns a Canvas for a camera whose viewport starts at (camX, camY).
func NewCanvas(s Surface, camX, camY float64) *Canvas {
	return &Canvas{surface: s, offsetX: camX, offsetY: camY}
}

// Screen returns a Canvas that draws in screen space, for HUD overlays.
func Screen(s Surface) *Canvas {
	return &Canvas{surface: s}
}

func (c *Canvas) Rect(x, y, w, h float64, clr color.Color) {
	c.surface.FillRect(x-c.offsetX, y-c.offsetY, w, h, clr)
}

func (c *Canvas) Circle(cx, cy, r float64, clr color.Color) {
	c.surface.FillCircle(cx-c.offsetX, cy-c.offsetY, r, clr)
}

func (c *Canvas) Text(s string, x, y float64, size TextSize, align Align, clr color.Color) {
	c.surface.Text(s, x-c.offsetX, y-c.offsetY, size, align, clr)
}
