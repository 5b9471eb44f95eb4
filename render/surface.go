package render

import "image/color"

// Align selects how a text run is anchored on its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextSize selects one of the loaded font faces.
type TextSize int

const (
	TextSmall TextSize = iota
	TextNormal
	TextLarge
	TextTitle
)

// Surface rasterizes primitives in screen coordinates.
type Surface interface {
	FillRect(x, y, w, h float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	Text(s string, x, y float64, size TextSize, align Align, clr color.Color)
}

// WithAlpha returns clr with its opacity scaled by alpha in [0, 1].
func WithAlpha(clr color.Color, alpha float64) color.Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	r, g, b, a := clr.RGBA()
	if a == 0 {
		return color.NRGBA{}
	}
	// un-premultiply, then apply the new opacity
	return color.NRGBA{
		R: uint8(r * 0xffff / a >> 8),
		G: uint8(g * 0xffff / a >> 8),
		B: uint8(b * 0xffff / a >> 8),
		A: uint8(float64(a>>8) * alpha),
	}
}
