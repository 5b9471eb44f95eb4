package render

import (
	"image/color"

	"github.com/automoto/deal-closer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var textFaces = map[TextSize]fonts.FontName{
	TextSmall:  fonts.GoSmall,
	TextNormal: fonts.Go,
	TextLarge:  fonts.GoBold,
	TextTitle:  fonts.GoTitle,
}

// EbitenSurface rasterizes onto an ebiten image.
type EbitenSurface struct {
	dst *ebiten.Image
}

func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{dst: dst}
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, clr color.Color) {
	vector.FillRect(s.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *EbitenSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), clr, true)
}

// Text draws s with its baseline at y.
func (s *EbitenSurface) Text(str string, x, y float64, size TextSize, align Align, clr color.Color) {
	face := textFaces[size].Get()
	if align == AlignCenter {
		bounds := text.BoundString(face, str)
		x -= float64(bounds.Dx()) / 2
	}
	text.Draw(s.dst, str, face, int(x), int(y), clr)
}
