package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// faces are the text faces shared by the overlays.
type faces struct {
	title  text.Face
	normal text.Face
	small  text.Face
}

func loadFaces() faces {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}
	return faces{
		title:  &text.GoTextFace{Source: bold, Size: 32},
		normal: &text.GoTextFace{Source: regular, Size: 16},
		small:  &text.GoTextFace{Source: regular, Size: 13},
	}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{37, 99, 235, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{59, 130, 246, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 64, 175, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{55, 65, 81, 255}),
	}
}

func buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:    color.RGBA{255, 255, 255, 255},
		Hover:   color.RGBA{255, 255, 200, 255},
		Pressed: color.RGBA{200, 200, 200, 255},
	}
}

// centered places a widget in the middle of an anchor layout.
func centered() widget.WidgetOpt {
	return widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	})
}

func column(spacing int, padding int) widget.ContainerOpt {
	return widget.ContainerOpts.Layout(widget.NewRowLayout(
		widget.RowLayoutOpts.Direction(widget.DirectionVertical),
		widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(padding)),
		widget.RowLayoutOpts.Spacing(spacing),
	))
}

// centerRow keeps a child horizontally centred inside a vertical row layout.
func centerRow() widget.WidgetOpt {
	return widget.WidgetOpts.LayoutData(widget.RowLayoutData{
		Position: widget.RowLayoutPositionCenter,
	})
}
