package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasSubtractsCamera(t *testing.T) {
	rec := &Recorder{}
	c := NewCanvas(rec, 300, 0)

	c.Rect(350, 100, 10, 20, color.White)
	c.Circle(310, 50, 4, color.White)
	c.Text("hi", 700, 40, TextNormal, AlignCenter, color.White)

	require.Len(t, rec.Ops, 3)
	assert.Equal(t, 50.0, rec.Ops[0].X)
	assert.Equal(t, 100.0, rec.Ops[0].Y)
	assert.Equal(t, 10.0, rec.Ops[0].W)
	assert.Equal(t, 10.0, rec.Ops[1].X)
	assert.Equal(t, 400.0, rec.Ops[2].X)
	assert.Equal(t, AlignCenter, rec.Ops[2].Align)
}

func TestCanvasVerticalOffset(t *testing.T) {
	rec := &Recorder{}
	NewCanvas(rec, 0, 25).Rect(0, 100, 1, 1, color.White)
	assert.Equal(t, 75.0, rec.Ops[0].Y)
}

func TestScreenCanvasPassesThrough(t *testing.T) {
	rec := &Recorder{}
	Screen(rec).Rect(10, 20, 30, 40, color.White)
	assert.Equal(t, Op{Shape: ShapeRect, X: 10, Y: 20, W: 30, H: 40, Color: color.White}, rec.Ops[0])
}

func TestWithAlpha(t *testing.T) {
	got := WithAlpha(color.RGBA{R: 245, G: 158, B: 11, A: 255}, 0.5)
	assert.Equal(t, color.NRGBA{R: 245, G: 158, B: 11, A: 127}, got)

	assert.Equal(t, uint8(255), WithAlpha(color.White, 2).(color.NRGBA).A)
	assert.Equal(t, uint8(0), WithAlpha(color.White, -1).(color.NRGBA).A)
}

func TestRecorderTexts(t *testing.T) {
	rec := &Recorder{}
	rec.FillRect(0, 0, 1, 1, color.White)
	rec.Text("a", 0, 0, TextSmall, AlignLeft, color.White)
	rec.Text("b", 0, 0, TextSmall, AlignLeft, color.White)
	assert.Equal(t, []string{"a", "b"}, rec.Texts())

	rec.Reset()
	assert.Empty(t, rec.Ops)
}
