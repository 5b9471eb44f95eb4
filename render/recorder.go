package render

import "image/color"

// Shape names a primitive captured by Recorder.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
	ShapeText
)

// Op is one recorded draw call in screen coordinates.
type Op struct {
	Shape Shape
	X, Y  float64
	W, H  float64 // W is the radius for circles
	Text  string
	Size  TextSize
	Align Align
	Color color.Color
}

// Recorder is a Surface that keeps every draw call, for headless runs and tests.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Shape: ShapeRect, X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Shape: ShapeCircle, X: cx, Y: cy, W: radius, Color: clr})
}

func (r *Recorder) Text(s string, x, y float64, size TextSize, align Align, clr color.Color) {
	r.Ops = append(r.Ops, Op{Shape: ShapeText, X: x, Y: y, Text: s, Size: size, Align: align, Color: clr})
}

// Texts returns every recorded text run in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Shape == ShapeText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
