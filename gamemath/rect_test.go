package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersects(t *testing.T) {
	base := NewRect(0, 0, 10, 10)

	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"self", base, base, true},
		{"overlap corner", base, NewRect(5, 5, 10, 10), true},
		{"contained", base, NewRect(2, 2, 2, 2), true},
		{"touching right edge", base, NewRect(10, 0, 10, 10), false},
		{"touching bottom edge", base, NewRect(0, 10, 10, 10), false},
		{"one unit gap horizontal", base, NewRect(11, 0, 10, 10), false},
		{"one unit gap vertical", base, NewRect(0, 11, 10, 10), false},
		{"overlap x only", base, NewRect(5, 20, 10, 10), false},
		{"overlap y only", base, NewRect(20, 5, 10, 10), false},
		{"negative coords", NewRect(-20, -20, 15, 15), NewRect(-10, -10, 5, 5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Intersects(tt.a, tt.b))
			assert.Equal(t, tt.want, Intersects(tt.b, tt.a), "intersection must be symmetric")
		})
	}
}

func TestIntersectsSymmetricGrid(t *testing.T) {
	a := NewRect(100, 100, 40, 50)
	for dx := -60.0; dx <= 60; dx += 7 {
		for dy := -70.0; dy <= 70; dy += 9 {
			b := NewRect(100+dx, 100+dy, 30, 20)
			assert.Equal(t, Intersects(a, b), Intersects(b, a), "dx=%v dy=%v", dx, dy)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 60.0, r.Bottom())
	assert.Equal(t, 25.0, r.CenterX())
	assert.Equal(t, 40.0, r.CenterY())
}
