package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestClockFirstTickIsZero(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClockWithSource(1.0/60, ft.now)
	assert.Equal(t, 0.0, c.Tick())
}

func TestClockCapsDelta(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{"short frame", 10 * time.Millisecond, 0.010},
		{"exact cap", time.Second / 60, 1.0 / 60},
		{"hitch", 250 * time.Millisecond, 1.0 / 60},
		{"tab resumed", 30 * time.Second, 1.0 / 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := &fakeTime{t: time.Unix(1000, 0)}
			c := NewClockWithSource(1.0/60, ft.now)
			c.Tick()
			ft.advance(tt.elapsed)
			assert.InDelta(t, tt.want, c.Tick(), 1e-9)
		})
	}
}

func TestClockNeverNegative(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClockWithSource(1.0/60, ft.now)
	c.Tick()
	ft.advance(-time.Second)
	assert.Equal(t, 0.0, c.Tick())
}

func TestClockReset(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClockWithSource(1.0/60, ft.now)
	c.Tick()
	ft.advance(5 * time.Millisecond)
	c.Reset()
	assert.Equal(t, 0.0, c.Tick())
}

func TestClockFPS(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClockWithSource(1.0/60, ft.now)
	c.Tick()
	for i := 0; i < 200; i++ {
		ft.advance(20 * time.Millisecond)
		c.Tick()
	}
	assert.InDelta(t, 50.0, c.FPS(), 0.5)
}
