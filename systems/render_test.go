package systems

import (
	"testing"

	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/leveldata"
	"github.com/automoto/deal-closer/render"
	"github.com/automoto/deal-closer/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestRenderHUD(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	AddScore(w.ecs, 1250000)
	w.tick()

	rec := &render.Recorder{}
	RenderHUD(w.ecs, rec)

	texts := rec.Texts()
	assert.Contains(t, texts, "FPS: 60")
	assert.Contains(t, texts, "Enemies: 0")
	assert.Contains(t, texts, "Score: 1,250,000")
	assert.Contains(t, texts, "Email: ∞   Calls: 10")
	assert.NotContains(t, texts, "Critical Stakeholder")
}

func TestRenderHUDBossBar(t *testing.T) {
	w := newTestWorld(t, emptyLayout())
	factory.CreateBoss(w.ecs, 4400, 440)
	w.level().BossSighted = true

	rec := &render.Recorder{}
	RenderHUD(w.ecs, rec)
	assert.Contains(t, rec.Texts(), "Critical Stakeholder")
	assert.NotContains(t, rec.Texts(), "ENRAGED!")
}

func TestRenderFrameTranslatesWorld(t *testing.T) {
	layout := emptyLayout()
	layout.Platforms = []leveldata.Rect{{X: 500, Y: 400, W: 200, H: 20}}
	w := newTestWorld(t, layout)
	w.camera().X = 200

	rec := &render.Recorder{}
	RenderFrame(w.ecs, rec)

	var found bool
	for _, op := range rec.Ops {
		if op.Shape == render.ShapeRect && op.Color == cfg.Slate && op.W == 200 && op.H == 20 {
			found = true
			assert.Equal(t, 300.0, op.X)
			assert.Equal(t, 400.0, op.Y)
		}
	}
	assert.True(t, found, "platform drawn")
}

func TestRenderMarkers(t *testing.T) {
	w := newTestWorld(t, emptyLayout())

	rec := &render.Recorder{}
	RenderMarkers(w.ecs, rec)
	texts := rec.Texts()
	assert.Contains(t, texts, "6AM")
	assert.Contains(t, texts, "8AM")
	assert.NotContains(t, texts, "10AM")
	assert.NotContains(t, texts, "DEAL CLOSED!")

	w.camera().X = 4100
	rec.Reset()
	RenderMarkers(w.ecs, rec)
	texts = rec.Texts()
	assert.Contains(t, texts, "10PM")
	assert.Contains(t, texts, "DEAL CLOSED!")
	assert.Contains(t, texts, "10:00 PM - End of Business Day")
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1500, "-1,500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatScore(tt.in))
	}
}

func TestHourLabel(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{6, "6AM"},
		{11, "11AM"},
		{12, "12PM"},
		{14, "2PM"},
		{22, "10PM"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, hourLabel(tt.hour))
	}
}

func TestHealthColor(t *testing.T) {
	assert.Equal(t, cfg.Green, healthColor(0.8))
	assert.Equal(t, cfg.Amber, healthColor(0.5))
	assert.Equal(t, cfg.Red, healthColor(0.25))
}
