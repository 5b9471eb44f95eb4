package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/gamemath"
	"github.com/automoto/deal-closer/render"
	"github.com/automoto/deal-closer/systems/factory"
	"github.com/automoto/deal-closer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// skyBands is how many strips approximate the sky gradient.
const skyBands = 12

func RenderLevel(e *ecs.ECS, s render.Surface) {
	canvas, cam, ok := worldCanvas(e, s)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	drawSky(render.Screen(s), cam.Width, level.Height)
	if entry, ok := components.Backdrop.First(e.World); ok {
		drawSkyline(canvas, components.Backdrop.Get(entry), level.GroundY)
	}

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		p := components.Object.Get(entry)
		canvas.Rect(p.X, p.Y, p.W, p.H, cfg.Slate)
		canvas.Rect(p.X, p.Y, p.W, 4, cfg.LightSlate)
	})

	canvas.Rect(0, level.GroundY, level.Width, level.Height-level.GroundY, cfg.Asphalt)
	canvas.Rect(0, level.GroundY, level.Width, 8, cfg.Curb)

	t := elapsed(e)
	tags.Collectible.Each(e.World, func(entry *donburi.Entry) {
		c := components.Collectible.Get(entry)
		if c.Collected {
			return
		}
		drawCollectible(canvas, c, components.Object.Get(entry), t)
	})
}

func drawSky(screen *render.Canvas, width, height float64) {
	band := height / skyBands
	for i := 0; i < skyBands; i++ {
		clr := lerpColor(cfg.Dusk, cfg.Night, float64(i)/(skyBands-1))
		screen.Rect(0, float64(i)*band, width, band+1, clr)
	}
}

func drawSkyline(canvas *render.Canvas, backdrop *components.BackdropData, groundY float64) {
	for _, b := range backdrop.Buildings {
		top := groundY - b.Height
		canvas.Rect(b.X, top, b.Width, b.Height, cfg.Dusk)
		for floor := 0; floor < b.Floors; floor++ {
			for col := 0; col < b.Columns; col++ {
				clr := cfg.Asphalt
				if b.Lit[floor*b.Columns+col] {
					clr = cfg.Gold
				}
				canvas.Rect(
					b.X+factory.WindowInset+float64(col*factory.ColumnWidth),
					top+factory.WindowInset+float64(floor*factory.FloorHeight),
					factory.WindowWidth, factory.WindowHeight, clr,
				)
			}
		}
	}
}

func drawCollectible(canvas *render.Canvas, c *components.CollectibleData, obj *components.ObjectData, t float64) {
	y := obj.Y + c.BobOffset
	pulse := 1 + math.Sin(t*15+obj.X*0.01)*0.1
	switch c.Kind {
	case cfg.CollectibleHealth:
		canvas.Rect(obj.X-2, y-2, obj.W*pulse+4, obj.H*pulse+4, cfg.Green)
		canvas.Text("+", obj.X+obj.W/2, y+15, render.TextLarge, render.AlignCenter, cfg.White)
	case cfg.CollectibleAmmo:
		canvas.Circle(obj.X+obj.W/2, y+obj.H/2, obj.W/2*pulse+2, cfg.Amber)
		canvas.Text("C", obj.X+obj.W/2, y+obj.H/2+5, render.TextSmall, render.AlignCenter, cfg.White)
	case cfg.CollectibleBonus:
		canvas.Rect(obj.X-3, y-3, obj.W*pulse+6, obj.H*pulse+6, cfg.Violet)
		canvas.Text("$", obj.X+obj.W/2, y+obj.H/2+8, render.TextLarge, render.AlignCenter, cfg.White)
	}
}

// RenderMarkers draws the time-of-day poles and, near the end of the level,
// the closing message over the world.
func RenderMarkers(e *ecs.ECS, s render.Surface) {
	canvas, cam, ok := worldCanvas(e, s)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	ui := cfg.UI

	span := float64(ui.LastHour - ui.FirstHour)
	for hour := ui.FirstHour; hour <= ui.LastHour; hour += ui.HourStep {
		x := float64(hour-ui.FirstHour) / span * level.Width
		if !cam.InView(x, 100) {
			continue
		}
		canvas.Rect(x, level.GroundY-60, 4, 60, cfg.Slate)
		canvas.Text(hourLabel(hour), x+10, level.GroundY-40, render.TextSmall, render.AlignLeft, cfg.LightSlate)
	}

	if cam.X > level.Width-cam.Width {
		drawEndingMessage(render.Screen(s), cam.Width, cam.Height)
	}
}

// hourLabel formats a 24-hour clock hour as "6AM" or "10PM".
func hourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12AM"
	case hour < 12:
		return fmt.Sprintf("%dAM", hour)
	case hour == 12:
		return "12PM"
	}
	return fmt.Sprintf("%dPM", hour-12)
}

func drawEndingMessage(screen *render.Canvas, w, h float64) {
	screen.Rect(0, 0, w, h, render.WithAlpha(color.Black, 0.8))
	screen.Text("DEAL CLOSED!", w/2, h/2-40, render.TextTitle, render.AlignCenter, cfg.Green)
	screen.Text("Contract ready for signature", w/2, h/2, render.TextLarge, render.AlignCenter, cfg.LightSlate)
	screen.Text("The corporate closer strikes again!", w/2, h/2+30, render.TextLarge, render.AlignCenter, cfg.LightSlate)
	screen.Text("10:00 PM - End of Business Day", w/2, h/2+80, render.TextNormal, render.AlignCenter, cfg.Slate)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(gamemath.Lerp(float64(x), float64(y), t)))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}
