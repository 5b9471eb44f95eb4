package systems

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/render"
	"github.com/yohamta/donburi/ecs"
)

// RenderHUD draws the screen-space overlay from a snapshot of the match.
func RenderHUD(e *ecs.ECS, s render.Surface) {
	snap := TakeSnapshot(e)
	screen := render.Screen(s)
	ui := cfg.UI
	width := float64(cfg.C.Width)

	if snap.BossVisible {
		drawBossBar(screen, snap, width)
	}

	screen.Rect(10, 10, 200, 30, render.WithAlpha(color.Black, 0.5))
	screen.Text(fmt.Sprintf("FPS: %d", int(math.Round(snap.FPS))), 15, 30, render.TextSmall, render.AlignLeft, cfg.White)
	screen.Text(fmt.Sprintf("Enemies: %d", snap.ActiveEnemies), 80, 30, render.TextSmall, render.AlignLeft, cfg.White)

	panelW := ui.HealthBarWidth + 2*ui.HUDMargin
	px := width - panelW - ui.HUDMargin
	screen.Rect(px, 10, panelW, 78, render.WithAlpha(color.Black, 0.5))

	x := px + ui.HUDMargin
	screen.Text("Score: "+FormatScore(snap.Score), x, 30, render.TextNormal, render.AlignLeft, cfg.White)
	screen.Rect(x, 38, ui.HealthBarWidth, ui.HealthBarHeight, cfg.Asphalt)
	screen.Rect(x, 38, ui.HealthBarWidth*snap.HealthFraction, ui.HealthBarHeight, healthColor(snap.HealthFraction))
	screen.Text(fmt.Sprintf("Email: ∞   Calls: %d", snap.CallAmmo), x, 78, render.TextSmall, render.AlignLeft, cfg.White)
}

func drawBossBar(screen *render.Canvas, snap Snapshot, width float64) {
	ui := cfg.UI
	x := (width - ui.BossBarWidth) / 2
	y := ui.BossBarY

	screen.Rect(x-10, y-10, ui.BossBarWidth+20, ui.BossBarHeight+20, render.WithAlpha(color.Black, 0.7))
	screen.Rect(x, y, ui.BossBarWidth, ui.BossBarHeight, cfg.Asphalt)
	screen.Rect(x, y, ui.BossBarWidth*snap.BossHealthFraction, ui.BossBarHeight, cfg.Red)
	screen.Text("Critical Stakeholder", width/2, y+15, render.TextNormal, render.AlignCenter, cfg.White)
	if snap.BossEnraged {
		screen.Text("ENRAGED!", width/2, y+ui.BossBarHeight+25, render.TextSmall, render.AlignCenter, cfg.Red)
	}
}

func healthColor(fraction float64) color.Color {
	switch {
	case fraction > 0.5:
		return cfg.Green
	case fraction > 0.25:
		return cfg.Amber
	}
	return cfg.Red
}

// FormatScore groups digits in thousands: 1234567 becomes "1,234,567".
func FormatScore(n int) string {
	digits := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, digits = "-", digits[1:]
	}
	var out []byte
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	return sign + string(out)
}
