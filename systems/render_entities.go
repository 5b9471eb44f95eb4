package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/render"
	"github.com/automoto/deal-closer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func RenderEnemies(e *ecs.ECS, s render.Surface) {
	canvas, _, ok := worldCanvas(e, s)
	if !ok {
		return
	}
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if !enemy.Active {
			return
		}
		switch enemy.Kind {
		case cfg.EnemyMeetingDecline:
			drawFloater(canvas, entry)
		case cfg.EnemyFinanceReview:
			drawPatroller(canvas, entry)
		case cfg.EnemyCriticalStakeholder:
			drawBoss(canvas, entry)
		}
	})
}

// bodyColor swaps in the hit flash while it lasts.
func bodyColor(entry *donburi.Entry, base color.Color) color.Color {
	if components.Flash.Get(entry).Remaining > 0 {
		return cfg.Red
	}
	return base
}

// drawEnemyHealth draws a small bar over a damaged enemy.
func drawEnemyHealth(canvas *render.Canvas, health *components.HealthData, x, y, w, h float64) {
	canvas.Rect(x, y, w, h, cfg.Charcoal)
	canvas.Rect(x, y, w*health.Fraction(), h, cfg.Red)
}

func drawFloater(canvas *render.Canvas, entry *donburi.Entry) {
	enemy := components.Enemy.Get(entry)
	health := components.Health.Get(entry)
	obj := components.Object.Get(entry)
	y := obj.Y + math.Sin(enemy.AnimationTime*8)*2

	canvas.Rect(obj.X, y, obj.W, obj.H, bodyColor(entry, cfg.Violet))
	canvas.Rect(obj.X+2, y, obj.W-4, 6, cfg.DeepPurple)
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			canvas.Rect(obj.X+4+float64(col*5), y+8+float64(row*3), 3, 2, cfg.Purple)
		}
	}
	canvas.Text("×", obj.X+obj.W/2, y+obj.H/2+4, render.TextLarge, render.AlignCenter, cfg.Red)

	if health.Current < health.Max {
		drawEnemyHealth(canvas, health, obj.X, y-8, obj.W, 4)
	}
}

func drawPatroller(canvas *render.Canvas, entry *donburi.Entry) {
	health := components.Health.Get(entry)
	patrol := components.Patroller.Get(entry)
	obj := components.Object.Get(entry)

	canvas.Rect(obj.X, obj.Y, obj.W, obj.H, bodyColor(entry, cfg.Amber))
	canvas.Rect(obj.X+3, obj.Y+3, obj.W-6, 15, cfg.Ink)
	canvas.Text("$$$", obj.X+obj.W/2, obj.Y+13, render.TextSmall, render.AlignCenter, cfg.Green)
	for row := 0; row < 4; row++ {
		for col := 0; col < 3; col++ {
			canvas.Rect(obj.X+4+float64(col*8), obj.Y+20+float64(row*6), 6, 4, cfg.Bronze)
		}
	}

	eyeX := obj.X + 8
	if patrol.Direction > 0 {
		eyeX = obj.X + obj.W - 8
	}
	canvas.Circle(eyeX, obj.Y-5, 3, cfg.Red)

	if health.Current < health.Max {
		drawEnemyHealth(canvas, health, obj.X, obj.Y-10, obj.W, 4)
	}
}

func drawBoss(canvas *render.Canvas, entry *donburi.Entry) {
	enemy := components.Enemy.Get(entry)
	health := components.Health.Get(entry)
	boss := components.Boss.Get(entry)
	obj := components.Object.Get(entry)

	w, h := obj.W, obj.H
	if boss.Phase == cfg.BossPhaseTwo && boss.EnragePulse > 0 {
		w *= boss.EnragePulse
		h *= boss.EnragePulse
	}
	x := obj.X - (w-obj.W)/2
	y := obj.Y - (h - obj.H) + math.Sin(enemy.AnimationTime*4)*2
	cx := x + w/2

	canvas.Rect(x, y, w, h, bodyColor(entry, cfg.Crimson))
	canvas.Rect(x+10, y+15, w-20, h-30, cfg.Maroon)
	canvas.Rect(cx-4, y+20, 8, 30, cfg.Ink)
	canvas.Circle(cx, y+10, 15, cfg.Gold)
	canvas.Circle(cx-6, y+6, 2, cfg.Red)
	canvas.Circle(cx+6, y+6, 2, cfg.Red)

	for i := 0; i < 3; i++ {
		angle := enemy.AnimationTime + float64(i)*2
		canvas.Text("$", cx+math.Cos(angle)*40, y+h/2+math.Sin(angle)*20, render.TextNormal, render.AlignCenter, cfg.Green)
	}

	drawEnemyHealth(canvas, health, obj.X-10, obj.Y-20, obj.W+20, 8)
	canvas.Text("Critical Stakeholder", obj.X+obj.W/2, obj.Y-30, render.TextNormal, render.AlignCenter, cfg.White)
	if boss.Phase == cfg.BossPhaseTwo {
		canvas.Text("ENRAGED!", obj.X+obj.W/2, obj.Y-45, render.TextSmall, render.AlignCenter, cfg.Red)
	}
}

func RenderProjectiles(e *ecs.ECS, s render.Surface) {
	canvas, _, ok := worldCanvas(e, s)
	if !ok {
		return
	}
	draw := func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		if !p.Active {
			return
		}
		obj := components.Object.Get(entry)
		x, y := obj.X+obj.W/2, obj.Y+obj.H/2
		switch p.Kind {
		case cfg.ProjectileEmail:
			drawEmail(canvas, p, x, y, obj.W, obj.H)
		case cfg.ProjectileCall:
			drawCall(canvas, entry, p, x, y)
		case cfg.ProjectileEnemy:
			drawRejection(canvas, p, x, y)
		}
	}
	tags.Projectile.Each(e.World, draw)
	tags.EnemyProjectile.Each(e.World, draw)
}

func drawEmail(canvas *render.Canvas, p *components.ProjectileData, x, y, w, h float64) {
	pulse := 1 + math.Sin(p.AnimationTime*20)*0.1
	w, h = w*pulse, h*pulse
	canvas.Rect(x-w/2, y-h/2, w, h, cfg.Mint)
	canvas.Rect(x-w/2+2, y-h/2, w-4, h/2, cfg.Green)
	for i := 1; i <= 3; i++ {
		alpha := float64(4-i) / 4
		canvas.Circle(x-p.Direction*float64(i*8), y, 2, render.WithAlpha(cfg.Mint, alpha))
	}
}

func drawCall(canvas *render.Canvas, entry *donburi.Entry, p *components.ProjectileData, x, y float64) {
	if entry.HasComponent(components.Trail) {
		for _, part := range components.Trail.Get(entry).Particles {
			canvas.Circle(part.X, part.Y, 2, render.WithAlpha(cfg.Amber, part.Life/cfg.Projectiles.TrailLifetime))
		}
	}
	bounce := math.Sin(p.AnimationTime*30) * 2
	canvas.Rect(x-8, y-6+bounce, 16, 12, cfg.Amber)
	canvas.Rect(x-6, y-4+bounce, 12, 8, cfg.Gold)

	wave := math.Sin(p.AnimationTime*10)*0.5 + 0.5
	canvas.Circle(x, y+bounce, 20, render.WithAlpha(cfg.Amber, 0.3*wave))
	canvas.Circle(x, y+bounce, 15, render.WithAlpha(cfg.Amber, 0.5*wave))
}

func drawRejection(canvas *render.Canvas, p *components.ProjectileData, x, y float64) {
	pulse := 1 + math.Sin(p.AnimationTime*15)*0.2
	canvas.Rect(x-5, y-3, 10*pulse, 6*pulse, cfg.Red)
	canvas.Text("!", x, y+2, render.TextSmall, render.AlignCenter, cfg.White)
}

func RenderPlayer(e *ecs.ECS, s render.Surface) {
	canvas, _, ok := worldCanvas(e, s)
	if !ok {
		return
	}
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)

	x, y := obj.X, obj.Y
	// The shake is cosmetic and stays off the simulation RNG.
	if shake := components.ScreenShake.Get(entry).Remaining; shake > 0 {
		x += (rand.Float64() - 0.5) * shake * cfg.Player.ShakeMagnitude
		y += (rand.Float64() - 0.5) * shake * cfg.Player.ShakeMagnitude
	}

	canvas.Rect(x+8, y+10, 24, 30, bodyColor(entry, cfg.Blue))
	canvas.Circle(x+obj.W/2, y+8, 8, cfg.Gold)
	canvas.Rect(x+18, y+15, 4, 20, cfg.Crimson)

	briefcaseX := x - 8
	if player.FacingRight {
		briefcaseX = x + 32
	}
	canvas.Rect(briefcaseX, y+20, 8, 6, cfg.Violet)

	legOffset := 0.0
	if player.Moving {
		legOffset = math.Sin(player.AnimationTime*10) * 3
	}
	canvas.Rect(x+12, y+40, 6, 10, cfg.Navy)
	canvas.Rect(x+22, y+40+legOffset, 6, 10, cfg.Navy)

	if player.EmailCooldown > 0 {
		canvas.Circle(x+obj.W/2, y-10, 3, cfg.Mint)
	}
	if player.CallCooldown > 0 {
		canvas.Circle(x+obj.W/2, y-15, 3, cfg.Amber)
	}
}
