package systems

import (
	"math"

	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/gamemath"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type bossBehavior struct{}

func (bossBehavior) update(w *worldContext, entry *donburi.Entry) {
	c := cfg.Enemies.Boss
	boss := components.Boss.Get(entry)
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry)
	dt := w.dt()

	if boss.Dormant() {
		if !bossGateInView(w.camera, w.level) {
			return
		}
		boss.Phase = cfg.BossPhaseOne
		w.level.BossActivated = true
		log.Info("boss activated", "camera", w.camera.X)
	}
	checkBossPhase(entry)

	speed := c.Speed
	if boss.Phase == cfg.BossPhaseTwo {
		speed = c.EnragedSpeed
		v, _, _ := boss.Pulse.Update(float32(dt))
		boss.EnragePulse = float64(v)
	}

	// Movement
	dx := w.playerX() - obj.X
	if math.Abs(dx) > c.MinChaseDistance {
		boss.Direction = gamemath.Sign(dx)
		obj.X += speed * boss.Direction * dt
	}

	boss.JumpTimer += dt
	if boss.JumpTimer > c.JumpCooldown && physics.OnGround && math.Abs(dx) < c.JumpRange {
		physics.SpeedY = -c.JumpPower
		physics.OnGround = false
		boss.JumpTimer = 0
	}
	if !physics.OnGround {
		physics.SpeedY += c.Gravity * dt
		obj.Y += physics.SpeedY * dt
		if obj.Y+obj.H >= w.level.GroundY {
			obj.Y = w.level.GroundY - obj.H
			physics.SpeedY = 0
			physics.OnGround = true
		}
	}

	// Attacks. The timer resets on expiry even when the player is out of range.
	boss.AttackTimer += dt
	if boss.AttackTimer < c.AttackInterval {
		return
	}
	boss.AttackTimer = 0
	if math.Abs(w.playerX()-obj.X) >= c.AttackRange {
		return
	}
	if boss.Phase == cfg.BossPhaseTwo {
		for i := 0; i < c.BurstCount; i++ {
			shot := i
			w.after(float64(i)*c.BurstStagger, entry, func(e *ecs.ECS, owner *donburi.Entry) {
				fireBurstShot(e, owner, shot)
			})
		}
		return
	}
	fireBossShot(w, entry, 0)
}

func (bossBehavior) contact(w *worldContext, entry *donburi.Entry, _ *donburi.Entry) bool {
	return cooldownContact(w, entry)
}

// bossGateInView reports whether the boss gate has entered the viewport.
func bossGateInView(camera *components.CameraData, level *components.LevelData) bool {
	return camera.X > level.BossGateX-camera.Width
}

// checkBossPhase enrages an awake boss once health is at or below the
// phase-two ratio.
func checkBossPhase(entry *donburi.Entry) {
	boss := components.Boss.Get(entry)
	if boss.Phase != cfg.BossPhaseOne {
		return
	}
	health := components.Health.Get(entry)
	if float64(health.Current) <= float64(health.Max)*cfg.Enemies.Boss.PhaseTwoRatio {
		boss.Phase = cfg.BossPhaseTwo
		log.Info("boss phase 2", "health", health.Current)
	}
}

// fireBossShot fires toward the player's current x with spread added to the
// direction. Direction falls back to the boss heading when aligned.
func fireBossShot(w *worldContext, entry *donburi.Entry, spread float64) {
	c := cfg.Enemies.Boss
	boss := components.Boss.Get(entry)
	obj := components.Object.Get(entry)

	dir := gamemath.Sign(w.playerX() - obj.X)
	if dir == 0 {
		dir = boss.Direction
	}
	w.fireEnemyProjectile(obj.X+obj.W/2, obj.Y+c.ShotOffsetY, dir+spread)
}

// fireBurstShot is one staggered phase-two shot. The boss may have died or the
// match may have ended since it was queued.
func fireBurstShot(e *ecs.ECS, owner *donburi.Entry, i int) {
	if !owner.Valid() || !components.Enemy.Get(owner).Active || !IsPlaying(e) {
		return
	}
	w, ok := newWorldContext(e)
	if !ok {
		return
	}
	c := cfg.Enemies.Boss
	spread := (float64(i) - float64(c.BurstCount-1)/2) * c.BurstSpread
	fireBossShot(w, owner, spread)
}
