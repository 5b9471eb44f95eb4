package systems

import (
	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/gamemath"
	"github.com/automoto/deal-closer/systems/factory"
	"github.com/automoto/deal-closer/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(e *ecs.ECS) {
	w, ok := newWorldContext(e)
	if !ok {
		return
	}
	dt := w.dt()
	input := getOrCreateInput(e)
	player := components.Player.Get(w.player)
	physics := components.Physics.Get(w.player)
	obj := components.Object.Get(w.player)

	handlePlayerInput(e, input, player, physics, obj)
	updatePlayerPhysics(e, w.level, player, physics, obj, dt)

	player.AnimationTime += dt
	player.EmailCooldown = gamemath.Decay(player.EmailCooldown, dt)
	player.CallCooldown = gamemath.Decay(player.CallCooldown, dt)

	flash := components.Flash.Get(w.player)
	flash.Remaining = gamemath.Decay(flash.Remaining, dt)
	shake := components.ScreenShake.Get(w.player)
	shake.Remaining = gamemath.Decay(shake.Remaining, dt*cfg.Player.ShakeDecayRate)

	obj.X = gamemath.Clamp(obj.X, 0, w.level.Width-obj.W)
	obj.Update()
}

func handlePlayerInput(e *ecs.ECS, input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, obj *components.ObjectData) {
	player.Moving = false
	switch {
	case input.Action(cfg.ActionMoveLeft).Pressed:
		physics.SpeedX = -cfg.Player.Speed
		player.FacingRight = false
		player.Moving = true
	case input.Action(cfg.ActionMoveRight).Pressed:
		physics.SpeedX = cfg.Player.Speed
		player.FacingRight = true
		player.Moving = true
	default:
		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, cfg.Player.Friction)
	}

	if input.Action(cfg.ActionJump).Pressed && player.JumpsRemaining > 0 {
		physics.SpeedY = -cfg.Player.JumpPower
		physics.OnGround = false
		player.JumpsRemaining--
		PlaySFX(e, cfg.SoundJump)
	}

	if input.Action(cfg.ActionFirePrimary).Pressed {
		FireEmail(e, player, obj)
	}
	if input.Action(cfg.ActionFireSecondary).Pressed {
		FireCall(e, player, obj)
	}
}

// updatePlayerPhysics integrates the player and lands it on platforms or the
// ground plane. Landing needs downward motion and the feet at or above the
// platform top before the move.
func updatePlayerPhysics(e *ecs.ECS, level *components.LevelData, player *components.PlayerData, physics *components.PhysicsData, obj *components.ObjectData, dt float64) {
	if !physics.OnGround {
		physics.SpeedY += cfg.Player.Gravity * dt
	}

	prevBottom := obj.Y + obj.H
	obj.X += physics.SpeedX * dt
	obj.Y += physics.SpeedY * dt

	physics.OnGround = false
	if physics.SpeedY >= 0 {
		tags.Platform.Each(e.World, func(p *donburi.Entry) {
			if physics.OnGround {
				return
			}
			plat := components.Object.Get(p)
			bottom := obj.Y + obj.H
			if obj.X < plat.X+plat.W && obj.X+obj.W > plat.X &&
				prevBottom <= plat.Y && bottom >= plat.Y {
				land(player, physics, obj, plat.Y)
			}
		})
	}

	if obj.Y+obj.H >= level.GroundY {
		land(player, physics, obj, level.GroundY)
	}
}

func land(player *components.PlayerData, physics *components.PhysicsData, obj *components.ObjectData, surfaceY float64) {
	obj.Y = surfaceY - obj.H
	physics.SpeedY = 0
	physics.OnGround = true
	player.JumpsRemaining = player.MaxJumps
}

// muzzle returns where the player's shots start: the leading edge at mid height.
func muzzle(player *components.PlayerData, obj *components.ObjectData) (float64, float64) {
	x := obj.X
	if player.FacingRight {
		x += obj.W
	}
	return x, obj.Y + obj.H/2
}

// FireEmail fires the primary weapon if its cooldown has run out.
func FireEmail(e *ecs.ECS, player *components.PlayerData, obj *components.ObjectData) bool {
	if player.EmailCooldown > 0 {
		return false
	}
	x, y := muzzle(player, obj)
	factory.CreateProjectile(e, cfg.ProjectileEmail, x, y, player.Facing())
	player.EmailCooldown = cfg.Weapons.Email.Cooldown
	PlaySFX(e, cfg.SoundEmailShoot)
	return true
}

// FireCall fires the ammo weapon if its cooldown has run out and ammo is left.
// Each shot costs exactly one ammo.
func FireCall(e *ecs.ECS, player *components.PlayerData, obj *components.ObjectData) bool {
	if player.CallCooldown > 0 || player.CallAmmo <= 0 {
		return false
	}
	x, y := muzzle(player, obj)
	factory.CreateProjectile(e, cfg.ProjectileCall, x, y, player.Facing())
	player.CallCooldown = cfg.Weapons.Call.Cooldown
	player.CallAmmo--
	PlaySFX(e, cfg.SoundCallShoot)
	return true
}

// DamagePlayer floors health at zero, starts the hit flash and shake, and ends
// the match the first time health reaches zero.
func DamagePlayer(e *ecs.ECS, entry *donburi.Entry, amount int) {
	health := components.Health.Get(entry)
	player := components.Player.Get(entry)

	health.Damage(amount)
	components.Flash.Get(entry).Remaining = cfg.Player.DamageFlash
	components.ScreenShake.Get(entry).Remaining = cfg.Player.ScreenShake
	PlaySFX(e, cfg.SoundPlayerHit)

	if health.IsDepleted() && !player.Defeated {
		player.Defeated = true
		log.Debug("player defeated", "damage", amount)
		GameOver(e, false)
	}
}
