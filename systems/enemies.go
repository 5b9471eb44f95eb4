package systems

import (
	"math"

	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/gamemath"
	"github.com/automoto/deal-closer/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// enemyBehavior is the per-kind capability set. update advances movement and
// attacks; contact applies the kind's policy once bodies overlap and reports
// whether the player was hit.
type enemyBehavior interface {
	update(w *worldContext, e *donburi.Entry)
	contact(w *worldContext, e *donburi.Entry, player *donburi.Entry) bool
}

var behaviors = map[cfg.EnemyKind]enemyBehavior{
	cfg.EnemyMeetingDecline:      floaterBehavior{},
	cfg.EnemyFinanceReview:       patrollerBehavior{},
	cfg.EnemyCriticalStakeholder: bossBehavior{},
}

// UpdateEnemies advances every active enemy and prunes the inactive ones in
// the same pass.
func UpdateEnemies(e *ecs.ECS) {
	w, ok := newWorldContext(e)
	if !ok {
		return
	}
	dt := w.dt()

	var inactive []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if enemy.Active {
			enemy.AnimationTime += dt
			enemy.ContactCooldown = gamemath.Decay(enemy.ContactCooldown, dt)
			flash := components.Flash.Get(entry)
			flash.Remaining = gamemath.Decay(flash.Remaining, dt)

			behaviors[enemy.Kind].update(w, entry)
			components.Object.Get(entry).Update()
		}
		if !enemy.Active {
			inactive = append(inactive, entry)
		}
	})

	for _, entry := range inactive {
		removeEntity(e, entry)
	}
}

// pruneInactiveEnemies removes enemies deactivated outside UpdateEnemies.
func pruneInactiveEnemies(e *ecs.ECS) {
	var inactive []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if !components.Enemy.Get(entry).Active {
			inactive = append(inactive, entry)
		}
	})
	for _, entry := range inactive {
		removeEntity(e, entry)
	}
}

// Targetable reports whether an enemy can be hit: it is active and, for the
// boss, awake.
func Targetable(entry *donburi.Entry) bool {
	if !components.Enemy.Get(entry).Active {
		return false
	}
	if entry.HasComponent(components.Boss) && components.Boss.Get(entry).Dormant() {
		return false
	}
	return true
}

// DamageEnemy floors health at zero and sets the hit flash. The first
// zero-health transition deactivates the enemy and awards its score; later
// calls are no-ops. It reports whether this call killed the enemy.
func DamageEnemy(e *ecs.ECS, entry *donburi.Entry, amount int) bool {
	if !Targetable(entry) {
		return false
	}
	enemy := components.Enemy.Get(entry)
	health := components.Health.Get(entry)

	health.Damage(amount)
	components.Flash.Get(entry).Remaining = cfg.Enemies.DamageFlash

	if entry.HasComponent(components.Boss) {
		checkBossPhase(entry)
	}

	if !health.IsDepleted() || enemy.Scored {
		return false
	}
	enemy.Scored = true
	enemy.Active = false
	AddScore(e, enemy.ScoreValue)
	log.Debug("enemy destroyed", "kind", enemy.Kind, "score", enemy.ScoreValue)
	return true
}

// checkPlayerCollision tests bounds overlap and applies the kind's contact
// policy.
func checkPlayerCollision(w *worldContext, entry *donburi.Entry) bool {
	if !Targetable(entry) {
		return false
	}
	bounds := components.Object.Get(entry).Bounds()
	if !gamemath.Intersects(bounds, w.playerBounds()) {
		return false
	}
	return behaviors[components.Enemy.Get(entry).Kind].contact(w, entry, w.player)
}

// cooldownContact deals the enemy's flat contact damage at most once per
// contact cooldown.
func cooldownContact(w *worldContext, entry *donburi.Entry) bool {
	enemy := components.Enemy.Get(entry)
	if enemy.ContactCooldown > 0 {
		return false
	}
	w.damagePlayer(enemy.ContactDamage)
	enemy.ContactCooldown = cfg.Enemies.ContactCooldown
	return true
}

type floaterBehavior struct{}

func (floaterBehavior) update(w *worldContext, entry *donburi.Entry) {
	c := cfg.Enemies.Floater
	enemy := components.Enemy.Get(entry)
	floater := components.Floater.Get(entry)
	obj := components.Object.Get(entry)

	obj.Y = floater.OriginY + math.Sin(enemy.AnimationTime*c.Frequency)*c.Amplitude
	obj.X -= c.Speed * w.dt()

	// Leaving the trailing edge is not a kill
	if obj.X < c.DespawnX {
		enemy.Active = false
	}
}

// contact deals a fraction of the player's max health and uses the floater up.
func (floaterBehavior) contact(w *worldContext, entry *donburi.Entry, player *donburi.Entry) bool {
	maxHealth := components.Health.Get(player).Max
	damage := int(math.Floor(float64(maxHealth) * cfg.Enemies.Floater.ContactFraction))
	w.damagePlayer(damage)
	components.Enemy.Get(entry).Active = false
	return true
}

type patrollerBehavior struct{}

func (patrollerBehavior) update(w *worldContext, entry *donburi.Entry) {
	c := cfg.Enemies.Patroller
	patrol := components.Patroller.Get(entry)
	obj := components.Object.Get(entry)
	dt := w.dt()

	obj.X += c.Speed * patrol.Direction * dt
	if obj.X <= patrol.StartX-c.PatrolDistance {
		patrol.Direction = 1
	} else if obj.X >= patrol.StartX+c.PatrolDistance {
		patrol.Direction = -1
	}

	// The timer keeps running while the player is out of range, so the
	// next shot fires as soon as they come close.
	patrol.ShootTimer += dt
	if patrol.ShootTimer < c.ShootInterval {
		return
	}
	dx := w.playerX() - obj.X
	if math.Abs(dx) >= c.DetectRange {
		return
	}
	dir := gamemath.Sign(dx)
	if dir == 0 {
		dir = patrol.Direction
	}
	w.fireEnemyProjectile(obj.X+obj.W/2, obj.Y+obj.H/2, dir)
	patrol.ShootTimer = 0
}

func (patrollerBehavior) contact(w *worldContext, entry *donburi.Entry, _ *donburi.Entry) bool {
	return cooldownContact(w, entry)
}
