package components

import (
	"github.com/automoto/deal-closer/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EnemyData is the record shared by every enemy variant.
type EnemyData struct {
	Kind   config.EnemyKind
	Active bool

	ScoreValue int
	// Scored latches the first zero-health transition
	Scored bool

	ContactDamage   int
	ContactCooldown float64
	AnimationTime   float64
}

var Enemy = donburi.NewComponentType[EnemyData]()

// FloaterData drives the sine-path patroller.
type FloaterData struct {
	OriginY float64
}

var Floater = donburi.NewComponentType[FloaterData]()

// PatrollerData drives the ground patroller.
type PatrollerData struct {
	StartX     float64
	Direction  float64 // +1 or -1
	ShootTimer float64
}

var Patroller = donburi.NewComponentType[PatrollerData]()

// BossData is the boss state machine.
type BossData struct {
	Phase       config.BossPhase
	Direction   float64 // last horizontal heading, ±1
	JumpTimer   float64
	AttackTimer float64

	// EnragePulse is a cosmetic scale driven by Pulse in phase two
	EnragePulse float64
	Pulse       *gween.Sequence
}

// Dormant reports whether the boss has not been activated yet.
func (b *BossData) Dormant() bool {
	return b.Phase == config.BossDormant
}

var Boss = donburi.NewComponentType[BossData]()
