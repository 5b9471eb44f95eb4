package config

// MatchStateID is the overall match state.
type MatchStateID int

const (
	MatchStatePlaying MatchStateID = iota
	MatchStateGameOver
)

func (s MatchStateID) String() string {
	switch s {
	case MatchStatePlaying:
		return "playing"
	case MatchStateGameOver:
		return "game over"
	}
	return "unknown"
}

// EnemyKind tags an enemy variant.
type EnemyKind int

const (
	EnemyMeetingDecline EnemyKind = iota
	EnemyFinanceReview
	EnemyCriticalStakeholder
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyMeetingDecline:
		return "MeetingDecline"
	case EnemyFinanceReview:
		return "FinanceReview"
	case EnemyCriticalStakeholder:
		return "CriticalStakeholder"
	}
	return "unknown"
}

// ParseEnemyKind maps a level-file enemy name to its kind.
func ParseEnemyKind(name string) (EnemyKind, bool) {
	switch name {
	case "MeetingDecline":
		return EnemyMeetingDecline, true
	case "FinanceReview":
		return EnemyFinanceReview, true
	case "CriticalStakeholder":
		return EnemyCriticalStakeholder, true
	}
	return 0, false
}

// BossPhase is the boss state machine.
type BossPhase int

const (
	BossDormant BossPhase = iota
	BossPhaseOne
	BossPhaseTwo
)

func (p BossPhase) String() string {
	switch p {
	case BossDormant:
		return "dormant"
	case BossPhaseOne:
		return "phase 1"
	case BossPhaseTwo:
		return "phase 2"
	}
	return "unknown"
}

// ProjectileKind tags a projectile variant.
type ProjectileKind int

const (
	ProjectileEmail ProjectileKind = iota
	ProjectileCall
	ProjectileEnemy
)

// Stats returns the tuning for a projectile kind.
func (k ProjectileKind) Stats() ProjectileTypeConfig {
	switch k {
	case ProjectileCall:
		return Projectiles.Call
	case ProjectileEnemy:
		return Projectiles.Enemy
	}
	return Projectiles.Email
}

// CollectibleKind tags a pickup variant.
type CollectibleKind int

const (
	CollectibleHealth CollectibleKind = iota
	CollectibleAmmo
	CollectibleBonus
)

func (k CollectibleKind) String() string {
	switch k {
	case CollectibleHealth:
		return "health"
	case CollectibleAmmo:
		return "ammo"
	case CollectibleBonus:
		return "bonus"
	}
	return "unknown"
}

// ParseCollectibleKind maps a level-file pickup name to its kind.
func ParseCollectibleKind(name string) (CollectibleKind, bool) {
	switch name {
	case "health":
		return CollectibleHealth, true
	case "ammo":
		return CollectibleAmmo, true
	case "bonus":
		return CollectibleBonus, true
	}
	return 0, false
}
