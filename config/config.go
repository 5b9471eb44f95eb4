package config

import "image/color"

// Config holds the logical screen size and the simulation clock limits.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// MaxDelta caps a single simulation step in seconds.
	MaxDelta float64 `yaml:"max_delta"`
	// Seed for the simulation RNG, 0 picks one from the clock.
	Seed int64 `yaml:"seed"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Movement
	Speed     float64 `yaml:"speed"`
	JumpPower float64 `yaml:"jump_power"`
	Gravity   float64 `yaml:"gravity"`
	Friction  float64 `yaml:"friction"` // per-tick multiplier with no direction held
	MaxJumps  int     `yaml:"max_jumps"`

	// Combat
	Health       int `yaml:"health"`
	StartingAmmo int `yaml:"starting_ammo"`

	// Cosmetic timers (seconds)
	DamageFlash    float64 `yaml:"damage_flash"`
	ScreenShake    float64 `yaml:"screen_shake"`
	ShakeDecayRate float64 `yaml:"shake_decay_rate"`
	ShakeMagnitude float64 `yaml:"shake_magnitude"`
}

// WeaponConfig describes one player weapon.
type WeaponConfig struct {
	Cooldown float64 `yaml:"cooldown"`
	UsesAmmo bool    `yaml:"uses_ammo"`
}

// WeaponsConfig holds both player weapons.
type WeaponsConfig struct {
	Email WeaponConfig `yaml:"email"`
	Call  WeaponConfig `yaml:"call"`
}

// ProjectileTypeConfig contains the mechanics of one projectile variant.
type ProjectileTypeConfig struct {
	Speed  float64 `yaml:"speed"`
	Damage int     `yaml:"damage"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ProjectileConfig contains all projectile variants and the culling margin.
type ProjectileConfig struct {
	Email      ProjectileTypeConfig `yaml:"email"`
	Call       ProjectileTypeConfig `yaml:"call"`
	Enemy      ProjectileTypeConfig `yaml:"enemy"`
	CullMargin float64              `yaml:"cull_margin"`

	// Cosmetic call trail
	TrailChance   float64 `yaml:"trail_chance"`
	TrailLifetime float64 `yaml:"trail_lifetime"`
	TrailSpread   float64 `yaml:"trail_spread"`
}

// FloaterConfig configures the floating sine-path patroller.
type FloaterConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Health          int     `yaml:"health"`
	Speed           float64 `yaml:"speed"`
	Amplitude       float64 `yaml:"amplitude"`
	Frequency       float64 `yaml:"frequency"`
	Score           int     `yaml:"score"`
	ContactFraction float64 `yaml:"contact_fraction"` // of the player's max health
	DespawnX        float64 `yaml:"despawn_x"`
}

// PatrollerConfig configures the ground patroller that shoots.
type PatrollerConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Health         int     `yaml:"health"`
	Speed          float64 `yaml:"speed"`
	PatrolDistance float64 `yaml:"patrol_distance"`
	ContactDamage  int     `yaml:"contact_damage"`
	Score          int     `yaml:"score"`
	ShootInterval  float64 `yaml:"shoot_interval"`
	DetectRange    float64 `yaml:"detect_range"`
}

// BossConfig configures the two-phase boss.
type BossConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Health        int     `yaml:"health"`
	Speed         float64 `yaml:"speed"`
	EnragedSpeed  float64 `yaml:"enraged_speed"`
	ContactDamage int     `yaml:"contact_damage"`
	PhaseTwoRatio float64 `yaml:"phase_two_ratio"`

	MinChaseDistance float64 `yaml:"min_chase_distance"`
	JumpCooldown     float64 `yaml:"jump_cooldown"`
	JumpRange        float64 `yaml:"jump_range"`
	JumpPower        float64 `yaml:"jump_power"`
	Gravity          float64 `yaml:"gravity"`

	AttackInterval float64 `yaml:"attack_interval"`
	AttackRange    float64 `yaml:"attack_range"`
	ShotOffsetY    float64 `yaml:"shot_offset_y"`
	BurstCount     int     `yaml:"burst_count"`
	BurstStagger   float64 `yaml:"burst_stagger"`
	BurstSpread    float64 `yaml:"burst_spread"`

	MinScore   float64 `yaml:"min_score"`
	ScoreRange float64 `yaml:"score_range"`
	ScoreRound float64 `yaml:"score_round"`
}

// EnemyConfig contains shared enemy configuration and the variants.
type EnemyConfig struct {
	DamageFlash     float64         `yaml:"damage_flash"`
	ContactCooldown float64         `yaml:"contact_cooldown"`
	Floater         FloaterConfig   `yaml:"floater"`
	Patroller       PatrollerConfig `yaml:"patroller"`
	Boss            BossConfig      `yaml:"boss"`
}

// SpawnerConfig controls the floating enemy spawn policy.
type SpawnerConfig struct {
	MinInterval float64 `yaml:"min_interval"`
	MaxInterval float64 `yaml:"max_interval"`
	EdgeMargin  float64 `yaml:"edge_margin"`
	MinY        float64 `yaml:"min_y"`
	MaxY        float64 `yaml:"max_y"`
}

// LevelConfig contains level-wide rules not stored in the map file.
type LevelConfig struct {
	Path          string        `yaml:"path"`
	VictoryMargin float64       `yaml:"victory_margin"`
	Spawner       SpawnerConfig `yaml:"spawner"`

	// Backdrop window refresh bounds (seconds)
	WindowRefreshMin float64 `yaml:"window_refresh_min"`
	WindowRefreshMax float64 `yaml:"window_refresh_max"`
	WindowRerollOdds float64 `yaml:"window_reroll_odds"`
	WindowLitOdds    float64 `yaml:"window_lit_odds"`

	// Boss bar appears once the boss is within this distance of the view
	BossSightMargin float64 `yaml:"boss_sight_margin"`
}

// CollectibleConfig contains the collectible effect policy.
type CollectibleConfig struct {
	HealFraction float64 `yaml:"heal_fraction"` // of the player's max health
	BobAmplitude float64 `yaml:"bob_amplitude"`
	BobDuration  float64 `yaml:"bob_duration"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // per-tick fraction of the gap closed
}

// UIConfig contains HUD layout and colors.
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	HUDMargin       float64
	BossBarWidth    float64
	BossBarHeight   float64
	BossBarY        float64

	HUDFontSize   float64
	TitleFontSize float64
	SmallFontSize float64

	// Time-of-day markers
	FirstHour int
	LastHour  int
	HourStep  int
}

var C *Config
var Player PlayerConfig
var Weapons WeaponsConfig
var Projectiles ProjectileConfig
var Enemies EnemyConfig
var Level LevelConfig
var Collectibles CollectibleConfig
var Camera CameraConfig
var UI UIConfig

// Palette
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Night      = color.RGBA{R: 15, G: 23, B: 42, A: 255}
	Dusk       = color.RGBA{R: 30, G: 41, B: 59, A: 255}
	Slate      = color.RGBA{R: 100, G: 116, B: 139, A: 255}
	LightSlate = color.RGBA{R: 148, G: 163, B: 184, A: 255}
	Asphalt    = color.RGBA{R: 55, G: 65, B: 81, A: 255}
	Curb       = color.RGBA{R: 107, G: 114, B: 128, A: 255}
	Charcoal   = color.RGBA{R: 51, G: 51, B: 51, A: 255}
	Ink        = color.RGBA{R: 31, G: 41, B: 55, A: 255}

	Red        = color.RGBA{R: 239, G: 68, B: 68, A: 255}
	Crimson    = color.RGBA{R: 220, G: 38, B: 38, A: 255}
	Maroon     = color.RGBA{R: 127, G: 29, B: 29, A: 255}
	Amber      = color.RGBA{R: 245, G: 158, B: 11, A: 255}
	Gold       = color.RGBA{R: 251, G: 191, B: 36, A: 255}
	Bronze     = color.RGBA{R: 217, G: 119, B: 6, A: 255}
	Green      = color.RGBA{R: 34, G: 197, B: 94, A: 255}
	Mint       = color.RGBA{R: 52, G: 211, B: 153, A: 255}
	Blue       = color.RGBA{R: 59, G: 130, B: 246, A: 255}
	Navy       = color.RGBA{R: 30, G: 64, B: 175, A: 255}
	Violet     = color.RGBA{R: 139, G: 92, B: 246, A: 255}
	Purple     = color.RGBA{R: 109, G: 40, B: 217, A: 255}
	DeepPurple = color.RGBA{R: 76, G: 29, B: 149, A: 255}
)

func init() {
	C = &Config{
		Width:    800,
		Height:   600,
		MaxDelta: 1.0 / 60.0,
	}

	Player = PlayerConfig{
		SpawnX: 100,
		SpawnY: 400,
		Width:  40,
		Height: 50,

		Speed:     300,
		JumpPower: 500,
		Gravity:   1200,
		Friction:  0.8,
		MaxJumps:  2,

		Health:       100,
		StartingAmmo: 10,

		DamageFlash:    0.3,
		ScreenShake:    0.5,
		ShakeDecayRate: 10,
		ShakeMagnitude: 10,
	}

	Weapons = WeaponsConfig{
		Email: WeaponConfig{Cooldown: 0.15},
		Call:  WeaponConfig{Cooldown: 0.8, UsesAmmo: true},
	}

	Projectiles = ProjectileConfig{
		Email:      ProjectileTypeConfig{Speed: 600, Damage: 15, Width: 12, Height: 8},
		Call:       ProjectileTypeConfig{Speed: 400, Damage: 35, Width: 16, Height: 12},
		Enemy:      ProjectileTypeConfig{Speed: 300, Damage: 20, Width: 10, Height: 6},
		CullMargin: 50,

		TrailChance:   0.3,
		TrailLifetime: 0.5,
		TrailSpread:   50,
	}

	Enemies = EnemyConfig{
		DamageFlash:     0.3,
		ContactCooldown: 0.5,
		Floater: FloaterConfig{
			Width:           30,
			Height:          20,
			Health:          25,
			Speed:           80,
			Amplitude:       60,
			Frequency:       2,
			Score:           150,
			ContactFraction: 0.34,
			DespawnX:        -100,
		},
		Patroller: PatrollerConfig{
			Width:          35,
			Height:         40,
			Health:         40,
			Speed:          60,
			PatrolDistance: 200,
			ContactDamage:  20,
			Score:          200,
			ShootInterval:  1.8,
			DetectRange:    300,
		},
		Boss: BossConfig{
			Width:         60,
			Height:        80,
			Health:        180,
			Speed:         40,
			EnragedSpeed:  60,
			ContactDamage: 30,
			PhaseTwoRatio: 0.5,

			MinChaseDistance: 50,
			JumpCooldown:     3,
			JumpRange:        200,
			JumpPower:        400,
			Gravity:          800,

			AttackInterval: 1.5,
			AttackRange:    400,
			ShotOffsetY:    60,
			BurstCount:     3,
			BurstStagger:   0.15,
			BurstSpread:    0.3,

			MinScore:   500000,
			ScoreRange: 4500000,
			ScoreRound: 1000,
		},
	}

	Level = LevelConfig{
		Path:          "levels/office.tmx",
		VictoryMargin: 100,
		Spawner: SpawnerConfig{
			MinInterval: 1.5,
			MaxInterval: 3.5,
			EdgeMargin:  50,
			MinY:        250,
			MaxY:        520,
		},
		WindowRefreshMin: 3,
		WindowRefreshMax: 8,
		WindowRerollOdds: 0.3,
		WindowLitOdds:    0.7,
		BossSightMargin:  100,
	}

	Collectibles = CollectibleConfig{
		HealFraction: 0.5,
		BobAmplitude: 5,
		BobDuration:  0.8,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	UI = UIConfig{
		HealthBarWidth:  200,
		HealthBarHeight: 16,
		HUDMargin:       10,
		BossBarWidth:    400,
		BossBarHeight:   20,
		BossBarY:        30,

		HUDFontSize:   14,
		TitleFontSize: 32,
		SmallFontSize: 12,

		FirstHour: 6,
		LastHour:  22,
		HourStep:  2,
	}
}
