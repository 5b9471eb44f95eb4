package tags

import "github.com/yohamta/donburi"

var (
	Player          = donburi.NewTag().SetName("Player")
	Platform        = donburi.NewTag().SetName("Platform")
	Enemy           = donburi.NewTag().SetName("Enemy")
	Projectile      = donburi.NewTag().SetName("Projectile")
	EnemyProjectile = donburi.NewTag().SetName("EnemyProjectile")
	Collectible     = donburi.NewTag().SetName("Collectible")
)

// Resolv tags for broadphase collision
const (
	ResolvPlatform        = "platform"
	ResolvPlayer          = "Player"
	ResolvEnemy           = "Enemy"
	ResolvProjectile      = "Projectile"
	ResolvEnemyProjectile = "EnemyProjectile"
	ResolvCollectible     = "collectible"
)
