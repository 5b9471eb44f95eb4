// Package leveldata parses the TMX level layout. It has no dependencies on
// ebitengine, donburi, or resolv, only plain data.
package leveldata

// Layout holds everything the world factory needs to build a level.
type Layout struct {
	Name         string
	Width        float64
	Height       float64
	GroundY      float64
	BossGateX    float64
	SpawnStopX   float64
	PlayerSpawn  Point
	Platforms    []Rect
	Enemies      []EnemySpawn
	Collectibles []CollectibleSpawn
	Buildings    []Rect
}

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, W, H float64
}

// EnemySpawn is a pre-placed enemy. Kind is the object name in the level file.
type EnemySpawn struct {
	Kind string
	X, Y float64
}

// CollectibleSpawn is a pre-placed pickup. Kind is health, ammo or bonus.
type CollectibleSpawn struct {
	Kind       string
	X, Y, W, H float64
	Value      int
}
