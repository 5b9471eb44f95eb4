package components

import "github.com/yohamta/donburi"

// LevelData holds the world bounds and the level-owned spawn and boss gates.
type LevelData struct {
	Name    string
	Width   float64
	Height  float64
	GroundY float64

	// Boss activates once this world x is inside the viewport
	BossGateX float64
	// Floating enemies stop spawning once this world x is inside the viewport
	SpawnStopX float64
	// Player x beyond this wins the match
	VictoryX float64

	SpawnTimer    float64
	SpawnInterval float64
	SpawnHalted   bool

	BossActivated bool
	BossSighted   bool
}

var Level = donburi.NewComponentType[LevelData]()
