package components

import (
	cfg "github.com/automoto/deal-closer/config"
	"github.com/yohamta/donburi"
)

// MatchData stores the current match state and score.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State   cfg.MatchStateID
	Victory bool
	Score   int
	Ticks   int
	Elapsed float64 // simulated seconds while playing
}

// Playing reports whether the simulation should tick.
func (m *MatchData) Playing() bool {
	return m.State == cfg.MatchStatePlaying
}

// AddScore adds points to the match total.
func (m *MatchData) AddScore(points int) {
	m.Score += points
}

var Match = donburi.NewComponentType[MatchData]()
