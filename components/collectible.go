package components

import (
	"github.com/automoto/deal-closer/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type CollectibleData struct {
	Kind  config.CollectibleKind
	Value int
	// Collected is a one-way latch
	Collected bool

	Bob       *gween.Sequence
	BobOffset float64
}

var Collectible = donburi.NewComponentType[CollectibleData]()
