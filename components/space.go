package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the singleton broadphase collision space.
var Space = donburi.NewComponentType[resolv.Space]()
