package components

import (
	"github.com/automoto/deal-closer/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Bounds returns the object's current body as a Rect.
func (o *ObjectData) Bounds() gamemath.Rect {
	return gamemath.NewRect(o.X, o.Y, o.W, o.H)
}

var Object = donburi.NewComponentType[ObjectData]()
