package factory

import (
	"github.com/automoto/deal-closer/archetypes"
	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Window grid pitch of the skyline, in pixels.
const (
	FloorHeight  = 25
	ColumnWidth  = 20
	WindowWidth  = 10
	WindowHeight = 15
	WindowInset  = 5
)

func CreateBackdrop(ecs *ecs.ECS, rects []leveldata.Rect) *donburi.Entry {
	backdrop := archetypes.Backdrop.Spawn(ecs)

	var rng *components.RNGData
	if rngEntry, ok := components.RNG.First(ecs.World); ok {
		rng = components.RNG.Get(rngEntry)
	}

	buildings := make([]components.Building, 0, len(rects))
	for _, r := range rects {
		b := components.Building{
			X:       r.X,
			Width:   r.W,
			Height:  r.H,
			Floors:  int(r.H / FloorHeight),
			Columns: int(r.W / ColumnWidth),
		}
		b.Lit = make([]bool, b.Floors*b.Columns)
		for i := range b.Lit {
			b.Lit[i] = rng == nil || rng.Rand.Float64() < cfg.Level.WindowLitOdds
		}
		buildings = append(buildings, b)
	}

	data := &components.BackdropData{Buildings: buildings}
	if rng != nil {
		data.RefreshTimer = rng.Range(cfg.Level.WindowRefreshMin, cfg.Level.WindowRefreshMax)
	} else {
		data.RefreshTimer = cfg.Level.WindowRefreshMin
	}
	components.Backdrop.Set(backdrop, data)
	return backdrop
}
