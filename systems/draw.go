package systems

import (
	"github.com/automoto/deal-closer/components"
	"github.com/automoto/deal-closer/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel draws the sky, skyline, platforms, ground and pickups.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	RenderLevel(e, render.NewEbitenSurface(screen))
}

func DrawEnemies(e *ecs.ECS, screen *ebiten.Image) {
	RenderEnemies(e, render.NewEbitenSurface(screen))
}

func DrawMarkers(e *ecs.ECS, screen *ebiten.Image) {
	RenderMarkers(e, render.NewEbitenSurface(screen))
}

func DrawProjectiles(e *ecs.ECS, screen *ebiten.Image) {
	RenderProjectiles(e, render.NewEbitenSurface(screen))
}

func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	RenderPlayer(e, render.NewEbitenSurface(screen))
}

func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	RenderHUD(e, render.NewEbitenSurface(screen))
}

// RenderFrame draws a whole frame in layer order onto any surface.
func RenderFrame(e *ecs.ECS, s render.Surface) {
	RenderLevel(e, s)
	RenderEnemies(e, s)
	RenderMarkers(e, s)
	RenderProjectiles(e, s)
	RenderPlayer(e, s)
	RenderHUD(e, s)
}

// worldCanvas returns a canvas translated by the camera.
func worldCanvas(e *ecs.ECS, s render.Surface) (*render.Canvas, *components.CameraData, bool) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, nil, false
	}
	cam := components.Camera.Get(entry)
	return render.NewCanvas(s, cam.X, cam.Y), cam, true
}

// elapsed returns simulated seconds, for cosmetic animation.
func elapsed(e *ecs.ECS) float64 {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Elapsed
}
