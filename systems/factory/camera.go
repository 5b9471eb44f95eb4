package factory

import (
	"github.com/automoto/deal-closer/archetypes"
	"github.com/automoto/deal-closer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Width:  width,
		Height: height,
	})
	return camera
}
