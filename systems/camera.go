package systems

import (
	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera centres the camera on the player with per-tick smoothing.
func UpdateCamera(e *ecs.ECS) {
	w, ok := newWorldContext(e)
	if !ok {
		return
	}
	obj := components.Object.Get(w.player)
	FollowCamera(w.camera, obj.X, w.camera.Width)
}

// FollowCamera aims the camera so targetWorldX sits mid-viewport, never
// left of the world origin, and closes a fixed fraction of the gap. The
// fraction is applied once per tick and is not scaled by delta time.
func FollowCamera(cam *components.CameraData, targetWorldX, viewportWidth float64) {
	cam.TargetX = targetWorldX - viewportWidth/2
	if cam.TargetX < 0 {
		cam.TargetX = 0
	}
	cam.X = gamemath.Approach(cam.X, cam.TargetX, cfg.Camera.FollowSmoothing)
}
