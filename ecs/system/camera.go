package system

import (
	"github.com/milk9111/descent/common"
	"github.com/milk9111/descent/ecs"
	"github.com/milk9111/descent/ecs/component"
)

// shakeSettle is the fraction of the shake removed each tick.
const shakeSettle = 0.1

// CameraSystem folds shake requests into the camera and lets the camera
// settle back afterwards.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.CameraComponent.Kind(), func(e ecs.Entity, cam *component.Camera) {
		cam.Shake = common.V3(
			common.Lerp(cam.Shake.X, 0, shakeSettle),
			common.Lerp(cam.Shake.Y, 0, shakeSettle),
			common.Lerp(cam.Shake.Z, 0, shakeSettle),
		)
		if req, ok := ecs.Get(w, e, component.CameraShakeRequestComponent.Kind()); ok {
			cam.Shake = cam.Shake.Add(req.Rotation)
			ecs.Remove(w, e, component.CameraShakeRequestComponent.Kind())
		}
	})
}
