package component

import "github.com/milk9111/descent/common"

// Camera is attached to the player. Shake is the current rotational offset
// in radians (pitch, yaw, roll).
type Camera struct {
	Shake common.Vec3
}

var CameraComponent = NewComponent[Camera]()

// CameraShakeRequest asks the camera system to add Rotation to the camera
// shake on the next update.
type CameraShakeRequest struct {
	Rotation common.Vec3
}

var CameraShakeRequestComponent = NewComponent[CameraShakeRequest]()

// Lighting holds the ambient brightness of the scene.
type Lighting struct {
	Ambient float64
}

var LightingComponent = NewComponent[Lighting]()
