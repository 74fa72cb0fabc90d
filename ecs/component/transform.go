package component

import "github.com/milk9111/descent/common"

var TransformComponent = NewComponent[common.Transform]()

// Velocity is in world units per tick.
type Velocity struct {
	common.Vec3
}

var VelocityComponent = NewComponent[Velocity]()
