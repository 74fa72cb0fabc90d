package scene

import (
	"github.com/milk9111/descent/common"
	"github.com/milk9111/descent/ecs"
	"github.com/milk9111/descent/ecs/component"
	"github.com/milk9111/descent/tower"
)

// RoomView is a room shell as the renderer sees it.
type RoomView struct {
	Entity    ecs.Entity
	Kind      tower.RoomType
	Transform common.Transform
}

func (s *Scene) Rooms() []RoomView {
	var out []RoomView
	ecs.ForEach2(s.world, component.RoomComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, r *component.Room, t *common.Transform) {
		out = append(out, RoomView{Entity: e, Kind: r.Kind, Transform: *t})
	})
	return out
}

func (s *Scene) Enemies() []common.Vec3 {
	var out []common.Vec3
	ecs.ForEach2(s.world, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Enemy, t *common.Transform) {
		out = append(out, t.Translation)
	})
	return out
}

// Obstacles returns the wall positions on floor.
func (s *Scene) Obstacles(floor int) []common.Vec3 {
	var out []common.Vec3
	ecs.ForEach2(s.world, component.ObstacleComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, o *component.Obstacle, t *common.Transform) {
		if o.Floor == floor {
			out = append(out, t.Translation)
		}
	})
	return out
}

func (s *Scene) Glimpses() []common.Vec3 {
	var out []common.Vec3
	ecs.ForEach2(s.world, component.GlimpseComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Glimpse, t *common.Transform) {
		out = append(out, t.Translation)
	})
	return out
}
