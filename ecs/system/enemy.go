package system

import (
	"github.com/milk9111/descent/common"
	"github.com/milk9111/descent/ecs"
	"github.com/milk9111/descent/ecs/component"
)

// reachDistance is how close an enemy gets before it stops walking.
const reachDistance = 1.5

// EnemySystem walks every enemy toward the player and raises
// ecs.EventEnemyReached the first time one gets within reach.
type EnemySystem struct{}

func NewEnemySystem() *EnemySystem {
	return &EnemySystem{}
}

func (s *EnemySystem) Update(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, t *common.Transform) {
		toPlayer := target.Translation.Sub(t.Translation)
		if toPlayer.Length() <= reachDistance {
			if !enemy.Reached {
				enemy.Reached = true
				w.Events().Push(ecs.EnemyReached(e))
			}
			return
		}
		if enemy.Speed <= 0 {
			return
		}
		t.Translation = t.Translation.Add(toPlayer.Normalize().Scale(enemy.Speed))
	})
}
