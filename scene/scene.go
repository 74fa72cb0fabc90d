// Package scene carries out floor effects on an ECS world. It owns the
// player, the room shells handed out by the pool, enemies, walls, glimpse
// billboards and the sounds tied to them.
package scene

import (
	"log/slog"

	"github.com/milk9111/descent/common"
	"github.com/milk9111/descent/ecs"
	"github.com/milk9111/descent/ecs/component"
	"github.com/milk9111/descent/ecs/system"
	"github.com/milk9111/descent/floorevent"
	"github.com/milk9111/descent/physics"
	"github.com/milk9111/descent/tower"
)

// SoundPlayer starts clips. sound.Mixer is the production implementation.
type SoundPlayer interface {
	Play(clip floorevent.Clip, mode floorevent.PlayMode) (component.Voice, error)
}

type Scene struct {
	world   *ecs.World
	physics *physics.World
	sounds  SoundPlayer
	log     *slog.Logger

	player   ecs.Entity
	lighting ecs.Entity
}

// New builds a scene with the player at start. physics and sounds may be
// nil for headless runs.
func New(start common.Vec3, phys *physics.World, sounds SoundPlayer, log *slog.Logger) *Scene {
	w := ecs.NewWorld()
	w.AddSystem(system.NewEnemySystem())
	w.AddSystem(system.NewCameraSystem())
	w.AddSystem(system.NewAudioSystem())

	s := &Scene{world: w, physics: phys, sounds: sounds, log: log}

	s.player = ecs.CreateEntity(w)
	s.must(ecs.Add(w, s.player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	s.must(ecs.Add(w, s.player, component.TransformComponent.Kind(), &common.Transform{Translation: start}))
	s.must(ecs.Add(w, s.player, component.VelocityComponent.Kind(), &component.Velocity{}))
	s.must(ecs.Add(w, s.player, component.CameraComponent.Kind(), &component.Camera{}))

	s.lighting = ecs.CreateEntity(w)
	s.must(ecs.Add(w, s.lighting, component.LightingComponent.Kind(), &component.Lighting{}))
	return s
}

func (s *Scene) must(err error) {
	if err != nil {
		panic("scene: " + err.Error())
	}
}

func (s *Scene) World() *ecs.World {
	return s.world
}

func (s *Scene) spawn(t common.Transform) ecs.Entity {
	e := ecs.CreateEntity(s.world)
	s.must(ecs.Add(s.world, e, component.TransformComponent.Kind(), &t))
	return e
}

// SpawnRoom builds a room shell of kind.
func (s *Scene) SpawnRoom(kind tower.RoomType, t common.Transform) ecs.Entity {
	e := s.spawn(t)
	s.must(ecs.Add(s.world, e, component.RoomComponent.Kind(), &component.Room{Kind: kind}))
	s.log.Debug("room built", "kind", kind, "entity", e)
	return e
}

func (s *Scene) SetTransform(e ecs.Entity, t common.Transform) {
	if tr, ok := ecs.Get(s.world, e, component.TransformComponent.Kind()); ok {
		*tr = t
	}
}

func (s *Scene) SpawnEnemy(pos common.Vec3, speed float64) ecs.Entity {
	e := s.spawn(common.Transform{Translation: pos})
	s.must(ecs.Add(s.world, e, component.EnemyComponent.Kind(), &component.Enemy{Speed: speed}))
	return e
}

// SpawnObstacle places a wall block and makes it solid for the player.
func (s *Scene) SpawnObstacle(floor int, pos common.Vec3, yaw float64) ecs.Entity {
	e := s.spawn(common.Transform{Translation: pos, Yaw: yaw})
	s.must(ecs.Add(s.world, e, component.ObstacleComponent.Kind(), &component.Obstacle{Floor: floor}))
	if s.physics != nil {
		s.physics.AddObstacle(floor, pos, yaw)
	}
	return e
}

func (s *Scene) SpawnGlimpse(index int, pos common.Vec3) ecs.Entity {
	e := s.spawn(common.Transform{Translation: pos})
	s.must(ecs.Add(s.world, e, component.GlimpseComponent.Kind(), &component.Glimpse{Index: index}))
	return e
}

// Despawn removes e and stops the sounds tied to it.
func (s *Scene) Despawn(e ecs.Entity) {
	if a, ok := ecs.Get(s.world, e, component.AudioComponent.Kind()); ok {
		for _, v := range a.Voices {
			v.Stop()
		}
	}
	if ecs.DestroyEntity(s.world, e) {
		s.world.Events().Push(ecs.Despawned(e))
		s.log.Debug("despawned", "entity", e)
	}
}

// PlaySound starts clip. Tied sounds are attached to owner and stop when it
// is despawned; without a live owner they play to the end.
func (s *Scene) PlaySound(clip floorevent.Clip, mode floorevent.PlayMode, owner ecs.Entity) error {
	if s.sounds == nil {
		return nil
	}
	v, err := s.sounds.Play(clip, mode)
	if err != nil {
		return err
	}
	if mode != floorevent.Tied || !ecs.IsAlive(s.world, owner) {
		return nil
	}
	if a, ok := ecs.Get(s.world, owner, component.AudioComponent.Kind()); ok {
		a.Voices = append(a.Voices, v)
		return nil
	}
	return ecs.Add(s.world, owner, component.AudioComponent.Kind(), &component.Audio{Voices: []component.Voice{v}})
}

func (s *Scene) SetAmbientBrightness(v float64) {
	l, _ := ecs.Get(s.world, s.lighting, component.LightingComponent.Kind())
	l.Ambient = v
}

func (s *Scene) AmbientBrightness() float64 {
	l, _ := ecs.Get(s.world, s.lighting, component.LightingComponent.Kind())
	return l.Ambient
}

// ShakeCamera queues a rotation for the camera system. Shakes requested in
// the same tick add up.
func (s *Scene) ShakeCamera(rotation common.Vec3) {
	kind := component.CameraShakeRequestComponent.Kind()
	if req, ok := ecs.Get(s.world, s.player, kind); ok {
		req.Rotation = req.Rotation.Add(rotation)
		return
	}
	s.must(ecs.Add(s.world, s.player, kind, &component.CameraShakeRequest{Rotation: rotation}))
}

// CameraShake returns the current camera offset in radians.
func (s *Scene) CameraShake() common.Vec3 {
	c, _ := ecs.Get(s.world, s.player, component.CameraComponent.Kind())
	return c.Shake
}

// MovePlayer records the player's pose for the systems.
func (s *Scene) MovePlayer(pos, vel common.Vec3) {
	t, _ := ecs.Get(s.world, s.player, component.TransformComponent.Kind())
	t.Translation = pos
	v, _ := ecs.Get(s.world, s.player, component.VelocityComponent.Kind())
	v.Vec3 = vel
}

func (s *Scene) Player() common.Transform {
	t, _ := ecs.Get(s.world, s.player, component.TransformComponent.Kind())
	return *t
}

// Update runs the scene systems and returns the events they raised.
func (s *Scene) Update() []ecs.Event {
	s.world.Update()
	return s.world.Events().Drain()
}
