// Package physics keeps the player out of walls placed by floor events. The
// simulation runs on the horizontal plane of the current floor: world X maps
// to space X and world Z to space Y. Height is owned by the caller.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/descent/common"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeSolid
)

const (
	playerRadius = 0.25
	// ObstacleSize is the footprint of a wall block.
	ObstacleSize = 1.0
)

type obstacle struct {
	body  *cp.Body
	shape *cp.Shape
}

// World owns the Chipmunk space. Only the obstacles of the current floor are
// in the space at any time.
type World struct {
	space       *cp.Space
	player      *cp.Body
	playerShape *cp.Shape
	floor       int
	obstacles   map[int][]obstacle
}

func NewWorld(start common.Vec3, floor int) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})

	w := &World{
		space:     space,
		floor:     floor,
		obstacles: make(map[int][]obstacle),
	}
	w.spawnPlayer(toPlane(start))
	return w
}

// spawnPlayer replaces the player body with a fresh one at p. A new body
// carries no contacts and no leftover push-out bias from the last step.
func (w *World) spawnPlayer(p cp.Vector) {
	if w.player != nil {
		w.space.RemoveShape(w.playerShape)
		w.space.RemoveBody(w.player)
	}

	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(p)
	shape := cp.NewCircle(body, playerRadius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypePlayer)
	w.space.AddBody(body)
	w.space.AddShape(shape)

	w.player = body
	w.playerShape = shape
}

func toPlane(v common.Vec3) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Z}
}

// AddObstacle places a wall block centered on pos, rotated by yaw about the
// vertical axis.
func (w *World) AddObstacle(floor int, pos common.Vec3, yaw float64) {
	body := cp.NewStaticBody()
	body.SetPosition(toPlane(pos))
	body.SetAngle(yaw)
	shape := cp.NewBox(body, ObstacleSize, ObstacleSize, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeSolid)

	o := obstacle{body: body, shape: shape}
	w.obstacles[floor] = append(w.obstacles[floor], o)
	if floor == w.floor {
		w.addToSpace(o)
	}
}

func (w *World) addToSpace(o obstacle) {
	w.space.AddBody(o.body)
	w.space.AddShape(o.shape)
}

func (w *World) removeFromSpace(o obstacle) {
	w.space.RemoveShape(o.shape)
	w.space.RemoveBody(o.body)
}

// SetFloor swaps the obstacles in the space for those of floor.
func (w *World) SetFloor(floor int) {
	if floor == w.floor {
		return
	}
	for _, o := range w.obstacles[w.floor] {
		w.removeFromSpace(o)
	}
	w.floor = floor
	for _, o := range w.obstacles[floor] {
		w.addToSpace(o)
	}
	w.spawnPlayer(w.player.Position())
}

func (w *World) Floor() int {
	return w.floor
}

// Obstacles returns how many blocks were placed on floor.
func (w *World) Obstacles(floor int) int {
	return len(w.obstacles[floor])
}

// Teleport moves the player without sweeping through walls.
func (w *World) Teleport(pos common.Vec3) {
	w.spawnPlayer(toPlane(pos))
}

// Step moves the player by vel for one tick and returns its resolved
// position. The Y of vel is ignored and pos.Y is returned unchanged.
func (w *World) Step(pos common.Vec3, vel common.Vec3) common.Vec3 {
	w.player.SetVelocity(vel.X, vel.Z)
	w.space.Step(1.0)
	p := w.player.Position()
	return common.V3(p.X, pos.Y, p.Y)
}

// Position returns the player position on the plane with the given height.
func (w *World) Position(y float64) common.Vec3 {
	p := w.player.Position()
	return common.V3(p.X, y, p.Y)
}
