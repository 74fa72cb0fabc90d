package session

import (
	"github.com/milk9111/descent/common"
	"github.com/milk9111/descent/tower"
)

// DefaultWalkSpeed is the autopilot pace in units per tick.
const DefaultWalkSpeed = 0.04

// Walker is an autopilot player. It walks each corridor from start to end,
// then takes the stairs to the start of the next floor.
type Walker struct {
	Speed float64

	floor  int
	stairs bool
}

// NewWalker returns a walker standing at the start of floor.
func NewWalker(floor int, speed float64) (*Walker, common.Vec3) {
	if speed <= 0 {
		speed = DefaultWalkSpeed
	}
	return &Walker{Speed: speed, floor: floor}, tower.FrameOf(floor).Start()
}

// Floor is the floor whose corridor or outgoing stairs the walker is on.
func (w *Walker) Floor() int {
	return w.floor
}

func (w *Walker) target() common.Vec3 {
	if w.stairs {
		return tower.FrameOf(w.floor + 1).Start()
	}
	return tower.FrameOf(w.floor).End()
}

// Step returns the velocity that moves pos toward the current waypoint,
// switching waypoints as they are reached.
func (w *Walker) Step(pos common.Vec3) common.Vec3 {
	to := w.target().Sub(pos)
	if to.Length() <= w.Speed {
		if w.stairs {
			w.floor++
		}
		w.stairs = !w.stairs
		return to
	}
	return to.Normalize().Scale(w.Speed)
}
