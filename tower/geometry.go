package tower

import (
	"math"

	"github.com/milk9111/descent/common"
)

// FloorHeight is the vertical distance between two floors.
const FloorHeight = 2.0

// Frame is the local corridor frame of a floor. Corridors alternate
// direction, so even and odd floors swap their start and end X and sit on
// opposite Z sides.
type Frame struct {
	X      float64
	Y      float64
	Z      float64
	StartX float64
	EndX   float64
	Even   bool
}

// FrameOf returns the corridor frame of floor i.
func FrameOf(i int) Frame {
	f := Frame{
		X:    4.0,
		Y:    -1.0 - float64(i-1)*FloorHeight,
		Even: i%2 == 0,
	}
	if f.Even {
		f.Z, f.StartX, f.EndX = 6.5, 7.5, 0.5
	} else {
		f.Z, f.StartX, f.EndX = 0.5, 0.5, 7.5
	}
	return f
}

// End is the trigger point at the far end of the corridor.
func (f Frame) End() common.Vec3 {
	return common.V3(f.EndX, f.Y, f.Z)
}

// Center is the trigger point in the middle of the corridor.
func (f Frame) Center() common.Vec3 {
	return common.V3(f.X, f.Y, f.Z)
}

// Start is the trigger point where the player enters the corridor.
func (f Frame) Start() common.Vec3 {
	return common.V3(f.StartX, f.Y, f.Z)
}

// Ground lowers a trigger point to where an enemy stands.
func Ground(p common.Vec3) common.Vec3 {
	p.Y -= 0.5
	return p
}

// FloorTransform places the room shell of floor i. Odd floors are turned
// around so the corridor runs the other way.
func FloorTransform(i int) common.Transform {
	y := -float64(i) * FloorHeight
	if i%2 == 0 {
		return common.Transform{Translation: common.V3(0, y, 0)}
	}
	return common.Transform{
		Translation: common.V3(8, y, 7),
		Yaw:         math.Pi,
	}
}

// LabelTransform places the floor sign of room i.
func LabelTransform(i int) common.Transform {
	y := -float64(i)*FloorHeight - 0.6
	t := common.Transform{Pitch: common.Deg2Rad(-90)}
	if i%2 == 0 {
		t.Translation = common.V3(-0.24, y, 0.5)
		t.Yaw = math.Pi
	} else {
		t.Translation = common.V3(7.4+0.6+0.24, y, 6.0+0.5)
	}
	return t
}

// FloorIndexAt derives the floor the player stands on from their height.
// Heights above the first floor map to floor 1.
func FloorIndexAt(y float64) int {
	d := -y - 0.5
	if d < 0 {
		d = 0
	}
	return int(d)/2 + 1
}
