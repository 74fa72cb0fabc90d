package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const stickDeadZone = 0.3

// Input holds the movement intent for the current frame.
type Input struct {
	// Strafe is -1 for left, +1 for right.
	Strafe float64
	// Forward is +1 walking ahead, -1 backing up.
	Forward float64
	// Turn is -1 turning left (Q), +1 turning right (E).
	Turn float64
	// Climb is +1 going down the stairs (F), -1 going up (R).
	Climb float64
	Pause bool
	Quit  bool
}

func NewInput() *Input {
	return &Input{}
}

func axis(neg, pos []ebiten.Key) float64 {
	var v float64
	for _, k := range neg {
		if ebiten.IsKeyPressed(k) {
			v--
			break
		}
	}
	for _, k := range pos {
		if ebiten.IsKeyPressed(k) {
			v++
			break
		}
	}
	return v
}

// Update polls the keyboard and the first gamepad.
func (i *Input) Update() {
	i.Quit = inpututil.IsKeyJustPressed(ebiten.KeyF12)
	i.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)

	i.Strafe = axis([]ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}, []ebiten.Key{ebiten.KeyD, ebiten.KeyRight})
	i.Forward = axis([]ebiten.Key{ebiten.KeyS, ebiten.KeyDown}, []ebiten.Key{ebiten.KeyW, ebiten.KeyUp})
	i.Turn = axis([]ebiten.Key{ebiten.KeyQ}, []ebiten.Key{ebiten.KeyE})
	i.Climb = axis([]ebiten.Key{ebiten.KeyR}, []ebiten.Key{ebiten.KeyF})

	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return
	}
	gid := ids[0]
	if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight) {
		i.Pause = true
	}
	if x := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal); x < -stickDeadZone || x > stickDeadZone {
		i.Strafe = x
	}
	if y := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical); y < -stickDeadZone || y > stickDeadZone {
		i.Forward = -y
	}
	if x := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisRightStickHorizontal); x < -stickDeadZone || x > stickDeadZone {
		i.Turn = x
	}
	if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontBottomRight) {
		i.Climb = 1
	}
	if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontBottomLeft) {
		i.Climb = -1
	}
}
