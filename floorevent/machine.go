// Package floorevent advances the scripted behavior of the floor the player
// is on and reports the side effects each transition causes.
package floorevent

import (
	"github.com/milk9111/descent/common"
	"github.com/milk9111/descent/rng"
	"github.com/milk9111/descent/tower"
)

const (
	proceedDelay = 150

	flashRadius = 1.5
	// flashLinger is how many ticks the flash silhouette stays up.
	flashLinger = 26

	lightsRadius = 1.0
	trickRadius  = 0.25
	trapRadius   = 1.0

	roarRadius     = 6.0
	roarShakeTicks = 318

	darknessRadius = 1.0
	// darknessDelay is how many ticks pass between the first tick on a
	// Darkness floor and releasing the enemy.
	darknessDelay = 598

	ambushSpeed     = 0.01
	velocityJitter  = 0.005
	cameraJitterDeg = 1.0
	horrorVariants  = 2

	// DefaultLightsOut is the ambient brightness after a Lights floor fires.
	DefaultLightsOut = 45.0
)

var obstacleYaw = common.Deg2Rad(-90)

// Machine advances floor states. It holds no per-floor data of its own; all
// progress lives in the layout.
type Machine struct {
	LightsOut float64
}

func NewMachine(lightsOut float64) *Machine {
	if lightsOut <= 0 {
		lightsOut = DefaultLightsOut
	}
	return &Machine{LightsOut: lightsOut}
}

// tick carries the inputs of one Advance call and collects its effects.
type tick struct {
	src     rng.Source
	pos     common.Vec3
	vel     *common.Vec3
	frame   tower.Frame
	effects []Effect
}

func (t *tick) emit(e Effect) {
	t.effects = append(t.effects, e)
}

func (t *tick) near(p common.Vec3, radius float64) bool {
	return t.pos.Distance(p) < radius
}

func (t *tick) sound(bank string, index int) {
	t.emit(PlaySound{Clip: Clip{Bank: bank, Index: index}, Mode: Once})
}

// horror plays a random sting.
func (t *tick) horror() {
	t.sound(BankHorror, t.src.IntRange(0, horrorVariants))
}

func (t *tick) obstacle(x float64) {
	t.emit(SpawnObstacle{Position: common.V3(x, t.frame.Y, t.frame.Z), Yaw: obstacleYaw})
}

// Advance runs one tick for floor and returns the effects it produced. Only
// that floor is touched; inactive floors and floors outside the layout
// produce nothing. vel is the player's velocity and may be jittered in place.
func (m *Machine) Advance(layout *tower.Layout, src rng.Source, pos common.Vec3, vel *common.Vec3, floor int) []Effect {
	f := layout.Floor(floor)
	if f == nil || !f.Active() {
		return nil
	}

	t := &tick{src: src, pos: pos, vel: vel, frame: tower.FrameOf(floor)}
	switch s := f.State.(type) {
	case tower.ProceedState:
		f.State = m.proceed(s, t)
	case tower.RadioState:
		f.State = m.radio(s, t)
	case tower.FlashState:
		f.State = m.flash(s, t)
	case tower.LightsState:
		f.State = m.lights(s, t)
	case tower.TrickState:
		f.State = m.trick(s, t)
	case tower.TrapState:
		f.State = m.trap(s, t)
	case tower.RoarState:
		f.State = m.roar(s, t)
	case tower.DarknessState:
		f.State = m.darkness(s, t)
	}
	return t.effects
}

func (m *Machine) proceed(s tower.ProceedState, t *tick) tower.State {
	s.Ticks++
	if s.Ticks < proceedDelay {
		return s
	}
	t.sound(BankRadio, 0)
	return nil
}

func (m *Machine) radio(s tower.RadioState, t *tick) tower.State {
	switch s.Message {
	case tower.Radio2:
		t.sound(BankRadio, 1)
	case tower.Radio3:
		t.sound(BankRadio, 2)
	case tower.Radio4:
		t.sound(BankRadio, 3)
	}
	return nil
}

func (m *Machine) flash(s tower.FlashState, t *tick) tower.State {
	var at common.Vec3
	switch s.Stage {
	case tower.FlashWatchEnd:
		at = t.frame.End()
	case tower.FlashWatchCenter:
		at = t.frame.Center()
	case tower.FlashWatchStart:
		at = t.frame.Start()
	default:
		s.Ticks++
		if s.Ticks < flashLinger {
			return s
		}
		t.emit(DespawnEnemy{})
		return nil
	}

	if !t.near(at, flashRadius) {
		return s
	}
	t.emit(SpawnEnemy{Position: tower.Ground(at)})
	t.horror()
	return tower.FlashState{Stage: tower.FlashLinger}
}

func (m *Machine) lights(s tower.LightsState, t *tick) tower.State {
	if s.Out || !t.near(t.frame.Center(), lightsRadius) {
		return s
	}
	t.sound(BankHorror, 1)
	t.sound(BankFireOff, 0)
	t.emit(SetAmbientBrightness{Value: m.LightsOut})
	return tower.LightsState{Out: true}
}

// trickPoint is where a fake ambush triggers. It sits off the corridor line,
// mirrored between even and odd floors.
func trickPoint(variant tower.FloorAction, f tower.Frame) common.Vec3 {
	dx := 1.5
	if variant == tower.Trick2 {
		dx = -0.5
	}
	dz := 5.0
	if f.Even {
		dx, dz = -dx, -dz
	}
	return common.V3(f.StartX+dx, f.Y-0.5, f.Z+dz)
}

func (m *Machine) trick(s tower.TrickState, t *tick) tower.State {
	if s.Sprung || !t.near(trickPoint(s.Variant, t.frame), trickRadius) {
		return s
	}
	t.sound(BankHorror, 2)
	s.Sprung = true
	return s
}

func (m *Machine) trap(s tower.TrapState, t *tick) tower.State {
	switch s.Stage {
	case tower.TrapArmed:
		if t.frame.Even {
			t.obstacle(t.frame.EndX + 0.5)
		} else {
			t.obstacle(t.frame.EndX - 0.5)
		}
		return tower.TrapState{Stage: tower.TrapSet}
	case tower.TrapSet:
		if !t.near(t.frame.Center(), trapRadius) {
			return s
		}
		t.emit(SpawnEnemy{Position: tower.Ground(t.frame.Start()), Speed: ambushSpeed})
		t.horror()
		return tower.TrapState{Stage: tower.TrapSprung}
	}
	return s
}

func (m *Machine) roar(s tower.RoarState, t *tick) tower.State {
	if !s.Shaking {
		if !t.near(t.frame.End(), roarRadius) {
			return s
		}
		t.sound(BankRoar, 0)
		return tower.RoarState{Shaking: true}
	}

	s.Ticks++
	if s.Ticks > roarShakeTicks {
		return nil
	}
	if t.vel != nil {
		*t.vel = t.vel.Add(common.V3(
			t.src.FloatRange(-velocityJitter, velocityJitter),
			t.src.FloatRange(-velocityJitter, velocityJitter),
			t.src.FloatRange(-velocityJitter, velocityJitter),
		))
	}
	t.emit(ShakeCamera{Rotation: common.V3(
		common.Deg2Rad(t.src.FloatRange(-cameraJitterDeg, cameraJitterDeg)),
		common.Deg2Rad(t.src.FloatRange(-cameraJitterDeg, cameraJitterDeg)),
		common.Deg2Rad(t.src.FloatRange(-cameraJitterDeg, cameraJitterDeg)),
	)})
	return s
}

func (m *Machine) darkness(s tower.DarknessState, t *tick) tower.State {
	switch s.Stage {
	case tower.DarknessArmed:
		if !t.near(t.frame.Center(), darknessRadius) {
			return tower.DarknessState{Stage: tower.DarknessCounting}
		}
		if t.frame.Even {
			t.obstacle(t.frame.StartX - 0.5)
			t.obstacle(t.frame.EndX + 0.5)
		} else {
			t.obstacle(t.frame.StartX + 0.5)
			t.obstacle(t.frame.EndX - 0.5)
		}
		t.sound(BankStone, 0)
		return tower.DarknessState{Stage: tower.DarknessCounting, Sealed: true}
	case tower.DarknessCounting:
		s.Ticks++
		if s.Ticks < darknessDelay {
			return s
		}
		t.emit(SpawnEnemy{Position: tower.Ground(t.frame.Center()), Speed: ambushSpeed})
		t.horror()
		return tower.DarknessState{Stage: tower.DarknessHunted}
	}
	return s
}
