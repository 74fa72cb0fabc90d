package floorevent

import (
	"testing"

	"github.com/milk9111/descent/common"
	"github.com/milk9111/descent/rng"
	"github.com/milk9111/descent/tower"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// far is a position no trigger on any floor can reach.
var far = common.V3(100, 100, 100)

func layoutWith(floor int, action tower.FloorAction) *tower.Layout {
	l := tower.NewLayout(10)
	l.Floors[floor].Assign(action)
	return l
}

func advance(m *Machine, l *tower.Layout, pos common.Vec3, floor int) []Effect {
	var vel common.Vec3
	return m.Advance(l, rng.New(1), pos, &vel, floor)
}

func TestInactiveFloorsProduceNothing(t *testing.T) {
	m := NewMachine(0)
	l := tower.NewLayout(10)
	l.Floors[3].Mark(tower.Trap)

	assert.Empty(t, advance(m, l, tower.FrameOf(3).Center(), 3))
	assert.Nil(t, l.Floors[3].State)
}

func TestOutOfRangeFloor(t *testing.T) {
	m := NewMachine(0)
	l := tower.NewLayout(10)
	assert.Empty(t, advance(m, l, far, -1))
	assert.Empty(t, advance(m, l, far, 10))
}

func TestOnlyCurrentFloorAdvances(t *testing.T) {
	m := NewMachine(0)
	l := tower.NewLayout(10)
	l.Floors[1].Assign(tower.Proceed)
	l.Floors[2].Assign(tower.Proceed)

	advance(m, l, far, 1)
	assert.Equal(t, tower.ProceedState{Ticks: 1}, l.Floors[1].State)
	assert.Equal(t, tower.ProceedState{}, l.Floors[2].State)
}

func TestDormantActions(t *testing.T) {
	m := NewMachine(0)
	for _, a := range []tower.FloorAction{tower.Steps, tower.Cell, tower.Scp173, tower.Lock, tower.Breath, tower.Run} {
		l := layoutWith(4, a)
		for i := 0; i < 10; i++ {
			require.Empty(t, advance(m, l, tower.FrameOf(4).Center(), 4), a.String())
		}
		assert.Equal(t, tower.Dormant{For: a}, l.Floors[4].State)
	}
}

func TestProceedFiresOnceAtTick150(t *testing.T) {
	m := NewMachine(0)
	l := layoutWith(1, tower.Proceed)

	var fired []int
	for i := 1; i <= 400; i++ {
		effects := advance(m, l, far, 1)
		if len(effects) > 0 {
			require.Equal(t, []Effect{PlaySound{Clip: Clip{Bank: BankRadio, Index: 0}}}, effects)
			fired = append(fired, i)
			assert.Nil(t, l.Floors[1].State)
		}
	}
	assert.Equal(t, []int{150}, fired)
	assert.False(t, l.Floors[1].Active())
}

func TestRadioFiresOnce(t *testing.T) {
	m := NewMachine(0)
	cases := map[tower.FloorAction]int{tower.Radio2: 1, tower.Radio3: 2, tower.Radio4: 3}
	for action, index := range cases {
		l := layoutWith(3, action)
		assert.Equal(t, []Effect{PlaySound{Clip: Clip{Bank: BankRadio, Index: index}}}, advance(m, l, far, 3))
		assert.Empty(t, advance(m, l, far, 3))
	}
}

func TestFlashIdleOutsideTriggers(t *testing.T) {
	m := NewMachine(0)
	for _, stage := range []tower.FlashStage{tower.FlashWatchEnd, tower.FlashWatchCenter, tower.FlashWatchStart} {
		for _, floor := range []int{4, 5} {
			l := tower.NewLayout(10)
			l.Floors[floor] = tower.Floor{Action: tower.Flash, State: tower.FlashState{Stage: stage}}

			// Just outside the 1.5 radius of every trigger point.
			f := tower.FrameOf(floor)
			pos := common.V3(f.X, f.Y+1.6, f.Z)
			for i := 0; i < 200; i++ {
				require.Empty(t, advance(m, l, pos, floor))
			}
			assert.Equal(t, tower.FlashState{Stage: stage}, l.Floors[floor].State)
		}
	}
}

func TestFlashSpawnsAndDespawns(t *testing.T) {
	cases := []struct {
		name  string
		stage tower.FlashStage
		at    func(tower.Frame) common.Vec3
	}{
		{"end", tower.FlashWatchEnd, tower.Frame.End},
		{"center", tower.FlashWatchCenter, tower.Frame.Center},
		{"start", tower.FlashWatchStart, tower.Frame.Start},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := NewMachine(0)
			l := tower.NewLayout(10)
			l.Floors[6] = tower.Floor{Action: tower.Flash, State: tower.FlashState{Stage: c.stage}}
			point := c.at(tower.FrameOf(6))

			effects := advance(m, l, point, 6)
			require.Len(t, effects, 2)
			assert.Equal(t, SpawnEnemy{Position: tower.Ground(point)}, effects[0])
			sound, ok := effects[1].(PlaySound)
			require.True(t, ok)
			assert.Equal(t, BankHorror, sound.Clip.Bank)
			assert.Equal(t, Once, sound.Mode)
			assert.Less(t, sound.Clip.Index, horrorVariants)

			// Standing on the trigger must not spawn again.
			for i := 1; i < flashLinger; i++ {
				require.Empty(t, advance(m, l, point, 6), "tick %d", i)
			}
			assert.Equal(t, []Effect{DespawnEnemy{}}, advance(m, l, point, 6))
			assert.Nil(t, l.Floors[6].State)
			assert.Empty(t, advance(m, l, point, 6))
		})
	}
}

func TestLightsGoOutOnce(t *testing.T) {
	m := NewMachine(40)
	l := tower.NewLayout(30)
	l.Floors[21].Assign(tower.Lights)
	center := tower.FrameOf(21).Center()

	assert.Empty(t, advance(m, l, center.Add(common.V3(1.0, 0, 0)), 21))

	effects := advance(m, l, center, 21)
	assert.Equal(t, []Effect{
		PlaySound{Clip: Clip{Bank: BankHorror, Index: 1}},
		PlaySound{Clip: Clip{Bank: BankFireOff, Index: 0}},
		SetAmbientBrightness{Value: 40},
	}, effects)
	assert.Equal(t, tower.LightsState{Out: true}, l.Floors[21].State)

	assert.Empty(t, advance(m, l, center, 21))
}

func TestTrickPoints(t *testing.T) {
	cases := []struct {
		name   string
		action tower.FloorAction
		floor  int
		want   common.Vec3
	}{
		{"trick1_even", tower.Trick1, 2, common.V3(6.0, -3.5, 1.5)},
		{"trick1_odd", tower.Trick1, 3, common.V3(2.0, -5.5, 5.5)},
		{"trick2_even", tower.Trick2, 2, common.V3(8.0, -3.5, 1.5)},
		{"trick2_odd", tower.Trick2, 3, common.V3(0.0, -5.5, 5.5)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := trickPoint(c.action, tower.FrameOf(c.floor))
			assert.InDelta(t, c.want.X, got.X, 1e-9)
			assert.InDelta(t, c.want.Y, got.Y, 1e-9)
			assert.InDelta(t, c.want.Z, got.Z, 1e-9)
		})
	}
}

func TestTrickTriggersOnce(t *testing.T) {
	m := NewMachine(0)
	l := layoutWith(3, tower.Trick2)
	point := trickPoint(tower.Trick2, tower.FrameOf(3))

	assert.Empty(t, advance(m, l, point.Add(common.V3(0.3, 0, 0)), 3))
	assert.Equal(t, []Effect{PlaySound{Clip: Clip{Bank: BankHorror, Index: 2}}}, advance(m, l, point, 3))
	assert.Equal(t, tower.TrickState{Variant: tower.Trick2, Sprung: true}, l.Floors[3].State)
	assert.Empty(t, advance(m, l, point, 3))
}

func TestTrapPlacesWallRegardlessOfPosition(t *testing.T) {
	for _, floor := range []int{4, 5} {
		m := NewMachine(0)
		l := layoutWith(floor, tower.Trap)
		f := tower.FrameOf(floor)

		effects := advance(m, l, far, floor)
		require.Len(t, effects, 1)
		wall, ok := effects[0].(SpawnObstacle)
		require.True(t, ok)
		wantX := f.EndX - 0.5
		if f.Even {
			wantX = f.EndX + 0.5
		}
		assert.Equal(t, common.V3(wantX, f.Y, f.Z), wall.Position)
		assert.Equal(t, tower.TrapState{Stage: tower.TrapSet}, l.Floors[floor].State)

		assert.Empty(t, advance(m, l, far, floor))

		effects = advance(m, l, f.Center(), floor)
		require.Len(t, effects, 2)
		assert.Equal(t, SpawnEnemy{Position: tower.Ground(f.Start()), Speed: ambushSpeed}, effects[0])
		assert.Equal(t, tower.TrapState{Stage: tower.TrapSprung}, l.Floors[floor].State)

		assert.Empty(t, advance(m, l, f.Center(), floor))
	}
}

func TestRoarShakesThenStops(t *testing.T) {
	m := NewMachine(0)
	l := layoutWith(5, tower.Roar)
	end := tower.FrameOf(5).End()
	src := rng.New(3)

	var vel common.Vec3
	assert.Empty(t, m.Advance(l, src, end.Add(common.V3(0, 0, 6.1)), &vel, 5))
	assert.Equal(t, []Effect{PlaySound{Clip: Clip{Bank: BankRoar}}}, m.Advance(l, src, end, &vel, 5))
	assert.Zero(t, vel)

	shakes := 0
	for i := 0; i < roarShakeTicks+50; i++ {
		for _, e := range m.Advance(l, src, far, &vel, 5) {
			shake, ok := e.(ShakeCamera)
			require.True(t, ok)
			assert.LessOrEqual(t, shake.Rotation.Length(), common.Deg2Rad(2))
			shakes++
		}
	}
	assert.Equal(t, roarShakeTicks, shakes)
	assert.NotZero(t, vel)
	assert.Nil(t, l.Floors[5].State)
}

func TestDarknessSealsThenHunts(t *testing.T) {
	for _, floor := range []int{6, 7} {
		m := NewMachine(0)
		l := layoutWith(floor, tower.Darkness)
		f := tower.FrameOf(floor)

		assert.Equal(t, tower.DarknessState{Stage: tower.DarknessArmed}, l.Floors[floor].State)

		effects := advance(m, l, f.Center(), floor)
		require.Len(t, effects, 3)
		var xs []float64
		for _, e := range effects[:2] {
			wall, ok := e.(SpawnObstacle)
			require.True(t, ok)
			xs = append(xs, wall.Position.X)
		}
		if f.Even {
			assert.Equal(t, []float64{f.StartX - 0.5, f.EndX + 0.5}, xs)
		} else {
			assert.Equal(t, []float64{f.StartX + 0.5, f.EndX - 0.5}, xs)
		}
		assert.Equal(t, PlaySound{Clip: Clip{Bank: BankStone}}, effects[2])
		assert.Equal(t, tower.DarknessState{Stage: tower.DarknessCounting, Sealed: true}, l.Floors[floor].State)

		for i := 1; i < darknessDelay; i++ {
			require.Empty(t, advance(m, l, f.Center(), floor), "tick %d", i)
		}
		effects = advance(m, l, f.Center(), floor)
		require.Len(t, effects, 2)
		assert.Equal(t, SpawnEnemy{Position: tower.Ground(f.Center()), Speed: ambushSpeed}, effects[0])
		assert.Equal(t, tower.DarknessState{Stage: tower.DarknessHunted}, l.Floors[floor].State)

		for i := 0; i < 100; i++ {
			require.Empty(t, advance(m, l, f.Center(), floor))
		}
	}
}

func TestDarknessCountsWithoutWalls(t *testing.T) {
	for _, floor := range []int{6, 7} {
		m := NewMachine(0)
		l := layoutWith(floor, tower.Darkness)
		f := tower.FrameOf(floor)

		// Arriving away from the middle skips the walls but starts the clock.
		require.Empty(t, advance(m, l, f.Start(), floor))
		assert.Equal(t, tower.DarknessState{Stage: tower.DarknessCounting}, l.Floors[floor].State)

		spawned := -1
		for tick := 2; tick <= 700; tick++ {
			// Reaching the middle later never seals the corridor.
			pos := f.Start()
			if tick > 300 {
				pos = f.Center()
			}
			for _, e := range advance(m, l, pos, floor) {
				_, isWall := e.(SpawnObstacle)
				require.False(t, isWall, "tick %d", tick)
				if _, ok := e.(SpawnEnemy); ok {
					require.Equal(t, -1, spawned)
					spawned = tick
				}
			}
		}
		assert.Equal(t, darknessDelay+1, spawned)
		assert.Equal(t, 599, spawned)
		assert.Equal(t, tower.DarknessState{Stage: tower.DarknessHunted}, l.Floors[floor].State)
	}
}

func TestStatesOnlyMoveForward(t *testing.T) {
	m := NewMachine(0)
	l := layoutWith(4, tower.Trap)
	f := tower.FrameOf(4)
	positions := []common.Vec3{far, f.Center(), f.Start(), f.End(), far, f.Center()}

	last := tower.TrapArmed
	for _, p := range positions {
		advance(m, l, p, 4)
		s := l.Floors[4].State.(tower.TrapState)
		assert.GreaterOrEqual(t, int(s.Stage), int(last))
		last = s.Stage
	}
	assert.Equal(t, tower.TrapSprung, last)
}
