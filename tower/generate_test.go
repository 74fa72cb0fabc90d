package tower

import (
	"strconv"
	"testing"

	"github.com/milk9111/descent/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSizes(t *testing.T) {
	for _, n := range []int{MinFloorCount, DefaultFloorCount, 500} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			for seed := uint64(0); seed < 20; seed++ {
				l, err := Generate(n, rng.New(seed))
				require.NoError(t, err)
				require.Equal(t, n, l.FloorCount)
				require.Len(t, l.Floors, n)
				require.Len(t, l.Rooms, n-1)
			}
		})
	}
}

func TestGenerateRejectsShortStairwell(t *testing.T) {
	_, err := Generate(MinFloorCount-1, rng.New(1))
	require.ErrorIs(t, err, ErrTooFewFloors)
}

func TestGenerateFixedFloors(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		l, err := Generate(DefaultFloorCount, rng.New(seed))
		require.NoError(t, err)

		assert.Equal(t, Proceed, l.Floors[1].Action)
		assert.Equal(t, ProceedState{}, l.Floors[1].State)
		assert.Equal(t, Lock, l.Floors[7].Action)
		assert.Equal(t, Steps, l.Floors[0].Action)
		assert.Nil(t, l.Floors[0].State)

		assert.Equal(t, Scp173, actionIn(l, 34, 37))
		assert.Equal(t, Run, actionIn(l, 29, 33))
		assert.Equal(t, Lights, actionIn(l, 20, 22))
		assert.Equal(t, 1, countIn(l, Flash, 10, 19))
		assert.Equal(t, 1, countIn(l, Darkness, 150, 200))
	}
}

// actionIn returns the single armed non-Steps action in [lo, hi).
func actionIn(l *Layout, lo, hi int) FloorAction {
	for i := lo; i < hi; i++ {
		if l.Floors[i].Action != Steps && l.Floors[i].Active() {
			return l.Floors[i].Action
		}
	}
	return Steps
}

func countIn(l *Layout, action FloorAction, lo, hi int) int {
	n := 0
	for i := lo; i < hi; i++ {
		if l.Floors[i].Action == action {
			n++
		}
	}
	return n
}

func TestGenerateDeterministicFromRecordedDraws(t *testing.T) {
	rec := rng.NewRecorder(rng.New(99))
	first, err := Generate(DefaultFloorCount, rec)
	require.NoError(t, err)

	replay := rng.NewReplay(rec.Draws)
	second, err := Generate(DefaultFloorCount, replay)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Zero(t, replay.Remaining())
}

func TestGenerateSameSeedSameLayout(t *testing.T) {
	a, err := Generate(DefaultFloorCount, rng.New(5))
	require.NoError(t, err)
	b, err := Generate(DefaultFloorCount, rng.New(5))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestScatterNeverOverwrites(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		src := rng.New(seed)
		g := &generator{
			layout:    NewLayout(DefaultFloorCount),
			src:       src,
			scattered: make(map[int]struct{}),
		}
		require.NoError(t, g.run())

		assert.Len(t, g.scattered, 68)
		for i := range g.scattered {
			f := g.layout.Floors[i]
			assert.NotEqual(t, Steps, f.Action, "floor %d", i)
			// Scatter floors are never armed, so an armed floor inside the
			// scatter set can only be the darkness floor drawn afterwards.
			if f.State != nil {
				assert.Equal(t, Darkness, f.Action, "floor %d", i)
			}
		}
	}
}

func TestScatterArmedOption(t *testing.T) {
	l, err := GenerateWith(DefaultFloorCount, rng.New(3), Options{ScatterArmed: true})
	require.NoError(t, err)
	for i := 75; i < 200; i++ {
		f := l.Floors[i]
		if f.Action != Steps {
			assert.True(t, f.Active(), "floor %d (%s)", i, f.Action)
		}
	}
}

func TestScatterExhaustedFailsFast(t *testing.T) {
	g := &generator{
		layout:    NewLayout(DefaultFloorCount),
		src:       rng.New(1),
		scattered: make(map[int]struct{}),
	}
	err := g.scatter(scatterPass{count: 5, lo: 10, hi: 13, table: scatterPasses[0].table})
	require.ErrorIs(t, err, ErrScatterExhausted)
}

func TestRoomsFollowFloorBelow(t *testing.T) {
	for seed := uint64(0); seed < 30; seed++ {
		l, err := Generate(DefaultFloorCount, rng.New(seed))
		require.NoError(t, err)

		assert.Equal(t, Map0, l.Rooms[0].Kind)
		assert.Nil(t, l.Rooms[0].Label)

		for i := 1; i < len(l.Rooms); i++ {
			r := l.Rooms[i]
			require.NotNil(t, r.Label, "room %d", i)
			switch l.Floors[i+1].Action {
			case Scp173:
				assert.Equal(t, Map2, r.Kind)
			case Cell:
				assert.Equal(t, Map1, r.Kind)
			case Trick1:
				assert.Equal(t, Map4, r.Kind)
			case Trick2:
				assert.Equal(t, Map5, r.Kind)
			case Flash, Run, Lights, Trap, Lock, Breath, Roar, Darkness:
				assert.Equal(t, Map, r.Kind)
			}
			if r.Kind == Maze {
				assert.Greater(t, i, mazeFromFloor)
			}
			if i > scrambleLabels {
				n := len([]rune(*r.Label))
				assert.True(t, n >= 1 && n <= 3, "room %d label %q", i, *r.Label)
			}
		}
	}
}

func TestLabelsMostlyFloorNumbers(t *testing.T) {
	l, err := Generate(DefaultFloorCount, rng.New(11))
	require.NoError(t, err)

	numbered := 0
	for i := 1; i <= scrambleLabels; i++ {
		if *l.Rooms[i].Label == strconv.Itoa(i+1) {
			numbered++
		}
	}
	assert.Greater(t, numbered, scrambleLabels*9/10)
}

func TestLabelGlyphsPrintable(t *testing.T) {
	l, err := Generate(DefaultFloorCount, rng.New(8))
	require.NoError(t, err)
	for i := scrambleLabels + 1; i < len(l.Rooms); i++ {
		for _, r := range *l.Rooms[i].Label {
			assert.True(t, r >= 33 && r < 122, "room %d glyph %q", i, r)
		}
	}
}
