package tower

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/milk9111/descent/rng"
)

const (
	// MinFloorCount covers the highest index any generation step writes.
	MinFloorCount = 200
	// DefaultFloorCount is the stairwell depth used by the game.
	DefaultFloorCount = 210

	mazeFromFloor  = 40
	scrambleLabels = 140
)

var (
	ErrTooFewFloors     = errors.New("tower: floor count below minimum")
	ErrScatterExhausted = errors.New("tower: scatter fill ran out of free floors")
)

// Options tweaks generation without touching the draw order.
type Options struct {
	// ScatterArmed arms the floors filled by the scatter passes. When false
	// they only shape the room sequence, as in the original game.
	ScatterArmed bool
}

type weightedAction struct {
	action FloorAction
	weight int
}

type scatterPass struct {
	count int
	lo    int
	hi    int
	table []weightedAction
}

// The scatter tables never yield Steps: a scatter pick must always leave a
// non-default action behind.
var scatterPasses = []scatterPass{
	{
		count: 8, lo: 25, hi: 69,
		table: []weightedAction{
			{Flash, 1}, {Trick1, 1}, {Trick2, 1}, {Breath, 1},
			{Trap, 1}, {Roar, 1}, {Cell, 2},
		},
	},
	{
		count: 60, lo: 75, hi: 200,
		table: []weightedAction{
			{Lights, 1}, {Run, 1}, {Trick2, 1}, {Breath, 1},
			{Trap, 1}, {Roar, 1}, {Cell, 2},
		},
	},
}

// Generate builds the stairwell for floorCount floors, drawing every random
// value from src in a fixed order.
func Generate(floorCount int, src rng.Source) (*Layout, error) {
	return GenerateWith(floorCount, src, Options{})
}

// GenerateWith is Generate with options.
func GenerateWith(floorCount int, src rng.Source, opts Options) (*Layout, error) {
	if floorCount < MinFloorCount {
		return nil, fmt.Errorf("%w: %d < %d", ErrTooFewFloors, floorCount, MinFloorCount)
	}
	g := &generator{
		layout:    NewLayout(floorCount),
		src:       src,
		opts:      opts,
		scattered: make(map[int]struct{}),
	}
	if err := g.run(); err != nil {
		return nil, err
	}
	return g.layout, nil
}

type generator struct {
	layout    *Layout
	src       rng.Source
	opts      Options
	scattered map[int]struct{}
}

func (g *generator) run() error {
	g.assign(1, Proceed)

	if g.src.Bool(0.5) {
		g.assignRandom(3, 4, Radio2)
	}
	if g.src.Bool(2.0 / 3.0) {
		g.assignRandom(5, 6, Radio3)
	}

	g.assign(7, Lock)

	if g.src.Bool(0.5) {
		g.assignRandom(8, 9, Radio4)
	}

	g.assignRandom(10, 11, Breath)
	g.assignRandom(12, 13, Steps)
	g.assignRandom(10, 19, Flash)
	g.assignRandom(20, 22, Lights)

	switch g.src.IntRange(0, 4) {
	case 1:
		g.assignRandom(25, 28, Trick1)
	case 2:
		g.assignRandom(25, 28, Trick2)
	}

	g.assignRandom(29, 33, Run)
	g.assignRandom(34, 37, Scp173)

	for _, pass := range scatterPasses {
		if err := g.scatter(pass); err != nil {
			return err
		}
	}

	g.assignRandom(150, 200, Darkness)
	g.rooms()
	return nil
}

func (g *generator) assign(i int, action FloorAction) {
	if f := g.layout.Floor(i); f != nil {
		f.Assign(action)
	}
}

func (g *generator) assignRandom(lo, hi int, action FloorAction) {
	g.assign(g.src.IntRange(lo, hi), action)
}

func (g *generator) scatter(pass scatterPass) error {
	free := 0
	for i := pass.lo; i < pass.hi && i < len(g.layout.Floors); i++ {
		if g.layout.Floors[i].Action == Steps {
			free++
		}
	}
	if pass.count > free {
		return fmt.Errorf("%w: %d picks for %d free floors in [%d,%d)", ErrScatterExhausted, pass.count, free, pass.lo, pass.hi)
	}

	limit := 64 * (pass.hi - pass.lo)
	for n := 0; n < pass.count; n++ {
		action := pick(g.src, pass.table)
		placed := false
		for attempt := 0; attempt < limit; attempt++ {
			i := g.src.IntRange(pass.lo, pass.hi)
			f := g.layout.Floor(i)
			if f == nil || f.Action != Steps {
				continue
			}
			if g.opts.ScatterArmed {
				f.Assign(action)
			} else {
				f.Mark(action)
			}
			g.scattered[i] = struct{}{}
			placed = true
			break
		}
		if !placed {
			return fmt.Errorf("%w: no free floor in [%d,%d) after %d attempts", ErrScatterExhausted, pass.lo, pass.hi, limit)
		}
	}
	return nil
}

func pick(src rng.Source, table []weightedAction) FloorAction {
	total := 0
	for _, w := range table {
		total += w.weight
	}
	r := src.IntRange(0, total)
	for _, w := range table {
		if r < w.weight {
			return w.action
		}
		r -= w.weight
	}
	return table[len(table)-1].action
}

func (g *generator) rooms() {
	floors := g.layout.Floors
	rooms := make([]Room, 0, len(floors)-1)
	for i := 0; i < len(floors)-1; i++ {
		if i == 0 {
			rooms = append(rooms, Room{Kind: Map0})
			continue
		}
		kind := g.roomKind(i, floors[i+1].Action)
		label := g.label(i)
		rooms = append(rooms, Room{Kind: kind, Label: &label})
	}
	g.layout.Rooms = rooms
}

// roomKind picks the shell of room i from the action of the floor below it.
func (g *generator) roomKind(i int, below FloorAction) RoomType {
	switch below {
	case Scp173:
		return Map2
	case Cell:
		return Map1
	case Trick1:
		return Map4
	case Trick2:
		return Map5
	case Flash, Run, Lights, Trap, Lock:
		return Map
	case Steps:
		switch g.src.IntRange(0, 20) {
		case 1, 2:
			return Map1
		case 3, 4:
			return Map2
		case 5, 6:
			return Map3
		case 7:
			return Map4
		case 8:
			return Map5
		case 9:
			return Map6
		case 10:
			if i > mazeFromFloor {
				return Maze
			}
		}
	}
	return Map
}

func (g *generator) label(i int) string {
	var label string
	switch g.src.IntRange(0, 600) {
	case 1:
		label = ""
	case 2:
		label = string(g.glyph())
	case 3:
		label = "NIL"
	case 4:
		label = "?"
	case 5:
		label = "NO"
	case 6:
		label = "stop"
	default:
		label = strconv.Itoa(i + 1)
	}

	if i > scrambleLabels {
		n := g.src.IntRange(1, 4)
		b := make([]rune, 0, n)
		for range n {
			b = append(b, g.glyph())
		}
		label = string(b)
	}
	return label
}

// glyph returns a printable ASCII character.
func (g *generator) glyph() rune {
	return rune(g.src.IntRange(33, 122))
}
