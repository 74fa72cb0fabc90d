package rng

import "fmt"

// DrawKind identifies which Source method produced a Draw.
type DrawKind uint8

const (
	DrawBool DrawKind = iota + 1
	DrawInt
	DrawFloat
)

// Draw is one recorded value from a Source.
type Draw struct {
	Kind  DrawKind
	Bool  bool
	Int   int
	Float float64
}

// Recorder wraps a Source and keeps every value it hands out.
type Recorder struct {
	src   Source
	Draws []Draw
}

func NewRecorder(src Source) *Recorder {
	return &Recorder{src: src}
}

func (r *Recorder) Bool(p float64) bool {
	v := r.src.Bool(p)
	r.Draws = append(r.Draws, Draw{Kind: DrawBool, Bool: v})
	return v
}

func (r *Recorder) IntRange(lo, hi int) int {
	v := r.src.IntRange(lo, hi)
	r.Draws = append(r.Draws, Draw{Kind: DrawInt, Int: v})
	return v
}

func (r *Recorder) FloatRange(lo, hi float64) float64 {
	v := r.src.FloatRange(lo, hi)
	r.Draws = append(r.Draws, Draw{Kind: DrawFloat, Float: v})
	return v
}

// Replay hands back a recorded draw sequence in order. It panics when the
// caller asks for a different kind of value than was recorded, or runs past
// the end, since either means the consumer diverged from the recording.
type Replay struct {
	draws []Draw
	next  int
}

func NewReplay(draws []Draw) *Replay {
	return &Replay{draws: draws}
}

// Remaining reports how many recorded draws have not been consumed.
func (r *Replay) Remaining() int {
	return len(r.draws) - r.next
}

func (r *Replay) take(kind DrawKind) Draw {
	if r.next >= len(r.draws) {
		panic("rng: replay exhausted")
	}
	d := r.draws[r.next]
	if d.Kind != kind {
		panic(fmt.Sprintf("rng: replay draw %d is kind %d, want %d", r.next, d.Kind, kind))
	}
	r.next++
	return d
}

func (r *Replay) Bool(float64) bool {
	return r.take(DrawBool).Bool
}

func (r *Replay) IntRange(lo, hi int) int {
	v := r.take(DrawInt).Int
	if v < lo || v >= hi {
		panic(fmt.Sprintf("rng: replayed %d outside [%d,%d)", v, lo, hi))
	}
	return v
}

func (r *Replay) FloatRange(float64, float64) float64 {
	return r.take(DrawFloat).Float
}
