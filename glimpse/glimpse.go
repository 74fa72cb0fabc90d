// Package glimpse scatters brief apparitions along quiet floors. Walking up
// to one makes it vanish with a whisper.
package glimpse

import (
	"github.com/milk9111/descent/common"
	"github.com/milk9111/descent/floorevent"
	"github.com/milk9111/descent/rng"
	"github.com/milk9111/descent/tower"
)

const (
	// DefaultChance places a glimpse on one in DefaultChance quiet floors.
	DefaultChance = 6

	minX = 0.8
	maxX = 7.2

	evenZ = 6.55
	oddZ  = 0.3

	seenRadius = 2.3
)

type Glimpse struct {
	Floor    int
	Position common.Vec3
	Seen     bool
}

// Place rolls a glimpse for every Steps floor below the entry. chance values
// below 1 use DefaultChance.
func Place(layout *tower.Layout, src rng.Source, chance int) []Glimpse {
	if chance < 1 {
		chance = DefaultChance
	}

	var out []Glimpse
	for i := 1; i < len(layout.Floors); i++ {
		if layout.Floors[i].Action != tower.Steps || src.IntRange(0, chance) != 0 {
			continue
		}
		z := oddZ
		if i%2 == 0 {
			z = evenZ
		}
		out = append(out, Glimpse{
			Floor:    i,
			Position: common.V3(src.FloatRange(minX, maxX), tower.FrameOf(i).Y, z),
		})
	}
	return out
}

// Check consumes every unseen glimpse on floor within reach of pos. It
// returns the consumed indices and one sound per consumed glimpse.
func Check(gs []Glimpse, floor int, pos common.Vec3) ([]int, []floorevent.Effect) {
	var (
		seen    []int
		effects []floorevent.Effect
	)
	for i := range gs {
		g := &gs[i]
		if g.Seen || g.Floor != floor || pos.Distance(g.Position) >= seenRadius {
			continue
		}
		g.Seen = true
		seen = append(seen, i)
		effects = append(effects, floorevent.PlaySound{
			Clip: floorevent.Clip{Bank: floorevent.BankNo},
			Mode: floorevent.Once,
		})
	}
	return seen, effects
}
