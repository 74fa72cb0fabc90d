// Package sound plays the clips floor events ask for.
package sound

import (
	"errors"
	"fmt"

	"github.com/milk9111/descent/floorevent"
	"github.com/milk9111/descent/prefabs"
)

var ErrUnknownClip = errors.New("sound: unknown clip")

// Entry is one resolved clip.
type Entry struct {
	File   string
	Volume float64
}

// Catalog resolves clips to files.
type Catalog struct {
	banks map[string][]Entry
}

func NewCatalog(spec *prefabs.ClipsSpec) *Catalog {
	c := &Catalog{banks: make(map[string][]Entry)}
	if spec == nil {
		return c
	}
	for bank, clips := range spec.Banks {
		for _, clip := range clips {
			c.banks[bank] = append(c.banks[bank], Entry{File: clip.File, Volume: clip.Volume})
		}
	}
	return c
}

func (c *Catalog) Resolve(clip floorevent.Clip) (Entry, error) {
	entries := c.banks[clip.Bank]
	if clip.Index < 0 || clip.Index >= len(entries) {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownClip, clip)
	}
	return entries[clip.Index], nil
}

// Clips lists every clip in the catalog.
func (c *Catalog) Clips() []floorevent.Clip {
	var out []floorevent.Clip
	for bank, entries := range c.banks {
		for i := range entries {
			out = append(out, floorevent.Clip{Bank: bank, Index: i})
		}
	}
	return out
}
