package sound

import (
	"testing"

	"github.com/milk9111/descent/floorevent"
	"github.com/milk9111/descent/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogResolve(t *testing.T) {
	c := NewCatalog(&prefabs.ClipsSpec{Banks: map[string][]prefabs.AudioSpec{
		"radio": {{File: "a.wav", Volume: 1}, {File: "b.wav", Volume: 0.5}},
	}})

	e, err := c.Resolve(floorevent.Clip{Bank: "radio", Index: 1})
	require.NoError(t, err)
	assert.Equal(t, Entry{File: "b.wav", Volume: 0.5}, e)

	_, err = c.Resolve(floorevent.Clip{Bank: "radio", Index: 2})
	assert.ErrorIs(t, err, ErrUnknownClip)
	_, err = c.Resolve(floorevent.Clip{Bank: "roar"})
	assert.ErrorIs(t, err, ErrUnknownClip)

	assert.ElementsMatch(t, []floorevent.Clip{{Bank: "radio", Index: 0}, {Bank: "radio", Index: 1}}, c.Clips())
}

// Every clip a floor event can ask for must exist in the shipped catalog.
func TestShippedCatalogCoversEffects(t *testing.T) {
	prefabs.Dir = ""
	spec, err := prefabs.LoadClipsSpec()
	require.NoError(t, err)
	c := NewCatalog(spec)

	needed := []floorevent.Clip{
		{Bank: floorevent.BankRadio, Index: 0},
		{Bank: floorevent.BankRadio, Index: 1},
		{Bank: floorevent.BankRadio, Index: 2},
		{Bank: floorevent.BankRadio, Index: 3},
		{Bank: floorevent.BankHorror, Index: 0},
		{Bank: floorevent.BankHorror, Index: 1},
		{Bank: floorevent.BankHorror, Index: 2},
		{Bank: floorevent.BankFireOff},
		{Bank: floorevent.BankRoar},
		{Bank: floorevent.BankStone},
		{Bank: floorevent.BankNo},
		{Bank: floorevent.BankMusic},
	}
	for _, clip := range needed {
		_, err := c.Resolve(clip)
		assert.NoError(t, err, clip.String())
	}
}
