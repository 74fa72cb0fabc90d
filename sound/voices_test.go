package sound

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeVoice struct {
	playing bool
	stops   int
}

func (v *fakeVoice) Stop() {
	v.playing = false
	v.stops++
}

func (v *fakeVoice) IsPlaying() bool {
	return v.playing
}

func TestVoiceSetStopsEveryMode(t *testing.T) {
	var s voiceSet
	loop := &fakeVoice{playing: true}
	tied := &fakeVoice{playing: true}
	once := &fakeVoice{playing: true}
	s.add(loop)
	s.add(tied)
	s.add(once)

	s.stopAll()
	for _, v := range []*fakeVoice{loop, tied, once} {
		assert.False(t, v.playing)
		assert.Equal(t, 1, v.stops)
	}
	assert.Zero(t, s.len())

	s.stopAll()
	assert.Equal(t, 1, loop.stops, "stopped voices are forgotten")
}

func TestVoiceSetDropsFinished(t *testing.T) {
	var s voiceSet
	done := &fakeVoice{}
	s.add(done)
	s.add(&fakeVoice{playing: true})
	s.add(&fakeVoice{playing: true})

	assert.Equal(t, 2, s.len())
	s.stopAll()
	assert.Zero(t, done.stops)
}
