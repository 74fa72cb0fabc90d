package sound

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/descent/assets"
	"github.com/milk9111/descent/ecs/component"
	"github.com/milk9111/descent/floorevent"
)

const SampleRate = 44100

// Mixer decodes every catalog clip up front and starts a new player per
// request, so the same clip can overlap itself.
type Mixer struct {
	ctx     *audio.Context
	catalog *Catalog
	pcm     map[floorevent.Clip][]byte
	volume  float64
	voices  voiceSet
	log     *slog.Logger
}

// NewMixer decodes the catalog's clips. ctx is usually audio.NewContext,
// which may only be called once per process.
func NewMixer(ctx *audio.Context, catalog *Catalog, volume float64, log *slog.Logger) (*Mixer, error) {
	m := &Mixer{
		ctx:    ctx,
		volume: volume,
		log:    log,
	}
	if err := m.Reload(catalog); err != nil {
		return nil, err
	}
	return m, nil
}

// Reload swaps in a new catalog. Voices already playing are left alone.
func (m *Mixer) Reload(catalog *Catalog) error {
	pcm := make(map[floorevent.Clip][]byte)
	for _, clip := range catalog.Clips() {
		entry, _ := catalog.Resolve(clip)
		b, err := assets.LoadAudio(m.ctx, entry.File)
		if err != nil {
			return fmt.Errorf("sound: load %s: %w", clip, err)
		}
		pcm[clip] = b
	}
	m.catalog = catalog
	m.pcm = pcm
	m.log.Debug("sound catalog loaded", "clips", len(pcm))
	return nil
}

// Play starts clip. Loop voices repeat until stopped; the caller owns Tied
// voices and stops them with their entity.
func (m *Mixer) Play(clip floorevent.Clip, mode floorevent.PlayMode) (component.Voice, error) {
	entry, err := m.catalog.Resolve(clip)
	if err != nil {
		return nil, err
	}
	b := m.pcm[clip]

	var p *audio.Player
	if mode == floorevent.Loop {
		p, err = m.ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(b), int64(len(b))))
		if err != nil {
			return nil, fmt.Errorf("sound: play %s: %w", clip, err)
		}
	} else {
		p = m.ctx.NewPlayerFromBytes(b)
	}
	p.SetVolume(entry.Volume * m.volume)
	p.Play()

	v := &voice{player: p}
	m.voices.add(v)
	return v, nil
}

// StopAll stops every voice the mixer started, whatever its mode.
func (m *Mixer) StopAll() {
	m.voices.stopAll()
}

type voice struct {
	player *audio.Player
	closed bool
}

// Stop may be called by both the owning entity and StopAll.
func (v *voice) Stop() {
	if v.closed {
		return
	}
	v.closed = true
	v.player.Pause()
	_ = v.player.Close()
}

func (v *voice) IsPlaying() bool {
	return !v.closed && v.player.IsPlaying()
}
