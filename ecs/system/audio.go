package system

import (
	"github.com/milk9111/descent/ecs"
	"github.com/milk9111/descent/ecs/component"
)

// AudioSystem forgets tied voices that finished on their own.
type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(e ecs.Entity, audioComp *component.Audio) {
		live := audioComp.Voices[:0]
		for _, v := range audioComp.Voices {
			if v != nil && v.IsPlaying() {
				live = append(live, v)
			}
		}
		audioComp.Voices = live
		if len(live) == 0 {
			ecs.Remove(w, e, component.AudioComponent.Kind())
		}
	})
}
