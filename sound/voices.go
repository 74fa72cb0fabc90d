package sound

import "github.com/milk9111/descent/ecs/component"

// voiceSet holds the voices a mixer started so a restart can silence them
// together. Finished voices are dropped on the next add.
type voiceSet struct {
	voices []component.Voice
}

func (s *voiceSet) add(v component.Voice) {
	live := s.voices[:0]
	for _, old := range s.voices {
		if old.IsPlaying() {
			live = append(live, old)
		}
	}
	clear(s.voices[len(live):])
	s.voices = append(live, v)
}

func (s *voiceSet) stopAll() {
	for _, v := range s.voices {
		v.Stop()
	}
	s.voices = nil
}

func (s *voiceSet) len() int {
	return len(s.voices)
}
