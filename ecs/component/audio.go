package component

// Voice is a playing sound.
type Voice interface {
	Stop()
	IsPlaying() bool
}

// Audio holds the sounds tied to an entity. They are stopped when the entity
// is despawned.
type Audio struct {
	Voices []Voice
}

var AudioComponent = NewComponent[Audio]()
