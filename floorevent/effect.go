package floorevent

import (
	"fmt"

	"github.com/milk9111/descent/common"
)

// Effect is a side-effect request emitted by the machine for the scene,
// audio and lighting collaborators to carry out.
type Effect interface {
	isEffect()
}

// PlayMode controls how long a sound lives.
type PlayMode uint8

const (
	// Once plays the clip and forgets it.
	Once PlayMode = iota
	// Loop repeats until stopped.
	Loop
	// Tied stops the clip when its owning entity is removed.
	Tied
)

// Clip names a sound in the clip catalog: a bank and an index into it.
type Clip struct {
	Bank  string
	Index int
}

func (c Clip) String() string {
	return fmt.Sprintf("%s[%d]", c.Bank, c.Index)
}

// Sound banks referenced by the machine.
const (
	BankRadio   = "radio"
	BankHorror  = "horror"
	BankFireOff = "fire_off"
	BankRoar    = "roar"
	BankStone   = "stone"
	BankNo      = "no"

	// BankMusic is the drone looped for the whole run.
	BankMusic = "music"
)

type PlaySound struct {
	Clip Clip
	Mode PlayMode
}

// SpawnEnemy asks for an enemy at Position that walks toward the player at
// Speed. A speed of zero is a still silhouette.
type SpawnEnemy struct {
	Position common.Vec3
	Speed    float64
}

// DespawnEnemy removes the most recently spawned enemy.
type DespawnEnemy struct{}

// SpawnObstacle asks for a static 1x2x1 wall block.
type SpawnObstacle struct {
	Position common.Vec3
	Yaw      float64
}

type SetAmbientBrightness struct {
	Value float64
}

// ShakeCamera rotates the camera by Rotation (pitch, yaw, roll in radians).
type ShakeCamera struct {
	Rotation common.Vec3
}

func (PlaySound) isEffect()            {}
func (SpawnEnemy) isEffect()           {}
func (DespawnEnemy) isEffect()         {}
func (SpawnObstacle) isEffect()        {}
func (SetAmbientBrightness) isEffect() {}
func (ShakeCamera) isEffect()          {}
