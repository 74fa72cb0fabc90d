package component

// Enemy walks toward the player at Speed units per tick. Speed 0 stands
// still.
type Enemy struct {
	Speed float64
	// Reached is set once the enemy got within striking distance.
	Reached bool
}

var EnemyComponent = NewComponent[Enemy]()
