package component

// Obstacle is a wall block placed by a floor event.
type Obstacle struct {
	Floor int
}

var ObstacleComponent = NewComponent[Obstacle]()

// Glimpse is the billboard of a placed glimpse. Index refers to the
// session's glimpse list.
type Glimpse struct {
	Index int
}

var GlimpseComponent = NewComponent[Glimpse]()
