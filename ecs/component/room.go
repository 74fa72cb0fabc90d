package component

import "github.com/milk9111/descent/tower"

// Room marks a pooled floor shell. Kind never changes once built.
type Room struct {
	Kind tower.RoomType
}

var RoomComponent = NewComponent[Room]()
