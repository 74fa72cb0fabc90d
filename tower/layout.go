package tower

// Floor is one level of the stairwell.
type Floor struct {
	Action FloorAction
	State  State
}

// Active reports whether the floor still has behavior to run.
func (f Floor) Active() bool {
	return f.State != nil && f.State.Action() == f.Action
}

// Assign sets the floor action and arms it.
func (f *Floor) Assign(action FloorAction) {
	f.Action = action
	f.State = Arm(action)
}

// Mark sets the floor action without arming it; the floor only influences
// room derivation.
func (f *Floor) Mark(action FloorAction) {
	f.Action = action
	f.State = nil
}

// Room is the shell drawn for a floor. Label is the text on the floor sign,
// nil when the room has no sign.
type Room struct {
	Kind  RoomType
	Label *string
}

// Layout is the generated stairwell. Floors has FloorCount entries; Rooms has
// FloorCount-1, since the last floor never gets a room below it. Only the
// floor event machine mutates Floors after generation.
type Layout struct {
	FloorCount int
	Floors     []Floor
	Rooms      []Room
}

// NewLayout returns a layout of floorCount idle Steps floors and no rooms.
func NewLayout(floorCount int) *Layout {
	return &Layout{
		FloorCount: floorCount,
		Floors:     make([]Floor, floorCount),
	}
}

// Floor returns the floor at index i, or nil when i is out of range.
func (l *Layout) Floor(i int) *Floor {
	if l == nil || i < 0 || i >= len(l.Floors) {
		return nil
	}
	return &l.Floors[i]
}

// Room returns the room at index i.
func (l *Layout) Room(i int) (Room, bool) {
	if l == nil || i < 0 || i >= len(l.Rooms) {
		return Room{}, false
	}
	return l.Rooms[i], true
}

// Window returns the room indices within distance of cur: above, current and
// below, in that order. Indices outside the room list are left out.
func (l *Layout) Window(cur, distance int) []int {
	out := make([]int, 0, 3)
	if distance > 0 && cur-distance >= 0 && cur-distance < len(l.Rooms) {
		out = append(out, cur-distance)
	}
	if cur >= 0 && cur < len(l.Rooms) {
		out = append(out, cur)
	}
	if distance > 0 && cur+distance >= 0 && cur+distance < len(l.Rooms) {
		out = append(out, cur+distance)
	}
	return out
}

// Count returns how many floors hold action.
func (l *Layout) Count(action FloorAction) int {
	n := 0
	for _, f := range l.Floors {
		if f.Action == action {
			n++
		}
	}
	return n
}
