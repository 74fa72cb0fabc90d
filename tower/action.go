package tower

import "fmt"

// FloorAction is the scripted behavior assigned to a floor.
type FloorAction uint8

const (
	Steps FloorAction = iota
	Lights
	Flash
	Run
	Breath
	Proceed
	Trap
	Scp173
	Cell
	Lock
	Radio2
	Radio3
	Radio4
	Trick1
	Trick2
	Roar
	Darkness
)

var floorActionNames = [...]string{
	Steps:    "steps",
	Lights:   "lights",
	Flash:    "flash",
	Run:      "run",
	Breath:   "breath",
	Proceed:  "proceed",
	Trap:     "trap",
	Scp173:   "scp173",
	Cell:     "cell",
	Lock:     "lock",
	Radio2:   "radio2",
	Radio3:   "radio3",
	Radio4:   "radio4",
	Trick1:   "trick1",
	Trick2:   "trick2",
	Roar:     "roar",
	Darkness: "darkness",
}

func (a FloorAction) String() string {
	if int(a) < len(floorActionNames) {
		return floorActionNames[a]
	}
	return fmt.Sprintf("FloorAction(%d)", uint8(a))
}

func (a FloorAction) MarshalText() ([]byte, error) {
	if int(a) >= len(floorActionNames) {
		return nil, fmt.Errorf("tower: invalid floor action %d", uint8(a))
	}
	return []byte(a.String()), nil
}

// RoomType is the visual shell instantiated for a floor.
type RoomType uint8

const (
	// Map is the neutral corridor.
	Map RoomType = iota
	// Map0 is the entry room of floor 0.
	Map0
	Map1
	Map2
	Map3
	Map4
	Map5
	Map6
	// Maze only appears past floor 40.
	Maze
)

// RoomTypes lists every room type in declaration order.
var RoomTypes = []RoomType{Map, Map0, Map1, Map2, Map3, Map4, Map5, Map6, Maze}

var roomTypeNames = [...]string{
	Map:  "map",
	Map0: "map0",
	Map1: "map1",
	Map2: "map2",
	Map3: "map3",
	Map4: "map4",
	Map5: "map5",
	Map6: "map6",
	Maze: "maze",
}

func (r RoomType) String() string {
	if int(r) < len(roomTypeNames) {
		return roomTypeNames[r]
	}
	return fmt.Sprintf("RoomType(%d)", uint8(r))
}

func (r RoomType) MarshalText() ([]byte, error) {
	if int(r) >= len(roomTypeNames) {
		return nil, fmt.Errorf("tower: invalid room type %d", uint8(r))
	}
	return []byte(r.String()), nil
}

func (r *RoomType) UnmarshalText(b []byte) error {
	v, err := ParseRoomType(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// ParseRoomType maps a catalog name back to its RoomType.
func ParseRoomType(name string) (RoomType, error) {
	for i, n := range roomTypeNames {
		if n == name {
			return RoomType(i), nil
		}
	}
	return 0, fmt.Errorf("tower: unknown room type %q", name)
}
