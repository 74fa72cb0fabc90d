// Package pool recycles room instances. Rooms are heavy to build, so a room
// leaving the activation window is parked by kind and handed back out the
// next time a floor needs a room of the same kind.
package pool

import (
	"fmt"
	"slices"

	"github.com/milk9111/descent/common"
	"github.com/milk9111/descent/tower"
)

// WindowDistance is how many floors above and below the player keep their
// rooms alive.
const WindowDistance = 1

// Spawner builds and moves room instances. H is the handle the host uses to
// refer to an instance.
type Spawner[H comparable] interface {
	SpawnRoom(kind tower.RoomType, t common.Transform) H
	SetTransform(h H, t common.Transform)
}

// Pool maps active floors to room instances and keeps released instances
// bucketed by the kind they were built for.
type Pool[H comparable] struct {
	spawner   Spawner[H]
	available map[tower.RoomType][]H
	active    map[int]H
	// built counts instances created through the spawner.
	built int
}

func New[H comparable](spawner Spawner[H]) *Pool[H] {
	return &Pool[H]{
		spawner:   spawner,
		available: make(map[tower.RoomType][]H),
		active:    make(map[int]H),
	}
}

// GetOrActivate returns the instance representing floor. An already active
// floor is moved to t and keeps its instance; otherwise a parked instance of
// room.Kind is reused, or a new one is built.
func (p *Pool[H]) GetOrActivate(floor int, room tower.Room, t common.Transform) H {
	if h, ok := p.active[floor]; ok {
		p.spawner.SetTransform(h, t)
		return h
	}

	var h H
	if bucket := p.available[room.Kind]; len(bucket) > 0 {
		h = bucket[len(bucket)-1]
		p.available[room.Kind] = bucket[:len(bucket)-1]
		p.spawner.SetTransform(h, t)
	} else {
		h = p.spawner.SpawnRoom(room.Kind, t)
		p.built++
	}

	for other, o := range p.active {
		if o == h {
			panic(fmt.Sprintf("pool: instance %v active for floors %d and %d", h, other, floor))
		}
	}
	p.active[floor] = h
	return h
}

// Release parks the instance of floor under kind. Releasing an inactive floor
// does nothing.
func (p *Pool[H]) Release(floor int, kind tower.RoomType) {
	h, ok := p.active[floor]
	if !ok {
		return
	}
	delete(p.active, floor)
	for k, bucket := range p.available {
		if slices.Contains(bucket, h) {
			panic(fmt.Sprintf("pool: instance %v already parked under %s", h, k))
		}
	}
	p.available[kind] = append(p.available[kind], h)
}

// Sync activates the rooms in the window around cur and then releases every
// active room outside it, lowest floor first.
func (p *Pool[H]) Sync(layout *tower.Layout, cur int) {
	window := layout.Window(cur, WindowDistance)
	for _, i := range window {
		room, _ := layout.Room(i)
		p.GetOrActivate(i, room, tower.FloorTransform(i))
	}

	for _, i := range p.ActiveFloors() {
		if slices.Contains(window, i) {
			continue
		}
		room, _ := layout.Room(i)
		p.Release(i, room.Kind)
	}
}

// Active returns the instance of floor, if it has one.
func (p *Pool[H]) Active(floor int) (H, bool) {
	h, ok := p.active[floor]
	return h, ok
}

// ActiveFloors returns the active floor indices in ascending order.
func (p *Pool[H]) ActiveFloors() []int {
	out := make([]int, 0, len(p.active))
	for i := range p.active {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// Available returns how many instances of kind are parked.
func (p *Pool[H]) Available(kind tower.RoomType) int {
	return len(p.available[kind])
}

// Built returns how many instances the pool has ever created.
func (p *Pool[H]) Built() int {
	return p.built
}
