package ecs

// EventType names what happened.
type EventType string

const (
	// EventEnemyReached is raised when a chasing enemy closes in on the player.
	EventEnemyReached EventType = "enemy_reached"
	// EventDespawned is raised when the scene removes an entity.
	EventDespawned EventType = "despawned"
)

// Event is a notification raised by a system during Update. Events live until
// the end of the frame that raised them.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

func EnemyReached(e Entity) Event {
	return Event{Type: EventEnemyReached, Entity: e}
}

func Despawned(e Entity) Event {
	return Event{Type: EventDespawned, Entity: e}
}

// Filter returns the events of type t, in the order they were raised.
func Filter(events []Event, t EventType) []Event {
	var out []Event
	for _, evt := range events {
		if evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
}

// EventQueue holds the events of the current frame in raise order.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len counts queued events of type t. An empty t counts all of them.
func (q *EventQueue) Len(t EventType) int {
	if q == nil {
		return 0
	}
	if t == "" {
		return len(q.items)
	}
	n := 0
	for _, evt := range q.items {
		if evt.Type == t {
			n++
		}
	}
	return n
}

// Drain hands over the queued events and empties the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
