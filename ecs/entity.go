package ecs

import (
	"fmt"
	"log/slog"
)

// Entity packs a slot id in the low 32 bits and the slot generation in the
// high 32 bits. The zero Entity is never handed out.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// String prints slot:generation, so a reused slot reads differently from
// the handle it replaced.
func (e Entity) String() string {
	return fmt.Sprintf("%d:%d", e.id(), e.generation())
}

// LogValue logs the slot and generation as a group.
func (e Entity) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("slot", uint64(e.id())),
		slog.Uint64("gen", uint64(e.generation())),
	)
}

func (e Entity) Valid() bool {
	return e.id() > 0
}
