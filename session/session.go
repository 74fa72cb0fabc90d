// Package session runs one descent: it generates the stairwell, then each
// tick advances the current floor, applies the resulting effects to the host
// and keeps the pooled rooms around the player.
package session

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/milk9111/descent/common"
	"github.com/milk9111/descent/ecs"
	"github.com/milk9111/descent/floorevent"
	"github.com/milk9111/descent/glimpse"
	"github.com/milk9111/descent/pool"
	"github.com/milk9111/descent/rng"
	"github.com/milk9111/descent/tower"
)

// Host carries out effects. scene.Scene is the production implementation.
type Host interface {
	pool.Spawner[ecs.Entity]
	SpawnEnemy(pos common.Vec3, speed float64) ecs.Entity
	SpawnObstacle(floor int, pos common.Vec3, yaw float64) ecs.Entity
	SpawnGlimpse(index int, pos common.Vec3) ecs.Entity
	Despawn(e ecs.Entity)
	PlaySound(clip floorevent.Clip, mode floorevent.PlayMode, owner ecs.Entity) error
	SetAmbientBrightness(v float64)
	ShakeCamera(rotation common.Vec3)
}

type Options struct {
	Seed          uint64
	Floors        int
	ScatterArmed  bool
	GlimpseChance int
	// LightingStart is the ambient brightness before any Lights floor.
	LightingStart float64
	LightsOut     float64
}

// PlayerState is the player pose sampled by the host before a tick.
type PlayerState struct {
	Position common.Vec3
	Velocity common.Vec3
}

// Frame summarizes one tick.
type Frame struct {
	Tick    int
	Floor   int
	Action  tower.FloorAction
	Effects []floorevent.Effect
	// Velocity is the player velocity after floor effects; the host should
	// carry on with it.
	Velocity common.Vec3
}

type Session struct {
	id      uuid.UUID
	opts    Options
	log     *slog.Logger
	host    Host
	src     rng.Source
	layout  *tower.Layout
	machine *floorevent.Machine
	rooms   *pool.Pool[ecs.Entity]

	glimpses    []glimpse.Glimpse
	glimpseEnts []ecs.Entity
	enemy       ecs.Entity
	floor       int
	ticks       int
	ambient     float64
}

// New generates the stairwell for opts.Seed and builds the rooms around the
// entry.
func New(opts Options, host Host, log *slog.Logger) (*Session, error) {
	return NewWithSource(opts, rng.New(opts.Seed), host, log)
}

// NewWithSource is New with an explicit random stream.
func NewWithSource(opts Options, src rng.Source, host Host, log *slog.Logger) (*Session, error) {
	id := uuid.New()
	log = log.With("session", id.String())

	layout, err := tower.GenerateWith(opts.Floors, src, tower.Options{ScatterArmed: opts.ScatterArmed})
	if err != nil {
		return nil, fmt.Errorf("session: generate: %w", err)
	}

	s := &Session{
		id:      id,
		opts:    opts,
		log:     log,
		host:    host,
		src:     src,
		layout:  layout,
		machine: floorevent.NewMachine(opts.LightsOut),
		rooms:   pool.New[ecs.Entity](host),
		floor:   1,
	}

	s.glimpses = glimpse.Place(layout, src, opts.GlimpseChance)
	for i, g := range s.glimpses {
		s.glimpseEnts = append(s.glimpseEnts, host.SpawnGlimpse(i, g.Position))
	}

	s.setAmbient(opts.LightingStart)
	s.rooms.Sync(layout, s.floor)
	s.apply(0, floorevent.PlaySound{Clip: floorevent.Clip{Bank: floorevent.BankMusic}, Mode: floorevent.Loop})

	log.Info("tower generated",
		"seed", opts.Seed,
		"floors", layout.FloorCount,
		"glimpses", len(s.glimpses),
		"traps", layout.Count(tower.Trap),
		"roars", layout.Count(tower.Roar),
		"darkness", layout.Count(tower.Darkness),
	)
	return s, nil
}

func (s *Session) setAmbient(v float64) {
	s.ambient = v
	s.host.SetAmbientBrightness(v)
}

// Tick runs one simulation step: the floor machine first, then its effects,
// then glimpses, then the room pool.
func (s *Session) Tick(p PlayerState) Frame {
	s.ticks++
	floor := tower.FloorIndexAt(p.Position.Y)
	if floor != s.floor {
		s.log.Debug("floor changed", "from", s.floor, "to", floor)
		s.floor = floor
	}

	vel := p.Velocity
	effects := s.machine.Advance(s.layout, s.src, p.Position, &vel, floor)
	for _, e := range effects {
		s.apply(floor, e)
	}

	seen, whispers := glimpse.Check(s.glimpses, floor, p.Position)
	for _, i := range seen {
		s.host.Despawn(s.glimpseEnts[i])
		s.log.Debug("glimpse seen", "floor", floor)
	}
	for _, e := range whispers {
		s.apply(floor, e)
	}
	effects = append(effects, whispers...)

	s.rooms.Sync(s.layout, floor)

	f := Frame{
		Tick:     s.ticks,
		Floor:    floor,
		Effects:  effects,
		Velocity: vel,
	}
	if fl := s.layout.Floor(floor); fl != nil {
		f.Action = fl.Action
	}
	return f
}

func (s *Session) apply(floor int, effect floorevent.Effect) {
	switch e := effect.(type) {
	case floorevent.PlaySound:
		if err := s.host.PlaySound(e.Clip, e.Mode, s.enemy); err != nil {
			s.log.Warn("sound failed", "clip", e.Clip.String(), "err", err)
		}
	case floorevent.SpawnEnemy:
		s.enemy = s.host.SpawnEnemy(e.Position, e.Speed)
		s.log.Debug("enemy spawned", "floor", floor, "speed", e.Speed)
	case floorevent.DespawnEnemy:
		if s.enemy.Valid() {
			s.host.Despawn(s.enemy)
			s.enemy = 0
		}
	case floorevent.SpawnObstacle:
		s.host.SpawnObstacle(floor, e.Position, e.Yaw)
		s.log.Debug("wall placed", "floor", floor, "x", e.Position.X)
	case floorevent.SetAmbientBrightness:
		s.setAmbient(e.Value)
		s.log.Debug("lights out", "floor", floor, "ambient", e.Value)
	case floorevent.ShakeCamera:
		s.host.ShakeCamera(e.Rotation)
	default:
		panic(fmt.Sprintf("session: unhandled effect %T", effect))
	}
}

// Label is the sign shown on a floor.
type Label struct {
	Text      string
	Transform common.Transform
}

// Label returns the sign of the floor the player was on at the last tick.
func (s *Session) Label() (Label, bool) {
	room, ok := s.layout.Room(s.floor - 1)
	if !ok || room.Label == nil {
		return Label{}, false
	}
	return Label{Text: *room.Label, Transform: tower.LabelTransform(s.floor - 1)}, true
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Layout() *tower.Layout {
	return s.layout
}

func (s *Session) Floor() int {
	return s.floor
}

func (s *Session) Ticks() int {
	return s.ticks
}

func (s *Session) Ambient() float64 {
	return s.ambient
}

func (s *Session) Rooms() *pool.Pool[ecs.Entity] {
	return s.rooms
}

func (s *Session) Glimpses() []glimpse.Glimpse {
	return s.glimpses
}

// Enemy returns the last spawned enemy, if it is still tracked.
func (s *Session) Enemy() (ecs.Entity, bool) {
	return s.enemy, s.enemy.Valid()
}
