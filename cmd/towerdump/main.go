// Command towerdump prints a generated stairwell as yaml, or walks it
// headless with the autopilot and logs every floor effect.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/milk9111/descent/config"
	"github.com/milk9111/descent/rng"
	"github.com/milk9111/descent/scene"
	"github.com/milk9111/descent/session"
	"github.com/milk9111/descent/tower"
	"gopkg.in/yaml.v3"
)

type dumpRoom struct {
	Kind  tower.RoomType `yaml:"kind"`
	Label *string        `yaml:"label,omitempty"`
}

type dumpFloor struct {
	Index  int               `yaml:"index"`
	Action tower.FloorAction `yaml:"action"`
	Armed  bool              `yaml:"armed"`
	Room   *dumpRoom         `yaml:"room,omitempty"`
}

type dump struct {
	Seed   uint64                    `yaml:"seed"`
	Floors int                       `yaml:"floors"`
	Counts map[tower.FloorAction]int `yaml:"counts"`
	Layout []dumpFloor               `yaml:"layout"`
}

func main() {
	seed := flag.Uint64("seed", 0, "tower seed (0 picks one from the clock)")
	floors := flag.Int("floors", 0, "stairwell depth (0 uses the config value)")
	all := flag.Bool("all", false, "include idle Steps floors")
	simulate := flag.Int("simulate", 0, "walk the stairwell for this many ticks instead of dumping it")
	speed := flag.Float64("speed", session.DefaultWalkSpeed, "autopilot speed in units per tick")
	configFile := flag.String("config", "", "config file (default ./descent.yaml)")
	flag.Parse()

	v := config.New()
	if *seed != 0 {
		v.Set("seed", *seed)
	}
	if *floors != 0 {
		v.Set("floors", *floors)
	}
	cfg, err := config.Load(v, *configFile)
	if err != nil {
		log.Fatal(err)
	}
	level, _ := cfg.LogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := session.Options{
		Seed:          cfg.Seed,
		Floors:        cfg.Floors,
		ScatterArmed:  cfg.ScatterArmed,
		GlimpseChance: cfg.GlimpseChance,
		LightingStart: cfg.Lighting.Start,
		LightsOut:     cfg.Lighting.LightsOut,
	}

	if *simulate > 0 {
		if err := run(opts, *simulate, *speed, logger); err != nil {
			log.Fatal(err)
		}
		return
	}

	layout, err := tower.GenerateWith(cfg.Floors, rng.New(cfg.Seed), tower.Options{ScatterArmed: cfg.ScatterArmed})
	if err != nil {
		log.Fatal(err)
	}
	out, err := yaml.Marshal(build(cfg.Seed, layout, *all))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(out))
}

func build(seed uint64, l *tower.Layout, all bool) dump {
	d := dump{
		Seed:   seed,
		Floors: l.FloorCount,
		Counts: make(map[tower.FloorAction]int),
	}
	for i, f := range l.Floors {
		d.Counts[f.Action]++
		if f.Action == tower.Steps && !all {
			continue
		}
		df := dumpFloor{Index: i, Action: f.Action, Armed: f.Active()}
		if room, ok := l.Room(i); ok {
			df.Room = &dumpRoom{Kind: room.Kind, Label: room.Label}
		}
		d.Layout = append(d.Layout, df)
	}
	return d
}

// run walks the stairwell headless for ticks ticks.
func run(opts session.Options, ticks int, speed float64, log *slog.Logger) error {
	w, pos := session.NewWalker(1, speed)
	sc := scene.New(pos, nil, nil, log)
	s, err := session.New(opts, sc, log)
	if err != nil {
		return err
	}

	for range ticks {
		f := s.Tick(session.PlayerState{Position: pos, Velocity: w.Step(pos)})
		for _, e := range f.Effects {
			log.Info("effect", "tick", f.Tick, "floor", f.Floor, "action", f.Action, "effect", fmt.Sprintf("%T%+v", e, e))
		}
		pos = pos.Add(f.Velocity)
		sc.MovePlayer(pos, f.Velocity)
		for _, ev := range sc.Update() {
			log.Info("event", "tick", f.Tick, "type", ev.Type, "entity", ev.Entity)
		}
	}
	log.Info("walk finished", "floor", s.Floor(), "ticks", s.Ticks(), "ambient", s.Ambient(), "rooms", s.Rooms().Built())
	return nil
}
