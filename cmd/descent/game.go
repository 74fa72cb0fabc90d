package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/descent/common"
	"github.com/milk9111/descent/config"
	"github.com/milk9111/descent/ecs"
	"github.com/milk9111/descent/physics"
	"github.com/milk9111/descent/prefabs"
	"github.com/milk9111/descent/scene"
	"github.com/milk9111/descent/session"
	"github.com/milk9111/descent/sound"
	"github.com/milk9111/descent/tower"
)

const (
	walkSpeed  = 0.05
	climbSpeed = 0.04
	turnSpeed  = 0.04
	// caughtFrames is how long the screen stays red after an enemy reaches
	// the player.
	caughtFrames = 45
)

type Game struct {
	cfg *config.Config
	log *slog.Logger

	input   *Input
	physics *physics.World
	scene   *scene.Scene
	session *session.Session
	mixer   *sound.Mixer
	rooms   *prefabs.RoomsSpec
	watcher *prefabs.Watcher
	sounds  scene.SoundPlayer

	pause   *ebitenui.UI
	paused  bool
	restart bool
	quit    bool

	auto bool
	// walker drives the player when the autopilot is on.
	walker *session.Walker
	pos    common.Vec3
	vel    common.Vec3
	yaw    float64

	last   session.Frame
	caught int
	frames int
	width  int
	height int
}

func NewGame(cfg *config.Config, auto bool, log *slog.Logger) (*Game, error) {
	rooms, err := prefabs.LoadRoomsSpec()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:    cfg,
		log:    log,
		input:  NewInput(),
		auto:   auto,
		rooms:  rooms,
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}

	if cfg.Audio.Enabled {
		clips, err := prefabs.LoadClipsSpec()
		if err != nil {
			return nil, err
		}
		g.mixer, err = sound.NewMixer(audio.NewContext(sound.SampleRate), sound.NewCatalog(clips), cfg.Audio.Volume, log)
		if err != nil {
			return nil, err
		}
		g.sounds = g.mixer
	}

	if err := g.start(); err != nil {
		return nil, err
	}
	g.pause = NewPauseUI(g)

	if cfg.Prefabs.Watch {
		w, err := prefabs.NewWatcher(cfg.Prefabs.Dir)
		if err != nil {
			log.Warn("prefab watch disabled", "dir", cfg.Prefabs.Dir, "err", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// start builds a fresh descent of the configured stairwell.
func (g *Game) start() error {
	g.walker = nil
	g.pos = tower.FrameOf(1).Start()
	if g.auto {
		g.walker, g.pos = session.NewWalker(1, session.DefaultWalkSpeed)
	}
	g.vel = common.Vec3{}
	g.yaw = math.Pi / 2
	g.caught = 0
	g.last = session.Frame{Floor: 1}

	g.physics = physics.NewWorld(g.pos, 1)
	g.scene = scene.New(g.pos, g.physics, g.sounds, g.log)
	sess, err := session.New(session.Options{
		Seed:          g.cfg.Seed,
		Floors:        g.cfg.Floors,
		ScatterArmed:  g.cfg.ScatterArmed,
		GlimpseChance: g.cfg.GlimpseChance,
		LightingStart: g.cfg.Lighting.Start,
		LightsOut:     g.cfg.Lighting.LightsOut,
	}, g.scene, g.log)
	if err != nil {
		return err
	}
	g.session = sess
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.mixer != nil {
		g.mixer.StopAll()
	}
}

func (g *Game) Update() error {
	g.frames++
	g.reload()

	g.input.Update()
	if g.input.Quit || g.quit {
		return ebiten.Termination
	}
	if g.input.Pause {
		g.paused = !g.paused
	}
	if g.paused {
		g.pause.Update()
		if g.restart {
			g.restart = false
			g.paused = false
			if g.mixer != nil {
				g.mixer.StopAll()
			}
			return g.start()
		}
		return nil
	}

	if g.walker != nil {
		g.vel = g.walker.Step(g.pos)
	} else {
		g.yaw += g.input.Turn * turnSpeed
		fwd := common.V3(math.Sin(g.yaw), 0, math.Cos(g.yaw))
		right := common.V3(math.Cos(g.yaw), 0, -math.Sin(g.yaw))
		g.vel = fwd.Scale(g.input.Forward * walkSpeed).Add(right.Scale(g.input.Strafe * walkSpeed))
		g.vel.Y = -g.input.Climb * climbSpeed
	}

	frame := g.session.Tick(session.PlayerState{Position: g.pos, Velocity: g.vel})
	g.last = frame
	g.vel = frame.Velocity

	if g.walker != nil {
		g.pos = g.pos.Add(g.vel)
	} else {
		g.physics.SetFloor(frame.Floor)
		y := g.pos.Y + g.vel.Y
		g.pos = g.physics.Step(g.pos, g.vel)
		g.pos.Y = clampHeight(y, g.session.Layout().FloorCount)
	}

	g.scene.MovePlayer(g.pos, g.vel)
	for _, ev := range ecs.Filter(g.scene.Update(), ecs.EventEnemyReached) {
		g.log.Info("caught", "floor", frame.Floor, "tick", frame.Tick, "enemy", ev.Entity)
		g.caught = caughtFrames
	}
	if g.caught > 0 {
		g.caught--
	}
	return nil
}

// clampHeight keeps the player between the first and the last floor.
func clampHeight(y float64, floors int) float64 {
	top := tower.FrameOf(1).Y
	bottom := tower.FrameOf(floors - 1).Y
	return math.Max(bottom, math.Min(top, y))
}

func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadSpec(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("prefab watch", "err", err)
		default:
			return
		}
	}
}

func (g *Game) reloadSpec(name string) {
	switch name {
	case prefabs.ClipsFile:
		if g.mixer == nil {
			return
		}
		spec, err := prefabs.LoadClipsSpec()
		if err != nil {
			g.log.Warn("prefab reload failed", "file", name, "err", err)
			return
		}
		if err := g.mixer.Reload(sound.NewCatalog(spec)); err != nil {
			g.log.Warn("prefab reload failed", "file", name, "err", err)
			return
		}
	case prefabs.RoomsFile:
		spec, err := prefabs.LoadRoomsSpec()
		if err != nil {
			g.log.Warn("prefab reload failed", "file", name, "err", err)
			return
		}
		g.rooms = spec
	default:
		return
	}
	g.log.Info("prefab reloaded", "file", name)
}

func (g *Game) status() string {
	s := fmt.Sprintf("seed %d  floor %d  %s  tick %d  ambient %.0f  FPS %.1f",
		g.cfg.Seed, g.last.Floor, g.last.Action, g.last.Tick, g.session.Ambient(), ebiten.ActualFPS())
	if l, ok := g.session.Label(); ok {
		s += fmt.Sprintf("\nsign: %q", l.Text)
	}
	if g.walker != nil {
		s += "\nautopilot"
	}
	return s
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.width), float64(g.height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
