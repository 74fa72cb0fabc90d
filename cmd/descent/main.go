package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/descent/assets"
	"github.com/milk9111/descent/config"
	"github.com/milk9111/descent/prefabs"
)

func main() {
	seed := flag.Uint64("seed", 0, "tower seed (0 picks one from the clock)")
	floors := flag.Int("floors", 0, "stairwell depth (0 uses the config value)")
	auto := flag.Bool("auto", false, "let the autopilot walk down the stairwell")
	configFile := flag.String("config", "", "config file (default ./descent.yaml)")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	v := config.New()
	if *seed != 0 {
		v.Set("seed", *seed)
	}
	if *floors != 0 {
		v.Set("floors", *floors)
	}
	if *debug {
		v.Set("log.level", "debug")
	}
	cfg, err := config.Load(v, *configFile)
	if err != nil {
		log.Fatal(err)
	}

	level, _ := cfg.LogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	assets.Dir = cfg.Audio.Dir
	prefabs.Dir = cfg.Prefabs.Dir

	game, err := NewGame(cfg, *auto, logger)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("descent")
	ebiten.SetTPS(cfg.TPS)

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
