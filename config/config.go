// Package config loads runtime settings from defaults, an optional
// descent.yaml and DESCENT_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/milk9111/descent/floorevent"
	"github.com/milk9111/descent/glimpse"
	"github.com/milk9111/descent/tower"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "DESCENT"
	FileName  = "descent"
)

type Window struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type Audio struct {
	Enabled bool    `mapstructure:"enabled"`
	Dir     string  `mapstructure:"dir"`
	Volume  float64 `mapstructure:"volume"`
}

type Lighting struct {
	Start     float64 `mapstructure:"start"`
	LightsOut float64 `mapstructure:"lights_out"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

type Prefabs struct {
	Dir   string `mapstructure:"dir"`
	Watch bool   `mapstructure:"watch"`
}

type Config struct {
	// Seed 0 picks a seed from the clock.
	Seed          uint64   `mapstructure:"seed"`
	Floors        int      `mapstructure:"floors"`
	TPS           int      `mapstructure:"tps"`
	ScatterArmed  bool     `mapstructure:"scatter_armed"`
	GlimpseChance int      `mapstructure:"glimpse_chance"`
	Window        Window   `mapstructure:"window"`
	Audio         Audio    `mapstructure:"audio"`
	Lighting      Lighting `mapstructure:"lighting"`
	Log           Log      `mapstructure:"log"`
	Prefabs       Prefabs  `mapstructure:"prefabs"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seed", 0)
	v.SetDefault("floors", tower.DefaultFloorCount)
	v.SetDefault("tps", 60)
	v.SetDefault("scatter_armed", false)
	v.SetDefault("glimpse_chance", glimpse.DefaultChance)
	v.SetDefault("window.width", 960)
	v.SetDefault("window.height", 720)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.dir", "assets")
	v.SetDefault("audio.volume", 1.0)
	v.SetDefault("lighting.start", 80.0)
	v.SetDefault("lighting.lights_out", floorevent.DefaultLightsOut)
	v.SetDefault("log.level", "info")
	v.SetDefault("prefabs.dir", "prefabs")
	v.SetDefault("prefabs.watch", false)
}

// New returns a viper instance with defaults and environment binding set up.
// Callers may Set flag values on it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads file, or descent.yaml from the working directory when file is
// empty. A missing default file is not an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Floors < tower.MinFloorCount {
		return fmt.Errorf("config: floors %d: %w", c.Floors, tower.ErrTooFewFloors)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("config: tps must be positive, got %d", c.TPS)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio.volume %v outside [0, 1]", c.Audio.Volume)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("config: log.level: %w", err)
	}
	return level, nil
}
