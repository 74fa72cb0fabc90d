package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/descent/tower"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const (
	ClipsFile = "clips.yaml"
	RoomsFile = "rooms.yaml"
)

var ErrUnknownRoom = errors.New("prefabs: unknown room kind")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

// ClipsSpec maps a sound bank to its variants. Effects address a clip by
// bank name and index.
type ClipsSpec struct {
	Banks map[string][]AudioSpec `yaml:"banks"`
}

func LoadClipsSpec() (*ClipsSpec, error) {
	spec, err := LoadSpec[ClipsSpec](ClipsFile)
	if err != nil {
		return nil, err
	}
	for bank, clips := range spec.Banks {
		for i, c := range clips {
			if c.File == "" {
				return nil, fmt.Errorf("prefabs: %s: %s[%d] has no file", ClipsFile, bank, i)
			}
			if c.Volume == 0 {
				spec.Banks[bank][i].Volume = 1
			}
		}
	}
	return &spec, nil
}

// RoomSpec describes how a room kind is built: the scene asset the renderer
// instantiates and the color it uses on the debug map.
type RoomSpec struct {
	Kind  tower.RoomType `yaml:"kind"`
	Scene string         `yaml:"scene"`
	Color *YAMLColor     `yaml:"color"`
}

type RoomsSpec struct {
	Rooms []RoomSpec `yaml:"rooms"`
}

func LoadRoomsSpec() (*RoomsSpec, error) {
	spec, err := LoadSpec[RoomsSpec](RoomsFile)
	if err != nil {
		return nil, err
	}
	for _, kind := range tower.RoomTypes {
		if _, err := spec.Lookup(kind); err != nil {
			return nil, fmt.Errorf("prefabs: %s: %w", RoomsFile, err)
		}
	}
	return &spec, nil
}

func (s *RoomsSpec) Lookup(kind tower.RoomType) (RoomSpec, error) {
	for _, r := range s.Rooms {
		if r.Kind == kind {
			return r, nil
		}
	}
	return RoomSpec{}, fmt.Errorf("%w: %s", ErrUnknownRoom, kind)
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
