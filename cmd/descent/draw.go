package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/descent/common"
	"github.com/milk9111/descent/physics"
	"github.com/milk9111/descent/tower"
	"golang.org/x/image/colornames"
)

const (
	// corridorW and corridorD are the floor footprint in world units along X
	// and Z.
	corridorW = 8.0
	corridorD = 7.0
	margin    = 40.0
	markerR   = 4
)

// view maps the XZ plane of the current floor onto the screen.
type view struct {
	scale float64
	ox    float64
	oy    float64
}

func newView(w, h int, shake common.Vec3) view {
	scale := math.Min((float64(w)-2*margin)/corridorW, (float64(h)-2*margin)/corridorD)
	v := view{
		scale: scale,
		ox:    (float64(w) - corridorW*scale) / 2,
		oy:    (float64(h) - corridorD*scale) / 2,
	}
	v.ox += shake.Y * scale * 4
	v.oy += shake.X * scale * 4
	return v
}

func (v view) point(p common.Vec3) (float32, float32) {
	return float32(v.ox + p.X*v.scale), float32(v.oy + p.Z*v.scale)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	floor := g.last.Floor
	v := newView(g.width, g.height, g.scene.CameraShake())

	bg := color.Color(colornames.Dimgray)
	if room, ok := g.session.Layout().Room(floor); ok {
		if spec, err := g.rooms.Lookup(room.Kind); err == nil && spec.Color != nil {
			bg = spec.Color
		}
	}
	x, y := v.point(common.Vec3{})
	vector.DrawFilledRect(screen, x, y, float32(corridorW*v.scale), float32(corridorD*v.scale), bg, false)
	vector.StrokeRect(screen, x, y, float32(corridorW*v.scale), float32(corridorD*v.scale), 2, colornames.Lightgray, false)

	f := tower.FrameOf(floor)
	for _, p := range []common.Vec3{f.Start(), f.Center(), f.End()} {
		px, py := v.point(p)
		vector.StrokeCircle(screen, px, py, markerR, 1, colornames.Gray, false)
	}

	half := physics.ObstacleSize / 2
	for _, p := range g.scene.Obstacles(floor) {
		px, py := v.point(p.Sub(common.V3(half, 0, half)))
		size := float32(physics.ObstacleSize * v.scale)
		vector.DrawFilledRect(screen, px, py, size, size, colornames.Saddlebrown, false)
	}
	for _, p := range g.scene.Glimpses() {
		if tower.FloorIndexAt(p.Y) != floor {
			continue
		}
		px, py := v.point(p)
		vector.DrawFilledCircle(screen, px, py, float32(0.2*v.scale), colornames.Ghostwhite, false)
	}
	for _, p := range g.scene.Enemies() {
		if tower.FloorIndexAt(p.Y) != floor {
			continue
		}
		px, py := v.point(p)
		vector.DrawFilledCircle(screen, px, py, float32(0.3*v.scale), colornames.Darkred, false)
	}

	px, py := v.point(g.pos)
	vector.DrawFilledCircle(screen, px, py, float32(0.25*v.scale), colornames.Lightskyblue, false)
	look := g.pos.Add(common.V3(math.Sin(g.yaw), 0, math.Cos(g.yaw)).Scale(0.6))
	lx, ly := v.point(look)
	vector.StrokeLine(screen, px, py, lx, ly, 2, colornames.Lightskyblue, false)

	if a := darkness(g.session.Ambient()); a > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), color.RGBA{A: a}, false)
	}
	if g.caught > 0 {
		a := uint8(120 * g.caught / caughtFrames)
		vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), color.RGBA{R: a, A: a}, false)
	}

	ebitenutil.DebugPrint(screen, g.status())
	if g.paused {
		g.pause.Draw(screen)
	}
}

// darkness returns the overlay alpha for an ambient brightness in [0, 100].
func darkness(ambient float64) uint8 {
	a := 1 - ambient/100
	a = math.Max(0, math.Min(0.9, a))
	return uint8(a * 255)
}
