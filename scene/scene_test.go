package scene

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/milk9111/descent/common"
	"github.com/milk9111/descent/ecs"
	"github.com/milk9111/descent/ecs/component"
	"github.com/milk9111/descent/floorevent"
	"github.com/milk9111/descent/physics"
	"github.com/milk9111/descent/tower"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVoice struct {
	playing bool
}

func (v *fakeVoice) Stop()           { v.playing = false }
func (v *fakeVoice) IsPlaying() bool { return v.playing }

type fakeSounds struct {
	played []floorevent.Clip
	voices []*fakeVoice
	fail   error
}

func (f *fakeSounds) Play(clip floorevent.Clip, _ floorevent.PlayMode) (component.Voice, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	v := &fakeVoice{playing: true}
	f.played = append(f.played, clip)
	f.voices = append(f.voices, v)
	return v, nil
}

func newScene(t *testing.T, sounds SoundPlayer, phys *physics.World) *Scene {
	t.Helper()
	return New(common.V3(0.5, -1, 0.5), phys, sounds, slog.New(slog.DiscardHandler))
}

func TestRoomsAreMovedInPlace(t *testing.T) {
	s := newScene(t, nil, nil)
	e := s.SpawnRoom(tower.Map3, tower.FloorTransform(2))
	s.SetTransform(e, tower.FloorTransform(7))

	rooms := s.Rooms()
	require.Len(t, rooms, 1)
	assert.Equal(t, RoomView{Entity: e, Kind: tower.Map3, Transform: tower.FloorTransform(7)}, rooms[0])
}

func TestTiedSoundStopsWithOwner(t *testing.T) {
	sounds := &fakeSounds{}
	s := newScene(t, sounds, nil)
	enemy := s.SpawnEnemy(common.V3(4, -1.5, 0.5), 0)

	clip := floorevent.Clip{Bank: floorevent.BankHorror, Index: 1}
	require.NoError(t, s.PlaySound(clip, floorevent.Tied, enemy))
	require.NoError(t, s.PlaySound(clip, floorevent.Once, enemy))
	require.Len(t, sounds.voices, 2)

	s.Despawn(enemy)
	assert.False(t, sounds.voices[0].playing, "tied voice stops")
	assert.True(t, sounds.voices[1].playing, "one-shot keeps playing")
	assert.Empty(t, s.Enemies())

	events := s.World().Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, ecs.EventDespawned, events[0].Type)

	// A dead owner falls back to a plain one-shot.
	require.NoError(t, s.PlaySound(clip, floorevent.Tied, enemy))
	assert.Len(t, sounds.voices, 3)
}

func TestPlaySoundErrors(t *testing.T) {
	boom := errors.New("boom")
	s := newScene(t, &fakeSounds{fail: boom}, nil)
	assert.ErrorIs(t, s.PlaySound(floorevent.Clip{Bank: "x"}, floorevent.Once, 0), boom)

	silent := newScene(t, nil, nil)
	assert.NoError(t, silent.PlaySound(floorevent.Clip{Bank: "x"}, floorevent.Once, 0))
}

func TestObstacleIsSolid(t *testing.T) {
	start := common.V3(0, -1, 0.5)
	phys := physics.NewWorld(start, 1)
	s := newScene(t, nil, phys)

	s.SpawnObstacle(1, common.V3(2, -1, 0.5), common.Deg2Rad(-90))
	s.SpawnObstacle(3, common.V3(2, -5, 0.5), 0)
	assert.Len(t, s.Obstacles(1), 1)
	assert.Len(t, s.Obstacles(3), 1)
	assert.Equal(t, 1, phys.Obstacles(1))

	pos := start
	for i := 0; i < 60; i++ {
		pos = phys.Step(pos, common.V3(0.05, 0, 0))
	}
	assert.Less(t, pos.X, 1.5)
}

func TestAmbientAndShake(t *testing.T) {
	s := newScene(t, nil, nil)
	s.SetAmbientBrightness(80)
	assert.Equal(t, 80.0, s.AmbientBrightness())

	s.ShakeCamera(common.V3(0.01, 0, 0))
	s.ShakeCamera(common.V3(0.01, 0.02, 0))
	s.Update()
	assert.InDelta(t, 0.02, s.CameraShake().X, 1e-12)
	assert.InDelta(t, 0.02, s.CameraShake().Y, 1e-12)
}

func TestEnemiesChasePlayer(t *testing.T) {
	s := newScene(t, nil, nil)
	s.MovePlayer(common.V3(0, -1.5, 0.5), common.Vec3{})
	e := s.SpawnEnemy(common.V3(4, -1.5, 0.5), 0.5)

	var reached []ecs.Event
	for i := 0; i < 10; i++ {
		reached = append(reached, s.Update()...)
	}
	require.Len(t, reached, 1)
	assert.Equal(t, ecs.EventEnemyReached, reached[0].Type)
	assert.Equal(t, e, reached[0].Entity)
	assert.InDelta(t, 1.5, s.Enemies()[0].X, 1e-9)
}

func TestGlimpseBillboards(t *testing.T) {
	s := newScene(t, nil, nil)
	g := s.SpawnGlimpse(0, common.V3(3, -7, 0.3))
	assert.Len(t, s.Glimpses(), 1)
	s.Despawn(g)
	assert.Empty(t, s.Glimpses())
	assert.Equal(t, common.V3(0.5, -1, 0.5), s.Player().Translation)
}
