package systems

import (
	"errors"
	"testing"

	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/leveldata"
	"github.com/automoto/deal-closer/systems/factory"
	"github.com/automoto/deal-closer/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const testDT = 1.0 / 60.0

// recordingBackend keeps every sound it is asked to play.
type recordingBackend struct {
	sounds []cfg.SoundID
	music  int
	stops  int
	err    error
	panics bool
	onPlay func(id cfg.SoundID)
}

func (b *recordingBackend) PlaySound(id cfg.SoundID) error {
	b.sounds = append(b.sounds, id)
	if b.onPlay != nil {
		b.onPlay(id)
	}
	if b.panics {
		panic("device lost")
	}
	return b.err
}

func (b *recordingBackend) PlayMusic() error {
	b.music++
	return b.err
}

func (b *recordingBackend) StopMusic() { b.stops++ }

func (b *recordingBackend) count(id cfg.SoundID) int {
	n := 0
	for _, s := range b.sounds {
		if s == id {
			n++
		}
	}
	return n
}

// emptyLayout is the office level without anything placed in it.
func emptyLayout() *leveldata.Layout {
	return &leveldata.Layout{
		Name:        "test",
		Width:       4800,
		Height:      600,
		GroundY:     520,
		BossGateX:   4200,
		SpawnStopX:  4200,
		PlayerSpawn: leveldata.Point{X: 100, Y: 470},
	}
}

type testWorld struct {
	t     *testing.T
	ecs   *ecs.ECS
	held  [cfg.ActionCount]bool
	audio *recordingBackend
}

// gameplay mirrors the scene's system order between input and audio.
var gameplay = []ecs.System{
	UpdatePlayer,
	UpdateEnemies,
	UpdateSchedule,
	UpdateSpawner,
	UpdateCollectibles,
	UpdateBackdrop,
	UpdateCamera,
	UpdateProjectiles,
	UpdateEnemyProjectiles,
	UpdateCollisions,
	UpdateMatch,
}

func newTestWorld(t *testing.T, layout *leveldata.Layout) *testWorld {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	backend := &recordingBackend{}

	factory.CreateSpace(e, int(layout.Width), int(layout.Height), factory.SpaceCellSize, factory.SpaceCellSize)
	factory.CreateMatch(e, 1)
	factory.CreateInput(e)
	factory.CreateAudio(e, backend)
	factory.CreateCamera(e, float64(cfg.C.Width), float64(cfg.C.Height))
	_, err := factory.CreateLevel(e, layout)
	require.NoError(t, err)
	factory.CreatePlayer(e, layout.PlayerSpawn.X, layout.PlayerSpawn.Y)

	return &testWorld{t: t, ecs: e, audio: backend}
}

func (w *testWorld) tick() {
	SetDelta(w.ecs, testDT, 60)
	UpdateClock(w.ecs)
	getOrCreateInput(w.ecs).Advance(w.held)
	for _, system := range gameplay {
		WithPlaying(system)(w.ecs)
	}
	UpdateAudio(w.ecs)
}

func (w *testWorld) ticks(n int) {
	for i := 0; i < n; i++ {
		w.tick()
	}
}

func (w *testWorld) press(ids ...cfg.ActionID) {
	for _, id := range ids {
		w.held[id] = true
	}
}

func (w *testWorld) release(ids ...cfg.ActionID) {
	for _, id := range ids {
		w.held[id] = false
	}
}

func (w *testWorld) player() *donburi.Entry {
	entry, ok := tags.Player.First(w.ecs.World)
	require.True(w.t, ok)
	return entry
}

func (w *testWorld) playerObj() *components.ObjectData {
	return components.Object.Get(w.player())
}

func (w *testWorld) camera() *components.CameraData {
	entry, ok := components.Camera.First(w.ecs.World)
	require.True(w.t, ok)
	return components.Camera.Get(entry)
}

func (w *testWorld) level() *components.LevelData {
	entry, ok := components.Level.First(w.ecs.World)
	require.True(w.t, ok)
	return components.Level.Get(entry)
}

func (w *testWorld) match() *components.MatchData {
	entry, ok := components.Match.First(w.ecs.World)
	require.True(w.t, ok)
	return components.Match.Get(entry)
}

// movePlayer teleports the player body.
func (w *testWorld) movePlayer(x, y float64) {
	obj := w.playerObj()
	obj.X, obj.Y = x, y
	obj.Update()
}

func count(e *ecs.ECS, tag donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(e.World)
}

var errDeviceLost = errors.New("device lost")
