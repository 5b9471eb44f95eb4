package scenes

import (
	"errors"
	"fmt"

	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/leveldata"
	"github.com/automoto/deal-closer/systems"
	"github.com/automoto/deal-closer/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var errNoLayout = errors.New("world: no level layout")

// WorldOptions configures a simulation world.
type WorldOptions struct {
	Layout *leveldata.Layout
	// Seed for the simulation RNG, 0 picks one from the clock
	Seed int64
	// Backend plays sounds, nil runs silent
	Backend components.SoundBackend
	// Input replaces ebiten polling, for headless runs and tests
	Input systems.InputSource
}

// World owns one match: the ECS, its systems in tick order, and its renderers.
type World struct {
	ecs  *ecs.ECS
	opts WorldOptions
}

// NewWorld builds a world ready to Start.
func NewWorld(opts WorldOptions) (*World, error) {
	if opts.Layout == nil {
		return nil, errNoLayout
	}
	w := &World{opts: opts}
	if err := w.build(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *World) build() error {
	e := ecs.NewECS(donburi.NewWorld())

	input := systems.UpdateInput
	if w.opts.Input != nil {
		input = systems.NewUpdateInput(w.opts.Input)
	}

	// Clock and input run even when the match is over so restart works
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(input)

	e.AddSystem(systems.WithPlaying(systems.UpdatePlayer))
	e.AddSystem(systems.WithPlaying(systems.UpdateEnemies))
	e.AddSystem(systems.WithPlaying(systems.UpdateSchedule))
	e.AddSystem(systems.WithPlaying(systems.UpdateSpawner))
	e.AddSystem(systems.WithPlaying(systems.UpdateCollectibles))
	e.AddSystem(systems.WithPlaying(systems.UpdateBackdrop))
	e.AddSystem(systems.WithPlaying(systems.UpdateCamera))
	e.AddSystem(systems.WithPlaying(systems.UpdateProjectiles))
	e.AddSystem(systems.WithPlaying(systems.UpdateEnemyProjectiles))
	e.AddSystem(systems.WithPlaying(systems.UpdateCollisions))
	e.AddSystem(systems.WithPlaying(systems.UpdateMatch))

	// Audio drains last so the game-over sound of this tick plays
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawEnemies)
	e.AddRenderer(cfg.Default, systems.DrawMarkers)
	e.AddRenderer(cfg.Default, systems.DrawProjectiles)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.HUD, systems.DrawHUD)

	layout := w.opts.Layout
	factory.CreateSpace(e,
		int(layout.Width), int(layout.Height),
		factory.SpaceCellSize, factory.SpaceCellSize,
	)
	factory.CreateMatch(e, w.opts.Seed)
	factory.CreateInput(e)
	factory.CreateAudio(e, w.opts.Backend)
	factory.CreateCamera(e, float64(cfg.C.Width), float64(cfg.C.Height))
	if _, err := factory.CreateLevel(e, layout); err != nil {
		return fmt.Errorf("build level: %w", err)
	}
	factory.CreatePlayer(e, layout.PlayerSpawn.X, layout.PlayerSpawn.Y)

	w.ecs = e
	return nil
}

// Start begins the match and its ambient music.
func (w *World) Start() {
	systems.PlayBackgroundMusic(w.ecs)
	log.Info("match started", "level", w.opts.Layout.Name)
}

// Step simulates one tick of dt seconds. The clock system caps dt.
func (w *World) Step(dt float64) {
	fps := 0.0
	if dt > 0 {
		fps = 1 / dt
	}
	systems.SetDelta(w.ecs, dt, fps)
	w.ecs.Update()
}

// Restart throws the match away and builds a fresh one from the same options.
// Pending burst shots die with the old world and its music loop is stopped
// before the new one starts.
func (w *World) Restart() error {
	systems.ClearSchedule(w.ecs)
	systems.StopBackgroundMusic(w.ecs)
	if err := w.build(); err != nil {
		return err
	}
	w.Start()
	return nil
}

func (w *World) Snapshot() systems.Snapshot {
	return systems.TakeSnapshot(w.ecs)
}

// ECS exposes the world for inspection.
func (w *World) ECS() *ecs.ECS {
	return w.ecs
}

func (w *World) Draw(screen *ebiten.Image) {
	w.ecs.Draw(screen)
}
