package scenes

import (
	"image/color"

	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/engine"
	"github.com/automoto/deal-closer/systems"
	"github.com/automoto/deal-closer/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlatformerScene drives a World from the ebiten loop and shows the game-over
// overlay once the match is decided.
type PlatformerScene struct {
	world      *World
	clock      *engine.Clock
	gameOverUI *ui.GameOverUI
	showing    bool
	restart    bool
}

// NewPlatformerScene builds and starts a match.
func NewPlatformerScene(opts WorldOptions) (*PlatformerScene, error) {
	world, err := NewWorld(opts)
	if err != nil {
		return nil, err
	}
	ps := &PlatformerScene{
		world: world,
		clock: engine.NewClock(cfg.C.MaxDelta),
	}
	ps.gameOverUI = ui.NewGameOverUI(func() { ps.restart = true })
	world.Start()
	return ps, nil
}

func (ps *PlatformerScene) Update() {
	ps.world.Step(ps.clock.Tick())

	snap := ps.world.Snapshot()
	if snap.State != cfg.MatchStateGameOver {
		return
	}
	if !ps.showing {
		ps.showing = true
		ps.gameOverUI.Show(snap)
	}
	ps.gameOverUI.Update()

	if systems.GetAction(ps.world.ECS(), cfg.ActionRestart).JustPressed {
		ps.restart = true
	}
	if ps.restart {
		ps.doRestart()
	}
}

func (ps *PlatformerScene) doRestart() {
	ps.restart = false
	ps.showing = false
	if err := ps.world.Restart(); err != nil {
		log.Error("restart failed", "err", err)
		return
	}
	ps.clock.Reset()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	ps.world.Draw(screen)
	if ps.showing {
		ps.gameOverUI.Draw(screen)
	}
}
