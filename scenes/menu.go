package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene is the title splash. Enter, the start button or a click on
// "Start Closing Deals" begins the match.
type MenuScene struct {
	sceneChanger SceneChanger
	newGame      func() (interface{}, error)
	titleUI      *ui.TitleUI
	once         sync.Once
	shouldStart  bool
}

// NewMenuScene creates the title scene. newGame builds the scene to switch to.
func NewMenuScene(sc SceneChanger, newGame func() (interface{}, error)) *MenuScene {
	return &MenuScene{sceneChanger: sc, newGame: newGame}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.titleUI.Update()

	for _, key := range cfg.Input.Bindings[cfg.ActionRestart].Keys {
		if inpututil.IsKeyJustPressed(key) {
			ms.shouldStart = true
		}
	}
	if !ms.shouldStart {
		return
	}
	ms.shouldStart = false
	next, err := ms.newGame()
	if err != nil {
		panic("failed to start match: " + err.Error())
	}
	ms.sceneChanger.ChangeScene(next)
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.titleUI == nil {
		return
	}
	ms.titleUI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.titleUI = ui.NewTitleUI(func() { ms.shouldStart = true })
}
