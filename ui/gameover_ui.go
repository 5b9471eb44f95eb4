package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/deal-closer/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	victoryTitle   = "Deal Closed!"
	victoryMessage = "Congratulations! You've successfully navigated the corporate maze and closed the deal. Your sales skills are unmatched!"
	defeatTitle    = "Deal Lost"
	defeatMessage  = "The corporate world got the better of you this time. Don't give up - every great salesperson faces rejection!"
)

// GameOverTexts returns the overlay title and message for a result.
func GameOverTexts(victory bool) (string, string) {
	if victory {
		return victoryTitle, victoryMessage
	}
	return defeatTitle, defeatMessage
}

// GameOverUI is the end-of-match overlay with the final score and a restart
// button.
type GameOverUI struct {
	UI *ebitenui.UI

	OnRestart func()

	titleLabel   *widget.Label
	messageLabel *widget.Label
	scoreLabel   *widget.Label
}

func NewGameOverUI(onRestart func()) *GameOverUI {
	g := &GameOverUI{OnRestart: onRestart}
	g.buildUI(loadFaces())
	return g
}

func (g *GameOverUI) buildUI(f faces) {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.NRGBA{0, 0, 0, 200})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 41, 59, 255})),
		column(12, 24),
		widget.ContainerOpts.WidgetOpts(centered(), widget.WidgetOpts.MinSize(480, 0)),
	)

	g.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &f.title, &widget.LabelColor{Idle: color.RGBA{34, 197, 94, 255}}),
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(centerRow())),
	)
	panel.AddChild(g.titleLabel)

	g.messageLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &f.small, &widget.LabelColor{Idle: color.RGBA{148, 163, 184, 255}}),
		widget.LabelOpts.TextOpts(
			widget.TextOpts.MaxWidth(430),
			widget.TextOpts.WidgetOpts(centerRow()),
		),
	)
	panel.AddChild(g.messageLabel)

	g.scoreLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &f.normal, &widget.LabelColor{Idle: color.RGBA{251, 191, 36, 255}}),
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(centerRow())),
	)
	panel.AddChild(g.scoreLabel)

	restart := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 32), centerRow()),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("Try Again", &f.normal, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if g.OnRestart != nil {
				g.OnRestart()
			}
		}),
	)
	panel.AddChild(restart)

	root.AddChild(panel)
	g.UI = &ebitenui.UI{Container: root}
}

// Show fills the overlay from the final snapshot.
func (g *GameOverUI) Show(snap systems.Snapshot) {
	title, message := GameOverTexts(snap.Victory)
	g.titleLabel.Label = title
	g.messageLabel.Label = message
	g.scoreLabel.Label = fmt.Sprintf("Final Score: %s", systems.FormatScore(snap.Score))
}

func (g *GameOverUI) Update() {
	g.UI.Update()
}

func (g *GameOverUI) Draw(screen *ebiten.Image) {
	g.UI.Draw(screen)
}
