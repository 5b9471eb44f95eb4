package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

var controls = []string{
	"Arrows / A D - move",
	"Space / W / Up - jump, twice for a double jump",
	"Z / J - send email",
	"X / K - make a call (limited)",
	"R / Enter - restart after the deal is decided",
	"Get past the Critical Stakeholder before 10 PM",
}

// TitleUI is the splash screen shown before the first match.
type TitleUI struct {
	UI *ebitenui.UI

	OnStart func()
}

func NewTitleUI(onStart func()) *TitleUI {
	t := &TitleUI{OnStart: onStart}
	t.buildUI(loadFaces())
	return t
}

func (t *TitleUI) buildUI(f faces) {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{15, 23, 42, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		column(10, 16),
		widget.ContainerOpts.WidgetOpts(centered()),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("DEAL CLOSER", &f.title, &widget.LabelColor{Idle: color.RGBA{251, 191, 36, 255}}),
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(centerRow())),
	))
	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("6 AM. One deal. One very long business day.", &f.normal, &widget.LabelColor{Idle: color.RGBA{148, 163, 184, 255}}),
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(centerRow())),
	))

	for _, line := range controls {
		content.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &f.small, &widget.LabelColor{Idle: color.RGBA{203, 213, 225, 255}}),
			widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(centerRow())),
		))
	}

	content.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 36), centerRow()),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("Start Closing Deals", &f.normal, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if t.OnStart != nil {
				t.OnStart()
			}
		}),
	))

	root.AddChild(content)
	t.UI = &ebitenui.UI{Container: root}
}

func (t *TitleUI) Update() {
	t.UI.Update()
}

func (t *TitleUI) Draw(screen *ebiten.Image) {
	t.UI.Draw(screen)
}
