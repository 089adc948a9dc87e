package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ChromeUI is the persistent header bar whose visibility the intro gates.
// It uses colored nine-slices and the built-in basic font so no theme
// fonts need to be loaded.
type ChromeUI struct {
	ui      *ebitenui.UI
	visible bool
}

func NewChromeUI(patternName string) *ChromeUI {
	barImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x1c, G: 0x1c, B: 0x24, A: 230})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	title := widget.NewText(
		widget.TextOpts.Text("introgate demo", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	label := widget.NewText(
		widget.TextOpts.Text(patternName, &face, color.NRGBA{R: 0x9a, G: 0x9a, B: 0xa8, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(barImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(24),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 24, Right: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth, 44),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
		),
	)
	bar.AddChild(title)
	bar.AddChild(label)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(bar)

	return &ChromeUI{ui: &ebitenui.UI{Container: root}}
}

// SetVisible is the chrome-visibility signal the lock bridge drives.
func (c *ChromeUI) SetVisible(visible bool) {
	c.visible = visible
}

func (c *ChromeUI) Update() {
	if !c.visible {
		return
	}
	c.ui.Update()
}

func (c *ChromeUI) Draw(screen *ebiten.Image) {
	if !c.visible {
		return
	}
	c.ui.Draw(screen)
}
