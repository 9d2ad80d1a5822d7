package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuEntry is one clickable row of the main menu.
type MenuEntry struct {
	Label    string
	OnSelect func()
}

type MainMenuUI struct {
	UI *ebitenui.UI

	entries     []MenuEntry
	cursorLabel *widget.Label
	savedLabel  *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMainMenuUI builds a column of buttons, one per entry, plus an optional line
// describing a saved run.
func NewMainMenuUI(entries []MenuEntry, saved string) *MainMenuUI {
	mu := &MainMenuUI{entries: entries}
	mu.loadFonts()
	mu.buildUI(saved)
	return mu
}

func (mu *MainMenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	mu.titleFace = &text.GoTextFace{Source: fontSource, Size: 22}
	mu.normalFace = &text.GoTextFace{Source: fontSource, Size: 13}
	mu.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (mu *MainMenuUI) buildUI(saved string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{10, 8, 20, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("G L I T C H F I R E", &mu.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 0, 255, 255},
		}),
	))

	for _, entry := range mu.entries {
		onSelect := entry.OnSelect
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 28)),
			widget.ButtonOpts.Image(mu.buttonImage()),
			widget.ButtonOpts.Text(entry.Label, &mu.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{255, 255, 0, 255},
				Pressed: color.RGBA{200, 200, 120, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onSelect != nil {
					onSelect()
				}
			}),
		)
		contentContainer.AddChild(btn)
	}

	mu.cursorLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &mu.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 0, 255},
		}),
	)
	contentContainer.AddChild(mu.cursorLabel)

	mu.savedLabel = widget.NewLabel(
		widget.LabelOpts.Text(saved, &mu.smallFace, &widget.LabelColor{
			Idle: color.RGBA{120, 180, 255, 255},
		}),
	)
	contentContainer.AddChild(mu.savedLabel)

	rootContainer.AddChild(contentContainer)
	mu.UI = &ebitenui.UI{Container: rootContainer}
}

func (mu *MainMenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{50, 30, 70, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 40, 110, 255})
	pressed := image.NewNineSliceColor(color.RGBA{35, 20, 50, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// SetCursor shows which entry keyboard or gamepad navigation has selected.
func (mu *MainMenuUI) SetCursor(index int) {
	if mu.cursorLabel == nil || index < 0 || index >= len(mu.entries) {
		return
	}
	mu.cursorLabel.Label = fmt.Sprintf("> %s  (enter to select)", mu.entries[index].Label)
}

func (mu *MainMenuUI) Update() {
	mu.UI.Update()
}

func (mu *MainMenuUI) Draw(screen *ebiten.Image) {
	mu.UI.Draw(screen)
}
