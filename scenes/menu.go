package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/input"
	"github.com/automoto/glitchfire/render"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/automoto/glitchfire/systems"
	"github.com/automoto/glitchfire/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuContinue
	MainMenuExit
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	services     Services
	device       *input.Device
	input        components.InputData
	options      []MainMenuOption
	menuUI       *ui.MainMenuUI
	selected     int
	saved        *systems.Snapshot
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, services Services) *MenuScene {
	return &MenuScene{sceneChanger: sc, services: services}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
	ms.menuUI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	center := gamemath.Vec2{X: float64(cfg.C.Width) / 2, Y: float64(cfg.C.Height) / 2}
	ms.device = input.NewDevice(input.Default, render.NewCamera(center))

	// Continue only shows up when a saved run exists
	ms.options = []MainMenuOption{MainMenuStart}
	if ms.services.Store != nil {
		if snap, ok := ms.services.Store.Load(); ok {
			ms.saved = &snap
			ms.options = append(ms.options, MainMenuContinue)
		}
	}
	ms.options = append(ms.options, MainMenuExit)

	entries := make([]ui.MenuEntry, len(ms.options))
	for i, opt := range ms.options {
		opt := opt
		entries[i] = ui.MenuEntry{Label: menuLabel(opt), OnSelect: func() { ms.choose(opt) }}
	}
	savedLine := ""
	if ms.saved != nil {
		savedLine = fmt.Sprintf("saved run: round %d, score %d", ms.saved.CurrentRound, ms.saved.Score)
	}
	ms.menuUI = ui.NewMainMenuUI(entries, savedLine)
	ms.menuUI.SetCursor(ms.selected)

	ms.ecs.AddSystem(ms.updateMenu)
}

func (ms *MenuScene) updateMenu(_ *ecs.ECS) {
	state := ms.device.Poll()
	ms.input.Previous = ms.input.Current
	ms.input.Current = state.Pressed

	n := len(ms.options)
	if systems.GetAction(&ms.input, cfg.ActionMenuUp).JustPressed {
		ms.selected = (ms.selected - 1 + n) % n
	}
	if systems.GetAction(&ms.input, cfg.ActionMenuDown).JustPressed {
		ms.selected = (ms.selected + 1) % n
	}
	ms.menuUI.SetCursor(ms.selected)
	if systems.GetAction(&ms.input, cfg.ActionMenuSelect).JustPressed {
		ms.choose(ms.options[ms.selected])
	}
}

func (ms *MenuScene) choose(opt MainMenuOption) {
	switch opt {
	case MainMenuStart:
		if ms.services.Store != nil {
			ms.services.Store.Clear()
		}
		ms.sceneChanger.ChangeScene(NewArenaScene(ms.sceneChanger, ms.services, nil))
	case MainMenuContinue:
		ms.sceneChanger.ChangeScene(NewArenaScene(ms.sceneChanger, ms.services, ms.saved))
	case MainMenuExit:
		ms.sceneChanger.Quit()
	}
}

func menuLabel(opt MainMenuOption) string {
	switch opt {
	case MainMenuStart:
		return "NEW RUN"
	case MainMenuContinue:
		return "CONTINUE"
	case MainMenuExit:
		return "QUIT"
	}
	return ""
}
