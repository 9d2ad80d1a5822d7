package scenes

import (
	"image/color"
	"log"
	"math/rand"
	"sync"
	"time"

	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/input"
	"github.com/automoto/glitchfire/render"
	"github.com/automoto/glitchfire/shared/messages"
	"github.com/automoto/glitchfire/sim"
	"github.com/automoto/glitchfire/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs a simulation and draws it.
type ArenaScene struct {
	ecs          *ecs.ECS
	sim          *sim.Sim
	presenter    *render.Presenter
	sceneChanger SceneChanger
	services     Services
	snapshot     *systems.Snapshot
	once         sync.Once
}

// NewArenaScene starts a fresh run, or resumes snapshot when it is not nil.
func NewArenaScene(sc SceneChanger, services Services, snapshot *systems.Snapshot) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, services: services, snapshot: snapshot}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	if as.sim.QuitRequested() {
		as.sceneChanger.Quit()
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	as.presenter = render.NewPresenter(cfg.Debug.ShowRadii)

	seed := as.services.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Starting arena with seed %d", seed)

	as.sim = sim.New(sim.Options{
		Input:      input.NewDevice(input.Default, as.presenter.Camera),
		Rand:       rand.New(rand.NewSource(seed)),
		StartRound: cfg.Debug.StartRound,
		Snapshot:   as.snapshot,
		Hook: func(w donburi.World) {
			as.presenter.Subscribe(w)
			messages.RoundCompletedEvent.Subscribe(w, as.onRoundCompleted)
			messages.GameOverEvent.Subscribe(w, as.onGameOver)
		},
	})

	as.ecs = ecs.NewECS(as.sim.World())
	as.ecs.AddSystem(func(*ecs.ECS) {
		as.sim.Tick()
		as.presenter.Update(1 / float32(cfg.C.TickRate))
	})
	as.ecs.AddRenderer(LayerDefault, func(_ *ecs.ECS, screen *ebiten.Image) {
		as.presenter.Draw(screen)
	})
}

// onRoundCompleted saves the run so it can be continued from the store.
func (as *ArenaScene) onRoundCompleted(w donburi.World, _ messages.RoundCompleted) {
	if as.services.Store == nil {
		return
	}
	as.services.Store.Save(systems.CaptureSnapshot(w))
}

func (as *ArenaScene) onGameOver(_ donburi.World, _ messages.GameOver) {
	if as.services.Store == nil {
		return
	}
	as.services.Store.Clear()
}
