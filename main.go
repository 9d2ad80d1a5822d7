package main

import (
	"context"
	"flag"
	"image"
	"log"
	"math/rand"
	"time"

	"github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/persistence"
	"github.com/automoto/glitchfire/scenes"
	"github.com/automoto/glitchfire/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game loop after the current update
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(services scenes.Services, resume bool) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if resume {
		if snap, ok := services.Store.Load(); ok {
			g.scene = scenes.NewArenaScene(g, services, &snap)
			return g
		}
		log.Printf("Warning: No saved run to continue")
	}
	g.scene = scenes.NewMenuScene(g, services)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// runHeadless lets the autopilot play for d without opening a window.
func runHeadless(d time.Duration) {
	seed := config.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	pilot := sim.NewAutoPilot(config.BotDifficultyNormal)
	s := sim.New(sim.Options{
		Input:      pilot,
		Rand:       rand.New(rand.NewSource(seed)),
		StartRound: config.Debug.StartRound,
	})
	pilot.Attach(s)

	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	ticks := sim.NewLoop(s, config.C.TickRate).Run(ctx)
	log.Printf("Headless run finished: %d ticks, round %d, score %d, phase %s", ticks, s.Round(), s.Score(), s.Phase())
}

func main() {
	flag.Int64Var(&config.Debug.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	flag.IntVar(&config.Debug.StartRound, "round", 1, "round to start a new run at")
	flag.BoolVar(&config.Debug.ShowRadii, "radii", false, "draw contact, knockback and detection radii")
	resume := flag.Bool("continue", false, "resume the saved run")
	headless := flag.Duration("headless", 0, "run the autopilot without a window for this long")
	flag.Parse()

	if *headless > 0 {
		runHeadless(*headless)
		return
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Glitchfire")
	ebiten.SetTPS(config.C.TickRate)

	// Initialize persistence; a failed open still yields a usable no-op store
	store, err := persistence.Open(config.C.AppName)
	if err != nil {
		log.Printf("Warning: Saved runs are disabled: %v", err)
	}
	services := scenes.Services{Store: store, Seed: config.Debug.Seed}

	if err := ebiten.RunGame(NewGame(services, *resume)); err != nil {
		log.Fatal(err)
	}
}
