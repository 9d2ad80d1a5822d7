// Package sim wires the systems into a headless simulation that a host drives one
// tick at a time.
package sim

import (
	"math/rand"
	"time"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/automoto/glitchfire/systems"
	"github.com/automoto/glitchfire/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Options configures a new simulation. Zero values pick sensible defaults.
type Options struct {
	Input      components.InputSource
	Clock      func() time.Duration // defaults to wall time since New
	Rand       *rand.Rand           // defaults to a time-seeded source
	StartRound int
	Snapshot   *systems.Snapshot // restores a saved run into its intermission

	// Hook runs before the per-tick event flush so hosts can subscribe to events
	// published during construction.
	Hook func(w donburi.World)
}

// Sim is one arena run.
type Sim struct {
	world   donburi.World
	systems []systems.System
}

// New builds the world, the player and the first wave.
func New(opts Options) *Sim {
	if opts.Clock == nil {
		start := time.Now()
		opts.Clock = func() time.Duration { return time.Since(start) }
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	w := donburi.NewWorld()
	if opts.Hook != nil {
		opts.Hook(w)
	}

	factory.CreateSpace(w, int(cfg.Arena.Width), int(cfg.Arena.Height), cfg.Arena.CellSize, cfg.Arena.CellSize)
	factory.CreateGame(w, opts.Input, opts.Clock, opts.Rand)
	systems.UpdateClock(w)
	factory.CreatePlayer(w, gamemath.Vec2{X: cfg.Arena.Width / 2, Y: cfg.Arena.Height / 2})

	if opts.Snapshot != nil {
		systems.RestoreSnapshot(w, *opts.Snapshot)
	} else {
		systems.CreateEnemyWave(w, max(1, opts.StartRound))
	}

	s := &Sim{world: w}
	s.systems = []systems.System{
		systems.UpdateClock,
		systems.UpdateInput,

		systems.WithGameplayChecks(systems.UpdateSpawner),
		systems.WithGameplayChecks(systems.UpdatePlayer),
		systems.WithGameplayChecks(systems.UpdateEnemies),
		systems.WithGameplayChecks(systems.UpdateKnockback),
		systems.WithGameplayChecks(systems.UpdateBullets),
		systems.WithGameplayChecks(systems.UpdateMissiles),
		systems.WithGameplayChecks(systems.UpdateEnemyMissiles),
		systems.WithGameplayChecks(systems.UpdateEMPFields),
		systems.WithGameplayChecks(systems.UpdateDrones),
		systems.WithGameplayChecks(systems.UpdatePowerUps),
		systems.WithGameplayChecks(systems.UpdateCollisions),
		systems.WithGameplayChecks(systems.UpdateRound),

		systems.WithPhaseCheck(components.PhaseIntermission, systems.UpdateStoreMenu),
		systems.WithPhaseCheck(components.PhaseGameOver, systems.UpdateGameOverMenu),

		systems.UpdateHUD,
	}
	events.ProcessAllEvents(w)
	return s
}

// Tick advances the simulation by one step and delivers the events it published.
func (s *Sim) Tick() {
	for _, system := range s.systems {
		system(s.world)
	}
	events.ProcessAllEvents(s.world)
}

// World exposes the underlying world for hosts and tests.
func (s *Sim) World() donburi.World {
	return s.world
}

func (s *Sim) Phase() components.Phase {
	return components.GetWave(s.world).Phase
}

func (s *Sim) Round() int {
	return components.Round(s.world)
}

func (s *Sim) Score() int {
	return components.GetSession(s.world).Score
}

// QuitRequested reports whether the player chose to quit from the game over menu.
func (s *Sim) QuitRequested() bool {
	return components.GetMenu(s.world).QuitRequested
}

// AdvanceRound starts the next wave. It fails while a round is still being fought.
func (s *Sim) AdvanceRound() error {
	err := systems.StartNextRound(s.world)
	events.ProcessAllEvents(s.world)
	return err
}

// Purchase buys one level of an upgrade during the intermission.
func (s *Sim) Purchase(id cfg.UpgradeID) error {
	err := systems.Purchase(s.world, id)
	events.ProcessAllEvents(s.world)
	return err
}

// Restart begins a fresh run at round one.
func (s *Sim) Restart() {
	systems.RestartRun(s.world, 1)
	events.ProcessAllEvents(s.world)
}

func (s *Sim) Snapshot() systems.Snapshot {
	return systems.CaptureSnapshot(s.world)
}

func (s *Sim) Restore(snap systems.Snapshot) {
	systems.RestoreSnapshot(s.world, snap)
	events.ProcessAllEvents(s.world)
}
