package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/automoto/glitchfire/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type manualClock struct {
	now time.Duration
}

func (c *manualClock) Now() time.Duration { return c.now }

type scriptedInput struct {
	state components.InputState
}

func (s *scriptedInput) Poll() components.InputState { return s.state }

// arena is a world with a player in the middle and an empty wave.
type arena struct {
	w     donburi.World
	clock *manualClock
	input *scriptedInput
}

func newArena(t *testing.T, seed int64) *arena {
	t.Helper()
	w := donburi.NewWorld()
	a := &arena{w: w, clock: &manualClock{now: time.Second}, input: &scriptedInput{}}

	factory.CreateSpace(w, int(cfg.Arena.Width), int(cfg.Arena.Height), cfg.Arena.CellSize, cfg.Arena.CellSize)
	factory.CreateGame(w, a.input, a.clock.Now, rand.New(rand.NewSource(seed)))
	UpdateClock(w)
	factory.CreatePlayer(w, arenaCenter())

	require.Equal(t, 1, components.Round(w))
	return a
}

func (a *arena) advance(d time.Duration) {
	a.clock.now += d
	UpdateClock(a.w)
}

func (a *arena) setRound(round int) {
	components.GetWave(a.w).CurrentRound = round
}

func (a *arena) player() gamemath.Vec2 {
	return PlayerCenter(a.w)
}

func (a *arena) playerHealth() int {
	entry, _ := PlayerEntry(a.w)
	return components.Health.Get(entry).Current
}

func (a *arena) spawn(kind cfg.EnemyKind, pos gamemath.Vec2) donburi.Entity {
	return factory.CreateEnemy(a.w, kind, pos, components.Round(a.w)).Entity()
}

// spawnWithHealth creates an enemy and overrides its health.
func (a *arena) spawnWithHealth(kind cfg.EnemyKind, pos gamemath.Vec2, hp int) donburi.Entity {
	e := a.spawn(kind, pos)
	*components.Health.Get(a.w.Entry(e)) = components.HealthData{Current: hp, Max: hp}
	return e
}

func (a *arena) health(e donburi.Entity) int {
	return components.Health.Get(a.w.Entry(e)).Current
}

// parkedBullet places a stationary bullet so collision tests control overlap exactly.
func (a *arena) parkedBullet(pos gamemath.Vec2, damage int, pierceLevel int) donburi.Entity {
	return factory.CreateBullet(a.w, pos, components.BulletData{
		Variant:   components.BulletStandard,
		Direction: gamemath.Vec2{X: 1},
		Damage:    damage,
		Pierce:    components.PierceState{Level: pierceLevel, Left: PierceBudget(pierceLevel)},
	}).Entity()
}

func offset(p gamemath.Vec2, dx, dy float64) gamemath.Vec2 {
	return p.Add(gamemath.Vec2{X: dx, Y: dy})
}

// withConfig swaps a config value for the duration of a test.
func withConfig[T any](t *testing.T, target *T, value T) {
	t.Helper()
	old := *target
	*target = value
	t.Cleanup(func() { *target = old })
}

// press polls one frame with exactly the given actions held.
func (a *arena) press(actions ...cfg.ActionID) {
	a.input.state = components.InputState{}
	for _, id := range actions {
		a.input.state.Pressed[id] = true
	}
	UpdateInput(a.w)
}

func (a *arena) release() {
	a.press()
}
