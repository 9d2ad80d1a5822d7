package components

import (
	"time"

	cfg "github.com/automoto/glitchfire/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind cfg.EnemyKind

	StunnedUntil  time.Duration
	Frozen        bool
	FrozenUntil   time.Duration
	HitFlashUntil time.Duration

	// Dead is set by the first damage source that observes the zero crossing.
	Dead bool
}

// Type returns the capability table row for this enemy.
func (e *EnemyData) Type() cfg.EnemyTypeConfig {
	return cfg.Enemy.Types[e.Kind]
}

func (e *EnemyData) IsStunned(now time.Duration) bool {
	return now < e.StunnedUntil
}

// IsDisabled reports whether movement and attacks are skipped this tick.
func (e *EnemyData) IsDisabled(now time.Duration) bool {
	return e.IsStunned(now) || e.Frozen
}

func (e *EnemyData) IsFlashing(now time.Duration) bool {
	return now < e.HitFlashUntil
}

// ShifterData holds the teleport dodge state.
type ShifterData struct {
	Teleport Cooldown
}

// DestroyerData holds the kiting and firing state.
type DestroyerData struct {
	Fire             Cooldown
	StrafeDir        float64
	NextStrafeChange time.Duration
	Missiles         []donburi.Entity
}

var Enemy = donburi.NewComponentType[EnemyData]()
var Shifter = donburi.NewComponentType[ShifterData]()
var Destroyer = donburi.NewComponentType[DestroyerData]()
