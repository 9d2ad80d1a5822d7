package messages

import (
	"image/color"

	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// VisualKind tells the presentation host how to draw an entity.
type VisualKind int

const (
	VisualPlayer VisualKind = iota
	VisualEnemy
	VisualBullet
	VisualMissile
	VisualEnemyMissile
	VisualEMPField
	VisualPowerUp
	VisualDrone
)

// VisualAdded is published when an entity the host should draw is created
type VisualAdded struct {
	Entity   donburi.Entity
	Kind     VisualKind
	Radius   float64
	Color    color.RGBA
	Critical bool
}

// VisualRemoved is published when a drawn entity is destroyed
type VisualRemoved struct {
	Entity donburi.Entity
}

// EffectSpawned requests a one-shot visual effect
type EffectSpawned struct {
	Kind     cfg.EffectKind
	Position gamemath.Vec2
	Radius   float64
	Color    color.RGBA
}

// FloatingValue is a damage/freeze/bonus/heal number or label shown near the action.
// Follow is zero when the value is not bound to an entity.
type FloatingValue struct {
	Text     string
	Value    int
	Position gamemath.Vec2
	Follow   donburi.Entity
	Color    color.RGBA
}

// CooldownFractions is 0 when an ability is ready and 1 right after use.
type CooldownFractions struct {
	Knockback float64
	EMP       float64
	Shield    float64
	Missile   float64
}

// HUDChanged carries everything the UI shows about the run
type HUDChanged struct {
	Score            int
	Health           int
	MaxHealth        int
	ActiveEnemies    int
	RemainingToSpawn int
	Round            int
	Cooldowns        CooldownFractions
	MissileCount     int
	ShieldActive     bool
	Intermission     bool
	GameOver         bool
}

// EnemyKilled is published once per destroyed enemy. Score is zero for contact kills.
type EnemyKilled struct {
	Entity   donburi.Entity
	Kind     cfg.EnemyKind
	Position gamemath.Vec2
	Score    int
}

// PlayerHit is published when damage reaches the player (Blocked when shielded)
type PlayerHit struct {
	Damage  int
	Blocked bool
	Health  int
}

// RoundCompleted is published once when both the wave and the arena are empty
type RoundCompleted struct {
	Round int
	Score int
}

// GameOver is published once when the player's health reaches zero
type GameOver struct {
	Round int
	Score int
}

var (
	VisualAddedEvent    = events.NewEventType[VisualAdded]()
	VisualRemovedEvent  = events.NewEventType[VisualRemoved]()
	EffectSpawnedEvent  = events.NewEventType[EffectSpawned]()
	FloatingValueEvent  = events.NewEventType[FloatingValue]()
	HUDChangedEvent     = events.NewEventType[HUDChanged]()
	EnemyKilledEvent    = events.NewEventType[EnemyKilled]()
	PlayerHitEvent      = events.NewEventType[PlayerHit]()
	RoundCompletedEvent = events.NewEventType[RoundCompleted]()
	GameOverEvent       = events.NewEventType[GameOver]()
)
