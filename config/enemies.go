package config

import (
	"image/color"
	"time"
)

// EnemyKind is the closed set of enemy variants.
type EnemyKind int

const (
	EnemyNormal EnemyKind = iota
	EnemyBoss
	EnemySpecial
	EnemyShifter
	EnemyDestroyer
	EnemyKindCount // Must be last - used for array sizing
)

func (k EnemyKind) String() string {
	if k < 0 || k >= EnemyKindCount {
		return "Unknown"
	}
	return Enemy.Types[k].Name
}

// MovementPolicy selects how an enemy closes on the player.
type MovementPolicy int

const (
	MovePursue MovementPolicy = iota
	MoveKite
)

// EvasionPolicy selects any reaction to incoming bullets.
type EvasionPolicy int

const (
	EvadeNone EvasionPolicy = iota
	EvadeTeleport
)

// AttackPolicy selects how an enemy hurts the player.
type AttackPolicy int

const (
	AttackContact AttackPolicy = iota
	AttackMissiles
)

// EnemyTypeConfig is one row of the enemy capability table.
type EnemyTypeConfig struct {
	Name             string
	Speed            float64
	HealthMultiplier float64
	ScoreValue       int
	ContactDamage    int
	Radius           float64
	Color            color.RGBA

	Movement MovementPolicy
	Evasion  EvasionPolicy
	Attack   AttackPolicy
}

// ShifterConfig tunes the teleport dodge.
type ShifterConfig struct {
	DetectionRadius  float64
	TeleportCooldown time.Duration
}

// DestroyerConfig tunes the kiting missile carrier.
type DestroyerConfig struct {
	PreferredMin   float64
	PreferredMax   float64
	FireCooldown   time.Duration
	StrafeInterval time.Duration
	StrafeFactor   float64
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	BaseHealth       int
	Types            [EnemyKindCount]EnemyTypeConfig
	HitFlashDuration time.Duration
	CritStunDuration time.Duration

	Shifter   ShifterConfig
	Destroyer DestroyerConfig
}

func init() {
	Enemy = EnemyConfig{
		BaseHealth:       30,
		HitFlashDuration: 100 * time.Millisecond,
		CritStunDuration: 300 * time.Millisecond,

		Types: [EnemyKindCount]EnemyTypeConfig{
			EnemyNormal: {
				Name:             "Normal",
				Speed:            1.2,
				HealthMultiplier: 1,
				ScoreValue:       100,
				ContactDamage:    10,
				Radius:           14,
				Color:            Red,
			},
			EnemyBoss: {
				Name:             "Boss",
				Speed:            0.8,
				HealthMultiplier: 8,
				ScoreValue:       1000,
				ContactDamage:    30,
				Radius:           32,
				Color:            Purple,
			},
			EnemySpecial: {
				Name:             "Special",
				Speed:            1.5,
				HealthMultiplier: 1.5,
				ScoreValue:       250,
				ContactDamage:    15,
				Radius:           16,
				Color:            Orange,
			},
			EnemyShifter: {
				Name:             "Shifter",
				Speed:            1.8,
				HealthMultiplier: 1.2,
				ScoreValue:       300,
				ContactDamage:    12,
				Radius:           14,
				Color:            Cyan,
				Evasion:          EvadeTeleport,
			},
			EnemyDestroyer: {
				Name:             "Destroyer",
				Speed:            1.0,
				HealthMultiplier: 2,
				ScoreValue:       400,
				ContactDamage:    20,
				Radius:           20,
				Color:            Magenta,
				Movement:         MoveKite,
				Attack:           AttackMissiles,
			},
		},

		Shifter: ShifterConfig{
			DetectionRadius:  150,
			TeleportCooldown: 2 * time.Second,
		},

		Destroyer: DestroyerConfig{
			PreferredMin:   300,
			PreferredMax:   450,
			FireCooldown:   3 * time.Second,
			StrafeInterval: 1500 * time.Millisecond,
			StrafeFactor:   0.7,
		},
	}
}
