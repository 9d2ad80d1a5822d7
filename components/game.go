package components

import (
	"math/rand"
	"time"

	cfg "github.com/automoto/glitchfire/config"
	"github.com/yohamta/donburi"
)

type Phase int

const (
	PhaseCombat Phase = iota
	PhaseIntermission
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseCombat:
		return "Combat"
	case PhaseIntermission:
		return "Intermission"
	case PhaseGameOver:
		return "GameOver"
	}
	return "Unknown"
}

// WaveData is the round and spawn schedule.
type WaveData struct {
	CurrentRound            int
	EnemiesRemainingToSpawn int
	TotalEnemiesForRound    int
	BossesRemaining         int
	TimeBetweenSpawns       time.Duration
	LastSpawnTime           time.Duration
	Phase                   Phase
}

// AbilitiesData holds the independent ability cooldowns.
type AbilitiesData struct {
	Knockback    Cooldown
	EMP          Cooldown
	Shield       Cooldown
	Missile      Cooldown
	MissileCount int
}

// UpgradesData holds purchased upgrades. BulletDamage and MoveSpeed are absolute values.
type UpgradesData struct {
	BulletDamage        int
	MoveSpeed           float64
	PiercingLevel       int
	SuperBulletLevel    int
	GlitchedBulletLevel int
	ShieldUnlocked      bool
	Levels              [cfg.UpgradeCount]int
}

type SessionData struct {
	Score    int
	Kills    int
	HUDDirty bool
}

// ClockData is the simulation clock. Now is elapsed time since the clock source started.
type ClockData struct {
	Source func() time.Duration
	Now    time.Duration
	Tick   uint64
}

type RandomData struct {
	*rand.Rand
}

var Wave = donburi.NewComponentType[WaveData]()
var Abilities = donburi.NewComponentType[AbilitiesData]()
var Upgrades = donburi.NewComponentType[UpgradesData]()
var Session = donburi.NewComponentType[SessionData]()
var Clock = donburi.NewComponentType[ClockData]()
var Random = donburi.NewComponentType[RandomData]()
