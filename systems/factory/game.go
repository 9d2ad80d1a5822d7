package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/glitchfire/archetypes"
	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/yohamta/donburi"
)

// CreateGame spawns the singleton entity holding per-run state.
func CreateGame(w donburi.World, input components.InputSource, clock func() time.Duration, rng *rand.Rand) *donburi.Entry {
	game := archetypes.Game.Spawn(w)

	components.Wave.SetValue(game, components.WaveData{
		CurrentRound: 1,
		Phase:        components.PhaseCombat,
	})
	components.Abilities.SetValue(game, NewAbilities())
	components.Upgrades.SetValue(game, NewUpgrades())
	components.Clock.SetValue(game, components.ClockData{Source: clock})
	components.Random.SetValue(game, components.RandomData{Rand: rng})
	components.Input.SetValue(game, components.InputData{Source: input})

	return game
}

// NewAbilities returns fresh cooldowns with the starting missile stock.
func NewAbilities() components.AbilitiesData {
	return components.AbilitiesData{
		Knockback:    components.Cooldown{Duration: cfg.Knockback.Cooldown},
		EMP:          components.Cooldown{Duration: cfg.EMP.Cooldown},
		Shield:       components.Cooldown{Duration: cfg.Shield.Cooldown},
		Missile:      components.Cooldown{Duration: cfg.Missile.Cooldown},
		MissileCount: cfg.Missile.StartingCount,
	}
}

// NewUpgrades returns the base loadout.
func NewUpgrades() components.UpgradesData {
	return components.UpgradesData{
		BulletDamage: cfg.Bullet.BaseDamage,
		MoveSpeed:    cfg.Player.Speed,
	}
}
