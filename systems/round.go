package systems

import (
	"errors"
	"log"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/messages"
	"github.com/automoto/glitchfire/systems/factory"
	"github.com/automoto/glitchfire/tags"
	"github.com/yohamta/donburi"
)

var ErrRoundInProgress = errors.New("round still in progress")

// IsRoundComplete is true exactly when the wave has nothing left to spawn and the arena is empty.
func IsRoundComplete(w donburi.World) bool {
	return components.GetWave(w).EnemiesRemainingToSpawn == 0 && ActiveEnemyCount(w) == 0
}

// UpdateRound moves a finished round into the intermission store.
func UpdateRound(w donburi.World) {
	if !IsRoundComplete(w) {
		return
	}
	wave := components.GetWave(w)
	wave.Phase = components.PhaseIntermission
	components.GetMenu(w).StoreIndex = 0
	components.GetMenu(w).Message = ""

	score := components.GetSession(w).Score
	log.Printf("Round %d complete, score %d", wave.CurrentRound, score)
	messages.RoundCompletedEvent.Publish(w, messages.RoundCompleted{Round: wave.CurrentRound, Score: score})
	reportHUD(w)
}

// StartNextRound leaves the intermission and schedules the next wave.
func StartNextRound(w donburi.World) error {
	wave := components.GetWave(w)
	if wave.Phase != components.PhaseIntermission {
		return ErrRoundInProgress
	}
	ClearAll(w)
	wave.Phase = components.PhaseCombat
	CreateEnemyWave(w, wave.CurrentRound+1)
	reportHUD(w)
	return nil
}

// ClearAll removes every transient entity from the arena: projectiles, fields,
// pickups, drones and enemies. Cleared enemies score nothing.
func ClearAll(w donburi.World) {
	for _, tag := range []*donburi.ComponentType[donburi.Tag]{
		tags.Bullet,
		tags.Missile,
		tags.EnemyMissile,
		tags.EMPField,
		tags.PowerUp,
		tags.Drone,
	} {
		var doomed []donburi.Entity
		tag.Each(w, func(e *donburi.Entry) {
			doomed = append(doomed, e.Entity())
		})
		for _, entity := range doomed {
			factory.Destroy(w, entity)
		}
	}
	for _, enemy := range enemyEntities(w) {
		KillEnemy(w, enemy, KillCleared)
	}
}

// RestartRun resets the run to round one with the base loadout.
func RestartRun(w donburi.World, round int) {
	ClearAll(w)

	*components.GetSession(w) = components.SessionData{}
	*components.GetUpgrades(w) = factory.NewUpgrades()
	*components.GetAbilities(w) = factory.NewAbilities()
	*components.GetMenu(w) = components.MenuData{}

	if entry, ok := PlayerEntry(w); ok {
		*components.Health.Get(entry) = components.HealthData{Current: cfg.Player.Health, Max: cfg.Player.Health}
		player := components.Player.Get(entry)
		player.ShieldUntil = 0
		player.Fire = components.Cooldown{Duration: cfg.Player.FireInterval}
		components.Object.Get(entry).SetCenter(arenaCenter())
	}

	components.GetWave(w).Phase = components.PhaseCombat
	CreateEnemyWave(w, max(1, round))
	log.Printf("Run restarted at round %d", max(1, round))
	reportHUD(w)
}
