package systems

import (
	"github.com/automoto/glitchfire/components"
	"github.com/automoto/glitchfire/shared/messages"
	"github.com/yohamta/donburi"
)

// BuildHUD collects the values the UI displays.
func BuildHUD(w donburi.World) messages.HUDChanged {
	wave := components.GetWave(w)
	abilities := components.GetAbilities(w)
	now := components.Now(w)

	hud := messages.HUDChanged{
		Score:            components.GetSession(w).Score,
		ActiveEnemies:    ActiveEnemyCount(w),
		RemainingToSpawn: wave.EnemiesRemainingToSpawn,
		Round:            wave.CurrentRound,
		Cooldowns: messages.CooldownFractions{
			Knockback: abilities.Knockback.RemainingFraction(now),
			EMP:       abilities.EMP.RemainingFraction(now),
			Shield:    abilities.Shield.RemainingFraction(now),
			Missile:   abilities.Missile.RemainingFraction(now),
		},
		MissileCount: abilities.MissileCount,
		Intermission: wave.Phase == components.PhaseIntermission,
		GameOver:     wave.Phase == components.PhaseGameOver,
	}
	if entry, ok := PlayerEntry(w); ok {
		hp := components.Health.Get(entry)
		hud.Health = hp.Current
		hud.MaxHealth = hp.Max
		hud.ShieldActive = components.Player.Get(entry).Shielded(now)
	}
	return hud
}

// reportHUD publishes the HUD immediately and clears the dirty flag.
func reportHUD(w donburi.World) {
	messages.HUDChangedEvent.Publish(w, BuildHUD(w))
	components.GetSession(w).HUDDirty = false
}

// UpdateHUD publishes the HUD once per tick. Cooldown fractions change continuously,
// so the dirty flag only forces an extra report mid-tick.
func UpdateHUD(w donburi.World) {
	reportHUD(w)
}
