package systems

import (
	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/messages"
	"github.com/yohamta/donburi"
)

// TriggerNova destroys every enemy in the arena, awarding each its round-scaled score
// times the nova multiplier. Returns the total awarded.
func TriggerNova(w donburi.World) int {
	messages.EffectSpawnedEvent.Publish(w, messages.EffectSpawned{
		Kind:     cfg.EffectNova,
		Position: PlayerCenter(w),
		Radius:   max(cfg.Arena.Width, cfg.Arena.Height),
		Color:    cfg.Magenta,
	})

	total := 0
	for _, enemy := range enemyEntities(w) {
		total += KillEnemy(w, enemy, KillNova)
	}
	reportHUD(w)
	return total
}

// ActivateShield blocks player damage for the shield duration once unlocked and off cooldown.
func ActivateShield(w donburi.World) bool {
	if !components.GetUpgrades(w).ShieldUnlocked {
		return false
	}
	abilities := components.GetAbilities(w)
	now := components.Now(w)
	if !abilities.Shield.Ready(now) {
		return false
	}
	entry, ok := PlayerEntry(w)
	if !ok {
		return false
	}
	abilities.Shield.Trigger(now)
	components.Player.Get(entry).ShieldUntil = now + cfg.Shield.Duration
	components.GetSession(w).HUDDirty = true
	floatText(w, "SHIELD", components.Object.Get(entry).Center(), cfg.LightBlue)
	return true
}
