package systems

import (
	"fmt"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/automoto/glitchfire/shared/messages"
	"github.com/automoto/glitchfire/systems/factory"
	"github.com/automoto/glitchfire/tags"
	"github.com/yohamta/donburi"
)

// maybeDropPowerUp rolls the drop chance for a weapon kill and picks a weighted kind.
func maybeDropPowerUp(w donburi.World, pos gamemath.Vec2) {
	rng := components.GetRandom(w)
	if rng.Float64() >= cfg.PowerUp.DropChance {
		return
	}
	factory.CreatePowerUp(w, rollPowerUpKind(rng.Float64()), clampToArena(pos))
}

// rollPowerUpKind maps a uniform roll in [0, 1) onto the configured weights.
func rollPowerUpKind(roll float64) cfg.PowerUpKind {
	total := 0.0
	for _, wt := range cfg.PowerUp.Weights {
		total += wt
	}
	target := roll * total
	for kind, wt := range cfg.PowerUp.Weights {
		if target < wt {
			return cfg.PowerUpKind(kind)
		}
		target -= wt
	}
	return cfg.PowerUpMissilePack
}

// UpdatePowerUps removes pickups that were never collected.
func UpdatePowerUps(w donburi.World) {
	now := components.Now(w)
	var expired []donburi.Entity
	tags.PowerUp.Each(w, func(e *donburi.Entry) {
		if now >= components.PowerUp.Get(e).Expires {
			expired = append(expired, e.Entity())
		}
	})
	for _, p := range expired {
		factory.Destroy(w, p)
	}
}

// CollectPowerUps applies every pickup touching the player. Returns how many were collected.
func CollectPowerUps(w donburi.World) int {
	if _, ok := PlayerEntry(w); !ok {
		return 0
	}
	player := PlayerCenter(w)
	collected := 0
	for _, c := range QueryRadius(w, player, cfg.PowerUp.PickupRadius, tags.ResolvPowerUp) {
		if !w.Valid(c.Entity) {
			continue
		}
		kind := components.PowerUp.Get(w.Entry(c.Entity)).Kind
		factory.Destroy(w, c.Entity)
		ApplyPowerUp(w, kind, c.Position)
		collected++
	}
	return collected
}

// ApplyPowerUp grants a pickup's effect.
func ApplyPowerUp(w donburi.World, kind cfg.PowerUpKind, pos gamemath.Vec2) {
	messages.EffectSpawnedEvent.Publish(w, messages.EffectSpawned{
		Kind:     cfg.EffectPickup,
		Position: pos,
		Radius:   cfg.PowerUp.PickupRadius,
		Color:    factory.PowerUpColor(kind),
	})

	switch kind {
	case cfg.PowerUpMissilePack:
		components.GetAbilities(w).MissileCount += cfg.PowerUp.MissilePackSize
		floatText(w, fmt.Sprintf("+%d MISSILES", cfg.PowerUp.MissilePackSize), pos, cfg.White)
	case cfg.PowerUpHeal:
		HealPlayer(w, cfg.PowerUp.HealAmount)
	case cfg.PowerUpDrone:
		SpawnDrone(w)
	case cfg.PowerUpNova:
		TriggerNova(w)
	}
	components.GetSession(w).HUDDirty = true
}
