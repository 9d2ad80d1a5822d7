package systems

import (
	"math"
	"time"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/automoto/glitchfire/shared/messages"
	"github.com/automoto/glitchfire/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// TriggerKnockback pushes every enemy within radius away from the player.
// Returns the number of enemies affected, or -1 while on cooldown.
func TriggerKnockback(w donburi.World) int {
	abilities := components.GetAbilities(w)
	now := components.Now(w)
	if !abilities.Knockback.Ready(now) {
		return -1
	}
	abilities.Knockback.Trigger(now)
	components.GetSession(w).HUDDirty = true

	player := PlayerCenter(w)
	rng := components.GetRandom(w)
	messages.EffectSpawnedEvent.Publish(w, messages.EffectSpawned{
		Kind:     cfg.EffectKnockbackWave,
		Position: player,
		Radius:   cfg.Knockback.Radius,
		Color:    cfg.White,
	})

	hits := QueryRadius(w, player, cfg.Knockback.Radius, tags.ResolvEnemy)
	for _, c := range hits {
		dir := c.Position.Sub(player).Normalize()
		if dir == (gamemath.Vec2{}) {
			dir = gamemath.FromAngle(rng.Float64()*2*math.Pi, 1)
		}
		kb := components.Knockback.Get(w.Entry(c.Entity))
		*kb = components.KnockbackData{
			Started:   now,
			Until:     now + cfg.Knockback.Duration,
			Direction: dir,
			Impulse:   gween.New(float32(cfg.Knockback.Strength), 0, float32(cfg.Knockback.Duration.Seconds()), ease.OutQuad),
		}
	}
	return len(hits)
}

func isKnockedBack(entry *donburi.Entry, now time.Duration) bool {
	kb := components.Knockback.Get(entry)
	return kb.Impulse != nil && now < kb.Until
}

// UpdateKnockback displaces knocked-back enemies by the eased impulse for the elapsed time.
// A frozen enemy holds its position while the impulse runs out.
func UpdateKnockback(w donburi.World) {
	now := components.Now(w)
	components.Knockback.Each(w, func(e *donburi.Entry) {
		kb := components.Knockback.Get(e)
		if kb.Impulse == nil {
			return
		}
		if now >= kb.Until {
			*kb = components.KnockbackData{}
			return
		}
		strength, _ := kb.Impulse.Set(float32((now - kb.Started).Seconds()))
		if e.HasComponent(components.Enemy) && components.Enemy.Get(e).Frozen {
			return
		}
		obj := components.Object.Get(e)
		obj.SetCenter(clampToArena(obj.Center().Add(kb.Direction.Scale(float64(strength)))))
	})
}
