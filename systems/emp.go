package systems

import (
	"errors"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/automoto/glitchfire/shared/messages"
	"github.com/automoto/glitchfire/systems/factory"
	"github.com/automoto/glitchfire/tags"
	"github.com/yohamta/donburi"
)

var (
	ErrEMPCooldown = errors.New("emp on cooldown")
	ErrEMPCapacity = errors.New("emp field limit reached")
)

// ActiveEMPFieldCount counts deployed fields.
func ActiveEMPFieldCount(w donburi.World) int {
	n := 0
	tags.EMPField.Each(w, func(*donburi.Entry) { n++ })
	return n
}

// DeployEMP drops a field at the player's position.
func DeployEMP(w donburi.World) error {
	abilities := components.GetAbilities(w)
	now := components.Now(w)
	if ActiveEMPFieldCount(w) >= cfg.EMP.MaxFields {
		return ErrEMPCapacity
	}
	if !abilities.EMP.Ready(now) {
		return ErrEMPCooldown
	}
	abilities.EMP.Trigger(now)
	components.GetSession(w).HUDDirty = true
	factory.CreateEMPField(w, PlayerCenter(w))
	return nil
}

// UpdateEMPFields pulses live fields on their interval and expires old ones.
func UpdateEMPFields(w donburi.World) {
	now := components.Now(w)

	var fields []donburi.Entity
	tags.EMPField.Each(w, func(e *donburi.Entry) {
		fields = append(fields, e.Entity())
	})

	for _, entity := range fields {
		f := components.EMPField.Get(w.Entry(entity))
		if now >= f.Expires {
			factory.Destroy(w, entity)
			continue
		}
		if now < f.NextPulse {
			continue
		}
		f.NextPulse += cfg.EMP.PulseInterval
		f.Pulses++
		center := f.Center

		messages.EffectSpawnedEvent.Publish(w, messages.EffectSpawned{
			Kind:     cfg.EffectEMPPulse,
			Position: center,
			Radius:   cfg.EMP.Radius,
			Color:    cfg.Blue,
		})
		ChainFreeze(w, center)
	}
}

// ChainFreeze runs one EMP pulse: every unfrozen enemy within the field radius is frozen
// and seeds a chain that spreads to unvisited neighbours within the chain radius with
// ChainChance per edge, at most MaxChainDepth hops deep. The visited set lives for this
// pulse only, so each enemy is frozen at most once. Returns the number frozen.
func ChainFreeze(w donburi.World, center gamemath.Vec2) int {
	visited := make(map[donburi.Entity]struct{})
	frozen := 0
	for _, seed := range QueryRadius(w, center, cfg.EMP.Radius, tags.ResolvEnemy) {
		if _, ok := visited[seed.Entity]; ok {
			continue
		}
		if e := components.Enemy.Get(w.Entry(seed.Entity)); e.Frozen || e.Dead {
			continue
		}
		frozen += chainFreeze(w, seed, 0, visited)
	}
	return frozen
}

func chainFreeze(w donburi.World, c Candidate, depth int, visited map[donburi.Entity]struct{}) int {
	visited[c.Entity] = struct{}{}
	freezeEnemy(w, c)
	count := 1
	if depth >= cfg.EMP.MaxChainDepth {
		return count
	}

	rng := components.GetRandom(w)
	for _, n := range QueryRadius(w, c.Position, cfg.EMP.ChainRadius, tags.ResolvEnemy) {
		if _, ok := visited[n.Entity]; ok {
			continue
		}
		if components.Enemy.Get(w.Entry(n.Entity)).Dead {
			continue
		}
		if rng.Float64() < cfg.EMP.ChainChance {
			count += chainFreeze(w, n, depth+1, visited)
		}
	}
	return count
}

func freezeEnemy(w donburi.World, c Candidate) {
	e := components.Enemy.Get(w.Entry(c.Entity))
	e.Frozen = true
	e.FrozenUntil = components.Now(w) + cfg.EMP.FreezeDuration
	messages.FloatingValueEvent.Publish(w, messages.FloatingValue{
		Text:     "FROZEN",
		Position: c.Position,
		Follow:   c.Entity,
		Color:    cfg.LightBlue,
	})
}
