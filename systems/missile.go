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

// LaunchMissile fires a homing missile toward the aim point when stock and cooldown allow.
func LaunchMissile(w donburi.World) bool {
	abilities := components.GetAbilities(w)
	now := components.Now(w)
	if abilities.MissileCount <= 0 || !abilities.Missile.Ready(now) {
		return false
	}
	entry, ok := PlayerEntry(w)
	if !ok {
		return false
	}

	pos := components.Object.Get(entry).Center()
	dir := components.GetInput(w).Aim.Sub(pos).Normalize()
	if dir == (gamemath.Vec2{}) {
		dir = gamemath.Vec2{X: 0, Y: -1}
	}

	abilities.MissileCount--
	abilities.Missile.Trigger(now)
	components.GetSession(w).HUDDirty = true
	factory.CreateMissile(w, pos, dir.Scale(cfg.Missile.Speed))
	return true
}

// nearestLiveEnemy scans every enemy in the arena.
func nearestLiveEnemy(w donburi.World, from gamemath.Vec2) (donburi.Entity, gamemath.Vec2, bool) {
	var (
		best    donburi.Entity
		bestPos gamemath.Vec2
		bestD   float64
		found   bool
	)
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if components.Enemy.Get(e).Dead {
			return
		}
		pos := components.Object.Get(e).Center()
		d := pos.Dist(from)
		if !found || d < bestD || (d == bestD && e.Entity() < best) {
			best, bestPos, bestD, found = e.Entity(), pos, d, true
		}
	})
	return best, bestPos, found
}

// liveEnemyCenter resolves a missile target handle, rejecting stale or dead enemies.
func liveEnemyCenter(w donburi.World, enemy donburi.Entity) (gamemath.Vec2, bool) {
	if !w.Valid(enemy) {
		return gamemath.Vec2{}, false
	}
	entry := w.Entry(enemy)
	if !entry.HasComponent(components.Enemy) || components.Enemy.Get(entry).Dead {
		return gamemath.Vec2{}, false
	}
	return components.Object.Get(entry).Center(), true
}

// UpdateMissiles steers homing missiles and detonates them on contact or timeout.
func UpdateMissiles(w donburi.World) {
	now := components.Now(w)

	var missiles []donburi.Entity
	tags.Missile.Each(w, func(e *donburi.Entry) {
		missiles = append(missiles, e.Entity())
	})

	for _, entity := range missiles {
		if !w.Valid(entity) {
			continue
		}
		m := components.Missile.Get(w.Entry(entity))
		if now >= m.Deadline {
			DetonateMissile(w, entity)
			continue
		}

		target, ok := gamemath.Vec2{}, false
		if m.HasTarget {
			target, ok = liveEnemyCenter(w, m.Target)
		}
		if !ok {
			m.Target, target, ok = nearestLiveEnemy(w, m.Position)
			m.HasTarget = ok
		}
		if ok {
			m.Velocity = gamemath.SteerToward(m.Velocity, m.Position, target, cfg.Missile.Speed, cfg.Missile.TurnRate)
		}
		m.Position = m.Position.Add(m.Velocity)

		if ok && m.Position.Dist(target) < cfg.Missile.HitDistance {
			DetonateMissile(w, entity)
		}
	}
}

// DetonateMissile applies the blast once and removes the missile. Enemies inside the
// blast radius take floored linear-falloff damage and lethal hits are credited once each.
func DetonateMissile(w donburi.World, missile donburi.Entity) int {
	if !w.Valid(missile) {
		return 0
	}
	m := components.Missile.Get(w.Entry(missile))
	if m.Exploded {
		return 0
	}
	m.Exploded = true
	pos := m.Position

	messages.EffectSpawnedEvent.Publish(w, messages.EffectSpawned{
		Kind:     cfg.EffectExplosion,
		Position: pos,
		Radius:   cfg.Missile.BlastRadius,
		Color:    cfg.Orange,
	})

	kills := 0
	for _, c := range QueryRadius(w, pos, cfg.Missile.BlastRadius, tags.ResolvEnemy) {
		dmg := gamemath.CalculateBlastDamage(cfg.Missile.BlastDamage, c.Dist, cfg.Missile.BlastRadius)
		if dmg <= 0 {
			continue
		}
		messages.FloatingValueEvent.Publish(w, messages.FloatingValue{
			Text:     fmt.Sprintf("%d", dmg),
			Value:    dmg,
			Position: c.Position,
			Follow:   c.Entity,
			Color:    cfg.Orange,
		})
		if ApplyDamage(w, c.Entity, dmg) {
			KillEnemy(w, c.Entity, KillWeapon)
			kills++
		}
	}

	factory.Destroy(w, missile)
	reportHUD(w)
	return kills
}
