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

// FireEnemyMissile launches a Destroyer missile at target with an accuracy-bound aim error.
func FireEnemyMissile(w donburi.World, owner donburi.Entity, from, target gamemath.Vec2) *donburi.Entry {
	dir := target.Sub(from).Normalize()
	if dir == (gamemath.Vec2{}) {
		dir = gamemath.Vec2{X: 1}
	}
	rng := components.GetRandom(w)
	spread := (1 - cfg.EnemyMissile.Accuracy) * cfg.EnemyMissile.MaxAimOffset
	dir = dir.Rotate(spread * (rng.Float64()*2 - 1))
	return factory.CreateEnemyMissile(w, owner, from, dir.Scale(cfg.EnemyMissile.Speed))
}

// UpdateEnemyMissiles nudges Destroyer missiles toward the player and resolves proximity hits.
func UpdateEnemyMissiles(w donburi.World) {
	now := components.Now(w)
	player := PlayerCenter(w)
	_, hasPlayer := PlayerEntry(w)

	var missiles []donburi.Entity
	tags.EnemyMissile.Each(w, func(e *donburi.Entry) {
		missiles = append(missiles, e.Entity())
	})

	for _, entity := range missiles {
		if !w.Valid(entity) {
			continue
		}
		entry := w.Entry(entity)
		m := components.EnemyMissile.Get(entry)
		if now >= m.Deadline {
			ExplodeEnemyMissile(w, entity)
			continue
		}

		obj := components.Object.Get(entry)
		pos := obj.Center()
		if hasPlayer {
			m.Velocity = gamemath.SteerToward(m.Velocity, pos, player, cfg.EnemyMissile.Speed, cfg.EnemyMissile.Tracking)
		}
		pos = pos.Add(m.Velocity)
		obj.SetCenter(pos)

		if hasPlayer && pos.Dist(player) < cfg.EnemyMissile.ProximityRange+cfg.Player.Radius {
			DamagePlayer(w, gamemath.ScaledDamage(cfg.Difficulty, cfg.EnemyMissile.Damage, components.Round(w)))
			ExplodeEnemyMissile(w, entity)
		}
	}
}

// ExplodeEnemyMissile removes a Destroyer missile once with explosion feedback.
func ExplodeEnemyMissile(w donburi.World, missile donburi.Entity) {
	if !w.Valid(missile) {
		return
	}
	entry := w.Entry(missile)
	m := components.EnemyMissile.Get(entry)
	if m.Exploded {
		return
	}
	m.Exploded = true
	messages.EffectSpawnedEvent.Publish(w, messages.EffectSpawned{
		Kind:     cfg.EffectExplosion,
		Position: components.Object.Get(entry).Center(),
		Radius:   cfg.EnemyMissile.ProximityRange * 2,
		Color:    cfg.Magenta,
	})
	factory.Destroy(w, missile)
}

// ShootDownEnemyMissile destroys a Destroyer missile and the bullet that hit it,
// awarding the shot-down bonus. The player takes no damage.
func ShootDownEnemyMissile(w donburi.World, missile, bullet donburi.Entity) bool {
	if !w.Valid(missile) {
		return false
	}
	entry := w.Entry(missile)
	m := components.EnemyMissile.Get(entry)
	if m.Exploded {
		return false
	}
	m.Exploded = true
	pos := components.Object.Get(entry).Center()

	session := components.GetSession(w)
	session.Score += cfg.EnemyMissile.ShotDownBonus
	session.HUDDirty = true

	messages.EffectSpawnedEvent.Publish(w, messages.EffectSpawned{
		Kind:     cfg.EffectShotDown,
		Position: pos,
		Radius:   cfg.EnemyMissile.ProximityRange * 2,
		Color:    cfg.Yellow,
	})
	messages.FloatingValueEvent.Publish(w, messages.FloatingValue{
		Text:     fmt.Sprintf("+%d", cfg.EnemyMissile.ShotDownBonus),
		Value:    cfg.EnemyMissile.ShotDownBonus,
		Position: pos,
		Follow:   donburi.Null,
		Color:    cfg.Yellow,
	})

	factory.Destroy(w, missile)
	factory.Destroy(w, bullet)
	return true
}
