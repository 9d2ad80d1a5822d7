package systems

import (
	"fmt"
	"math"
	"time"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/automoto/glitchfire/shared/messages"
	"github.com/automoto/glitchfire/systems/factory"
	"github.com/automoto/glitchfire/tags"
	"github.com/yohamta/donburi"
)

// KillCause selects how a destroyed enemy is scored.
type KillCause int

const (
	// KillWeapon covers bullets, missiles and drones: full round-scaled score and a drop roll.
	KillWeapon KillCause = iota
	// KillNova scores with the nova multiplier.
	KillNova
	// KillContact destroys an enemy that rammed the player. No score.
	KillContact
	// KillCleared tears an enemy down between rounds. No score, no feedback.
	KillCleared
)

// KillScore returns the score awarded for destroying an enemy of kind at round.
func KillScore(kind cfg.EnemyKind, round int, cause KillCause) int {
	base := gamemath.ScaledScore(cfg.Difficulty, cfg.Enemy.Types[kind].ScoreValue, round)
	switch cause {
	case KillWeapon:
		return base
	case KillNova:
		return int(math.Floor(float64(base) * cfg.Nova.ScoreMultiplier))
	}
	return 0
}

// ApplyDamage lowers an enemy's health, clamped at zero, and starts its hit flash.
// It returns true exactly once per enemy: for the call that takes health to zero.
// Dead or stale enemies take no damage.
func ApplyDamage(w donburi.World, enemy donburi.Entity, amount int) bool {
	if !w.Valid(enemy) {
		return false
	}
	entry := w.Entry(enemy)
	if !entry.HasComponent(components.Enemy) {
		return false
	}
	e := components.Enemy.Get(entry)
	if e.Dead {
		return false
	}

	hp := components.Health.Get(entry)
	hp.Current = max(0, hp.Current-max(0, amount))
	e.HitFlashUntil = components.Now(w) + cfg.Enemy.HitFlashDuration

	if hp.Current <= 0 {
		e.Dead = true
		return true
	}
	return false
}

// StunEnemy keeps an enemy from moving until now+d. Longer stuns win.
func StunEnemy(w donburi.World, enemy donburi.Entity, d time.Duration) {
	if !w.Valid(enemy) {
		return
	}
	e := components.Enemy.Get(w.Entry(enemy))
	until := components.Now(w) + d
	if until > e.StunnedUntil {
		e.StunnedUntil = until
	}
}

// KillEnemy removes an enemy from the arena and credits the kill. The enemy must
// already be dead or this is a forced kill (nova, drone, contact, clear). Returns the score awarded.
func KillEnemy(w donburi.World, enemy donburi.Entity, cause KillCause) int {
	if !w.Valid(enemy) {
		return 0
	}
	entry := w.Entry(enemy)
	if !entry.HasComponent(components.Enemy) {
		return 0
	}
	e := components.Enemy.Get(entry)
	kind := e.Kind
	e.Dead = true
	pos := components.Object.Get(entry).Center()

	detachEnemyMissiles(w, entry)
	factory.Destroy(w, enemy)

	if cause == KillCleared {
		return 0
	}

	score := KillScore(kind, components.Round(w), cause)
	session := components.GetSession(w)
	session.Score += score
	if cause != KillContact {
		session.Kills++
	}
	session.HUDDirty = true

	messages.EnemyKilledEvent.Publish(w, messages.EnemyKilled{
		Entity:   enemy,
		Kind:     kind,
		Position: pos,
		Score:    score,
	})
	messages.EffectSpawnedEvent.Publish(w, messages.EffectSpawned{
		Kind:     cfg.EffectExplosion,
		Position: pos,
		Radius:   cfg.Enemy.Types[kind].Radius * 2,
		Color:    cfg.Enemy.Types[kind].Color,
	})
	if score > 0 {
		messages.FloatingValueEvent.Publish(w, messages.FloatingValue{
			Text:     fmt.Sprintf("+%d", score),
			Value:    score,
			Position: pos,
			Follow:   donburi.Null,
			Color:    cfg.Yellow,
		})
	}

	if cause == KillWeapon {
		maybeDropPowerUp(w, pos)
	}
	return score
}

// detachEnemyMissiles removes a Destroyer's in-flight missiles along with it.
func detachEnemyMissiles(w donburi.World, entry *donburi.Entry) {
	if !entry.HasComponent(components.Destroyer) {
		return
	}
	d := components.Destroyer.Get(entry)
	missiles := d.Missiles
	d.Missiles = nil
	for _, m := range missiles {
		factory.Destroy(w, m)
	}
}

// ActiveEnemyCount counts enemies currently in the arena.
func ActiveEnemyCount(w donburi.World) int {
	n := 0
	tags.Enemy.Each(w, func(*donburi.Entry) { n++ })
	return n
}

// ActiveBossCount counts bosses currently in the arena.
func ActiveBossCount(w donburi.World) int {
	n := 0
	tags.Boss.Each(w, func(*donburi.Entry) { n++ })
	return n
}

// enemyEntities snapshots enemy handles so callers can remove enemies while iterating.
func enemyEntities(w donburi.World) []donburi.Entity {
	var out []donburi.Entity
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		out = append(out, e.Entity())
	})
	return out
}
