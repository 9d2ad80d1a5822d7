package systems

import (
	"time"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/automoto/glitchfire/shared/messages"
	"github.com/automoto/glitchfire/tags"
	"github.com/yohamta/donburi"
)

// UpdateEnemies expires timed states, then moves and fires every enemy that is not
// stunned or frozen. Knockback suspends movement but not firing.
func UpdateEnemies(w donburi.World) {
	now := components.Now(w)
	round := components.Round(w)
	player := PlayerCenter(w)
	speedMult := gamemath.SpeedMultiplier(cfg.Difficulty, round)

	for _, entity := range enemyEntities(w) {
		if !w.Valid(entity) {
			continue
		}
		entry := w.Entry(entity)
		enemy := components.Enemy.Get(entry)
		if enemy.Dead {
			continue
		}
		if enemy.Frozen && now >= enemy.FrozenUntil {
			enemy.Frozen = false
		}
		if entry.HasComponent(components.Destroyer) {
			pruneEnemyMissiles(w, components.Destroyer.Get(entry))
		}

		if enemy.IsDisabled(now) {
			continue
		}

		enemyType := enemy.Type()
		obj := components.Object.Get(entry)
		if !isKnockedBack(entry, now) {
			pos := obj.Center()
			speed := enemyType.Speed * speedMult
			switch enemyType.Movement {
			case cfg.MovePursue:
				pos = pursue(pos, player, speed)
			case cfg.MoveKite:
				pos = kite(w, entry, pos, player, speed, now)
			}
			obj.SetCenter(clampToArena(pos))
		}

		switch enemyType.Attack {
		case cfg.AttackMissiles:
			fireIfReady(w, entry, obj.Center(), player, now)
		}
	}
}

func pursue(pos, player gamemath.Vec2, speed float64) gamemath.Vec2 {
	toPlayer := player.Sub(pos)
	if toPlayer.Len() <= speed {
		return player
	}
	return pos.Add(toPlayer.Normalize().Scale(speed))
}

// kite holds the Destroyer inside its preferred distance band.
func kite(w donburi.World, entry *donburi.Entry, pos, player gamemath.Vec2, speed float64, now time.Duration) gamemath.Vec2 {
	d := components.Destroyer.Get(entry)
	toPlayer := player.Sub(pos)
	dist := toPlayer.Len()
	dir := toPlayer.Normalize()

	switch {
	case dist < cfg.Enemy.Destroyer.PreferredMin:
		return pos.Sub(dir.Scale(speed))
	case dist > cfg.Enemy.Destroyer.PreferredMax:
		return pos.Add(dir.Scale(speed))
	}

	if now >= d.NextStrafeChange {
		d.StrafeDir = 1
		if components.GetRandom(w).Intn(2) == 0 {
			d.StrafeDir = -1
		}
		d.NextStrafeChange = now + cfg.Enemy.Destroyer.StrafeInterval
	}
	return pos.Add(dir.Perp().Scale(d.StrafeDir * speed * cfg.Enemy.Destroyer.StrafeFactor))
}

func fireIfReady(w donburi.World, entry *donburi.Entry, pos, player gamemath.Vec2, now time.Duration) {
	d := components.Destroyer.Get(entry)
	if !d.Fire.Ready(now) {
		return
	}
	d.Fire.Trigger(now)
	FireEnemyMissile(w, entry.Entity(), pos, player)
}

// pruneEnemyMissiles forgets missiles that have already exploded.
func pruneEnemyMissiles(w donburi.World, d *components.DestroyerData) {
	live := d.Missiles[:0]
	for _, m := range d.Missiles {
		if w.Valid(m) {
			live = append(live, m)
		}
	}
	d.Missiles = live
}

// ShifterDodge teleports every ready Shifter that has a live bullet within its detection
// radius. It runs after movement and before bullet resolution, so a teleport this tick
// evades this tick's bullets. Returns the number of teleports.
func ShifterDodge(w donburi.World) int {
	now := components.Now(w)
	rng := components.GetRandom(w)

	var shifters []donburi.Entity
	components.Shifter.Each(w, func(e *donburi.Entry) {
		shifters = append(shifters, e.Entity())
	})

	teleports := 0
	for _, entity := range shifters {
		if !w.Valid(entity) {
			continue
		}
		entry := w.Entry(entity)
		enemy := components.Enemy.Get(entry)
		shifter := components.Shifter.Get(entry)
		if enemy.Dead || enemy.IsDisabled(now) || enemy.Type().Evasion != cfg.EvadeTeleport {
			continue
		}
		if !shifter.Teleport.Ready(now) {
			continue
		}

		obj := components.Object.Get(entry)
		from := obj.Center()
		if len(QueryRadius(w, from, cfg.Enemy.Shifter.DetectionRadius, tags.ResolvBullet)) == 0 {
			continue
		}

		margin := cfg.Arena.Margin + enemy.Type().Radius
		to := gamemath.Vec2{
			X: margin + rng.Float64()*(cfg.Arena.Width-2*margin),
			Y: margin + rng.Float64()*(cfg.Arena.Height-2*margin),
		}
		obj.SetCenter(to)
		shifter.Teleport.Trigger(now)
		teleports++

		for _, p := range []gamemath.Vec2{from, to} {
			messages.EffectSpawnedEvent.Publish(w, messages.EffectSpawned{
				Kind:     cfg.EffectTeleport,
				Position: p,
				Radius:   enemy.Type().Radius * 2,
				Color:    enemy.Type().Color,
			})
		}
	}
	return teleports
}
