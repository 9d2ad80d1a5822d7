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

// UpdateCollisions is the per-tick resolution pass. The order is fixed: pickups, drone
// kills, player contact, Shifter dodge, bullet hits, then bullets against Destroyer
// missiles. The HUD is reported after each step that changed it.
func UpdateCollisions(w donburi.World) {
	if CollectPowerUps(w) > 0 {
		reportHUD(w)
	}
	if ResolveDroneKills(w) > 0 {
		reportHUD(w)
	}
	if ResolvePlayerContacts(w) > 0 {
		reportHUD(w)
	}
	ShifterDodge(w)
	if ResolveBulletHits(w) > 0 {
		reportHUD(w)
	}
	if ResolveBulletMissileHits(w) > 0 {
		reportHUD(w)
	}
}

// ResolvePlayerContacts damages the player for every enemy strictly inside the contact
// radius and destroys those enemies whether or not the shield absorbed the hit.
func ResolvePlayerContacts(w donburi.World) int {
	if _, ok := PlayerEntry(w); !ok {
		return 0
	}
	round := components.Round(w)
	contacts := 0
	for _, c := range QueryRadius(w, PlayerCenter(w), cfg.Player.ContactRadius, tags.ResolvEnemy) {
		if !w.Valid(c.Entity) {
			continue
		}
		enemy := components.Enemy.Get(w.Entry(c.Entity))
		if enemy.Dead {
			continue
		}
		DamagePlayer(w, gamemath.ScaledDamage(cfg.Difficulty, enemy.Type().ContactDamage, round))
		KillEnemy(w, c.Entity, KillContact)
		contacts++
	}
	return contacts
}

// ResolveBulletHits applies every bullet to the enemies it overlaps, nearest first.
// Returns the number of hits.
func ResolveBulletHits(w donburi.World) int {
	reach := maxEnemyRadius() + cfg.Bullet.Radius

	var bullets []donburi.Entity
	tags.Bullet.Each(w, func(e *donburi.Entry) {
		bullets = append(bullets, e.Entity())
	})

	hits := 0
	for _, b := range bullets {
		if !w.Valid(b) {
			continue
		}
		pos := components.Object.Get(w.Entry(b)).Center()
		spent := false

		for _, c := range QueryRadius(w, pos, reach, tags.ResolvEnemy) {
			if !w.Valid(c.Entity) || !w.Valid(b) {
				continue
			}
			enemy := components.Enemy.Get(w.Entry(c.Entity))
			if enemy.Dead || c.Dist >= enemy.Type().Radius+cfg.Bullet.Radius {
				continue
			}
			bullet := components.Bullet.Get(w.Entry(b))
			if !CanHitEnemy(bullet, c.Entity) {
				continue
			}

			killed := ApplyDamage(w, c.Entity, bullet.Damage)
			hits++
			publishHitValue(w, bullet, c)

			if bullet.Critical && !killed {
				StunEnemy(w, c.Entity, cfg.Enemy.CritStunDuration)
			}
			variant := bullet.Variant
			spent = HandleHit(bullet, c.Entity)

			if variant == components.BulletStandard {
				CreateGlitchedBullets(w, c.Position, c.Entity)
			}
			if killed {
				KillEnemy(w, c.Entity, KillWeapon)
			}
			if spent {
				break
			}
		}

		if spent {
			factory.Destroy(w, b)
		}
	}
	return hits
}

func publishHitValue(w donburi.World, b *components.BulletData, c Candidate) {
	text := fmt.Sprintf("%d", b.Damage)
	color := cfg.White
	if b.Critical {
		text = fmt.Sprintf("CRIT %d", b.Damage)
		color = cfg.Orange
	}
	messages.FloatingValueEvent.Publish(w, messages.FloatingValue{
		Text:     text,
		Value:    b.Damage,
		Position: c.Position,
		Follow:   c.Entity,
		Color:    color,
	})
}

// ResolveBulletMissileHits lets bullets shoot down Destroyer missiles.
func ResolveBulletMissileHits(w donburi.World) int {
	reach := cfg.EnemyMissile.Radius + cfg.Bullet.Radius

	var bullets []donburi.Entity
	tags.Bullet.Each(w, func(e *donburi.Entry) {
		bullets = append(bullets, e.Entity())
	})

	downed := 0
	for _, b := range bullets {
		if !w.Valid(b) {
			continue
		}
		pos := components.Object.Get(w.Entry(b)).Center()
		for _, c := range QueryRadius(w, pos, reach, tags.ResolvEnemyMissile) {
			if ShootDownEnemyMissile(w, c.Entity, b) {
				downed++
				break
			}
		}
	}
	return downed
}
