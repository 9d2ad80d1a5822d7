package systems

import (
	"math"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/automoto/glitchfire/systems/factory"
	"github.com/automoto/glitchfire/tags"
	"github.com/yohamta/donburi"
)

// PierceBudget returns how many extra enemies a bullet of the given piercing level passes through.
func PierceBudget(level int) int {
	if level <= 0 {
		return 0
	}
	return cfg.Bullet.BasePenetration + (level-1)*cfg.Bullet.PenetrationPerLevel
}

// ActiveBulletCount counts live bullets of both variants.
func ActiveBulletCount(w donburi.World) int {
	n := 0
	tags.Bullet.Each(w, func(*donburi.Entry) { n++ })
	return n
}

// Shoot fires a standard bullet from origin toward aim. It is a silent no-op when the
// pool is full or aim coincides with origin.
func Shoot(w donburi.World, origin, aim gamemath.Vec2) bool {
	if ActiveBulletCount(w) >= cfg.Bullet.MaxPoolSize {
		return false
	}
	dir := aim.Sub(origin).Normalize()
	if dir == (gamemath.Vec2{}) {
		return false
	}

	upgrades := components.GetUpgrades(w)
	rng := components.GetRandom(w)

	damage := upgrades.BulletDamage
	critical := false
	if upgrades.SuperBulletLevel > 0 {
		chance := float64(upgrades.SuperBulletLevel) * cfg.Bullet.CritChancePerLevel
		if rng.Float64() < chance {
			critical = true
			damage = int(math.Floor(float64(damage) * cfg.Bullet.CritMultiplier))
		}
	}

	factory.CreateBullet(w, origin, components.BulletData{
		Variant:   components.BulletStandard,
		Direction: dir,
		Speed:     cfg.Bullet.Speed,
		Damage:    damage,
		Critical:  critical,
		Pierce: components.PierceState{
			Level: upgrades.PiercingLevel,
			Left:  PierceBudget(upgrades.PiercingLevel),
		},
	})
	return true
}

// UpdateBullets advances every bullet and drops those past max range from the player.
func UpdateBullets(w donburi.World) {
	player := PlayerCenter(w)

	var expired []donburi.Entity
	tags.Bullet.Each(w, func(e *donburi.Entry) {
		b := components.Bullet.Get(e)
		obj := components.Object.Get(e)
		pos := obj.Center().Add(b.Direction.Scale(b.Speed))
		obj.SetCenter(pos)
		if pos.Dist(player) > cfg.Bullet.MaxRange {
			expired = append(expired, e.Entity())
		}
	})

	for _, b := range expired {
		factory.Destroy(w, b)
	}
}

// CanHitEnemy is false once the bullet has hit this enemy.
func CanHitEnemy(b *components.BulletData, enemy donburi.Entity) bool {
	_, hit := b.HitEnemies[enemy]
	return !hit
}

// HandleHit records the hit and reports whether the bullet is spent. A bullet with
// budget B is spent on its (B+1)th distinct enemy.
func HandleHit(b *components.BulletData, enemy donburi.Entity) bool {
	if b.HitEnemies == nil {
		b.HitEnemies = make(map[donburi.Entity]struct{})
	}
	b.HitEnemies[enemy] = struct{}{}

	if b.Pierce.Level == 0 || b.Pierce.Left <= 0 {
		return true
	}
	b.Pierce.Left--
	return false
}

// CreateGlitchedBullets spawns homing shards from a hit toward the nearest distinct
// enemies other than exclude. Bounded by level, live targets and pool headroom.
func CreateGlitchedBullets(w donburi.World, from gamemath.Vec2, exclude donburi.Entity) int {
	upgrades := components.GetUpgrades(w)
	if upgrades.GlitchedBulletLevel <= 0 {
		return 0
	}
	headroom := cfg.Bullet.MaxPoolSize - ActiveBulletCount(w)
	want := min(upgrades.GlitchedBulletLevel*cfg.Bullet.GlitchedPerLevel, headroom)
	if want <= 0 {
		return 0
	}

	created := 0
	for _, c := range QueryRadius(w, from, cfg.Bullet.GlitchedSearchRadius, tags.ResolvEnemy) {
		if created == want {
			break
		}
		if c.Entity == exclude || components.Enemy.Get(w.Entry(c.Entity)).Dead {
			continue
		}
		dir := c.Position.Sub(from).Normalize()
		if dir == (gamemath.Vec2{}) {
			continue
		}
		factory.CreateBullet(w, from, components.BulletData{
			Variant:    components.BulletGlitched,
			Direction:  dir,
			Speed:      cfg.Bullet.GlitchedSpeed,
			Damage:     upgrades.BulletDamage,
			HitEnemies: map[donburi.Entity]struct{}{exclude: {}},
		})
		created++
	}
	return created
}
