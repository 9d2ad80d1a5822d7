package factory

import (
	"github.com/automoto/glitchfire/archetypes"
	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/automoto/glitchfire/shared/messages"
	"github.com/automoto/glitchfire/tags"
	"github.com/yohamta/donburi"
)

// CreateBullet spawns a bullet. Direction must already be normalized.
func CreateBullet(w donburi.World, pos gamemath.Vec2, data components.BulletData) *donburi.Entry {
	b := archetypes.Bullet.Spawn(w)

	attachObject(w, b, pos, cfg.Bullet.Radius, tags.ResolvBullet)
	if data.HitEnemies == nil {
		data.HitEnemies = make(map[donburi.Entity]struct{})
	}
	components.Bullet.SetValue(b, data)

	c := cfg.Yellow
	if data.Variant == components.BulletGlitched {
		c = cfg.Green
	} else if data.Critical {
		c = cfg.Orange
	}
	messages.VisualAddedEvent.Publish(w, messages.VisualAdded{
		Entity:   b.Entity(),
		Kind:     messages.VisualBullet,
		Radius:   cfg.Bullet.Radius,
		Color:    c,
		Critical: data.Critical,
	})
	return b
}

// CreateMissile spawns a player homing missile with its lifetime deadline.
func CreateMissile(w donburi.World, pos, vel gamemath.Vec2) *donburi.Entry {
	m := archetypes.Missile.Spawn(w)
	components.Missile.SetValue(m, components.MissileData{
		Position: pos,
		Velocity: vel,
		Deadline: components.Now(w) + cfg.Missile.Lifetime,
	})
	messages.VisualAddedEvent.Publish(w, messages.VisualAdded{
		Entity: m.Entity(),
		Kind:   messages.VisualMissile,
		Radius: 5,
		Color:  cfg.White,
	})
	return m
}

// CreateEnemyMissile spawns a Destroyer missile and records it on the owner.
func CreateEnemyMissile(w donburi.World, owner donburi.Entity, pos, vel gamemath.Vec2) *donburi.Entry {
	m := archetypes.EnemyMissile.Spawn(w)

	attachObject(w, m, pos, cfg.EnemyMissile.Radius, tags.ResolvEnemyMissile)
	components.EnemyMissile.SetValue(m, components.EnemyMissileData{
		Owner:    owner,
		Velocity: vel,
		Deadline: components.Now(w) + cfg.EnemyMissile.Lifetime,
	})

	if w.Valid(owner) {
		if ownerEntry := w.Entry(owner); ownerEntry.HasComponent(components.Destroyer) {
			d := components.Destroyer.Get(ownerEntry)
			d.Missiles = append(d.Missiles, m.Entity())
		}
	}

	messages.VisualAddedEvent.Publish(w, messages.VisualAdded{
		Entity: m.Entity(),
		Kind:   messages.VisualEnemyMissile,
		Radius: cfg.EnemyMissile.Radius,
		Color:  cfg.Magenta,
	})
	return m
}
