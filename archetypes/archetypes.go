package archetypes

import (
	"github.com/automoto/glitchfire/components"
	"github.com/automoto/glitchfire/tags"
	"github.com/yohamta/donburi"
)

var (
	Game = newArchetype(
		tags.Game,
		components.Wave,
		components.Abilities,
		components.Upgrades,
		components.Session,
		components.Clock,
		components.Random,
		components.Input,
		components.Menu,
	)
	Space = newArchetype(
		components.Space,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Knockback,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Object,
	)
	Missile = newArchetype(
		tags.Missile,
		components.Missile,
	)
	EnemyMissile = newArchetype(
		tags.EnemyMissile,
		components.EnemyMissile,
		components.Object,
	)
	EMPField = newArchetype(
		tags.EMPField,
		components.EMPField,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.PowerUp,
		components.Object,
	)
	Drone = newArchetype(
		tags.Drone,
		components.Drone,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
