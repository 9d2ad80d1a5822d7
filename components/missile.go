package components

import (
	"time"

	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/yohamta/donburi"
)

// MissileData is a player homing missile.
type MissileData struct {
	Position  gamemath.Vec2
	Velocity  gamemath.Vec2
	Target    donburi.Entity
	HasTarget bool
	Deadline  time.Duration
	Exploded  bool
}

// EnemyMissileData is a Destroyer missile seeking the player.
type EnemyMissileData struct {
	Owner    donburi.Entity
	Velocity gamemath.Vec2
	Deadline time.Duration
	Exploded bool
}

var Missile = donburi.NewComponentType[MissileData]()
var EnemyMissile = donburi.NewComponentType[EnemyMissileData]()
