package components

import (
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/yohamta/donburi"
)

type BulletVariant int

const (
	BulletStandard BulletVariant = iota
	BulletGlitched
)

// PierceState tracks how many extra enemies a bullet may pass through.
type PierceState struct {
	Level int
	Left  int
}

type BulletData struct {
	Variant   BulletVariant
	Direction gamemath.Vec2
	Speed     float64
	Damage    int
	Critical  bool
	Pierce    PierceState

	HitEnemies map[donburi.Entity]struct{}
}

var Bullet = donburi.NewComponentType[BulletData]()
