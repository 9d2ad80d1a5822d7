package components

import (
	"time"

	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// KnockbackData pushes an enemy away from the player until Until.
type KnockbackData struct {
	Started   time.Duration
	Until     time.Duration
	Direction gamemath.Vec2
	Impulse   *gween.Tween
}

// EMPFieldData is a stationary field that freezes enemies on each pulse.
type EMPFieldData struct {
	Center    gamemath.Vec2
	Expires   time.Duration
	NextPulse time.Duration
	Pulses    int
}

type PowerUpData struct {
	Kind    cfg.PowerUpKind
	Expires time.Duration
}

// DroneData orbits the player and destroys non-boss enemies it touches.
type DroneData struct {
	Angle    float64
	Position gamemath.Vec2
	Expires  time.Duration
}

var Knockback = donburi.NewComponentType[KnockbackData]()
var EMPField = donburi.NewComponentType[EMPFieldData]()
var PowerUp = donburi.NewComponentType[PowerUpData]()
var Drone = donburi.NewComponentType[DroneData]()
