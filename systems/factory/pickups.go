package factory

import (
	"image/color"

	"github.com/automoto/glitchfire/archetypes"
	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/automoto/glitchfire/shared/messages"
	"github.com/automoto/glitchfire/tags"
	"github.com/yohamta/donburi"
)

func CreateEMPField(w donburi.World, pos gamemath.Vec2) *donburi.Entry {
	now := components.Now(w)
	f := archetypes.EMPField.Spawn(w)
	components.EMPField.SetValue(f, components.EMPFieldData{
		Center:    pos,
		Expires:   now + cfg.EMP.Lifetime,
		NextPulse: now,
	})
	messages.VisualAddedEvent.Publish(w, messages.VisualAdded{
		Entity: f.Entity(),
		Kind:   messages.VisualEMPField,
		Radius: cfg.EMP.Radius,
		Color:  cfg.Blue,
	})
	return f
}

func CreatePowerUp(w donburi.World, kind cfg.PowerUpKind, pos gamemath.Vec2) *donburi.Entry {
	p := archetypes.PowerUp.Spawn(w)
	attachObject(w, p, pos, cfg.PowerUp.PickupRadius/2, tags.ResolvPowerUp)
	components.PowerUp.SetValue(p, components.PowerUpData{
		Kind:    kind,
		Expires: components.Now(w) + cfg.PowerUp.Lifetime,
	})
	messages.VisualAddedEvent.Publish(w, messages.VisualAdded{
		Entity: p.Entity(),
		Kind:   messages.VisualPowerUp,
		Radius: 10,
		Color:  PowerUpColor(kind),
	})
	return p
}

// PowerUpColor returns the display color of a pickup.
func PowerUpColor(kind cfg.PowerUpKind) color.RGBA {
	switch kind {
	case cfg.PowerUpHeal:
		return cfg.Green
	case cfg.PowerUpDrone:
		return cfg.Cyan
	case cfg.PowerUpNova:
		return cfg.Magenta
	}
	return cfg.White
}

func CreateDrone(w donburi.World, angle float64, center gamemath.Vec2) *donburi.Entry {
	d := archetypes.Drone.Spawn(w)
	components.Drone.SetValue(d, components.DroneData{
		Angle:    angle,
		Position: center.Add(gamemath.FromAngle(angle, cfg.Drone.OrbitRadius)),
		Expires:  components.Now(w) + cfg.Drone.Lifetime,
	})
	messages.VisualAddedEvent.Publish(w, messages.VisualAdded{
		Entity: d.Entity(),
		Kind:   messages.VisualDrone,
		Radius: 8,
		Color:  cfg.Cyan,
	})
	return d
}
