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

func CreatePlayer(w donburi.World, pos gamemath.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	attachObject(w, player, pos, cfg.Player.Radius, tags.ResolvPlayer)
	components.Player.SetValue(player, components.PlayerData{
		Fire: components.Cooldown{Duration: cfg.Player.FireInterval},
		Aim:  pos.Add(gamemath.Vec2{X: 1}),
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	messages.VisualAddedEvent.Publish(w, messages.VisualAdded{
		Entity: player.Entity(),
		Kind:   messages.VisualPlayer,
		Radius: cfg.Player.Radius,
		Color:  cfg.LightBlue,
	})
	return player
}
