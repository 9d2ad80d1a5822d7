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

// EnemyHealth returns the spawn health for a kind at a round.
func EnemyHealth(kind cfg.EnemyKind, round int) int {
	mult := gamemath.HealthMultiplier(cfg.Difficulty, round) * cfg.Enemy.Types[kind].HealthMultiplier
	return max(1, int(float64(cfg.Enemy.BaseHealth)*mult))
}

// CreateEnemy spawns an enemy of the given kind, scaled for the round.
func CreateEnemy(w donburi.World, kind cfg.EnemyKind, pos gamemath.Vec2, round int) *donburi.Entry {
	enemyType := cfg.Enemy.Types[kind]
	now := components.Now(w)

	var extra []donburi.IComponentType
	switch kind {
	case cfg.EnemyBoss:
		extra = append(extra, tags.Boss)
	case cfg.EnemyShifter:
		extra = append(extra, components.Shifter)
	case cfg.EnemyDestroyer:
		extra = append(extra, components.Destroyer)
	}
	enemy := archetypes.Enemy.Spawn(w, extra...)

	attachObject(w, enemy, pos, enemyType.Radius, tags.ResolvEnemy)
	components.Enemy.SetValue(enemy, components.EnemyData{Kind: kind})

	hp := EnemyHealth(kind, round)
	components.Health.SetValue(enemy, components.HealthData{Current: hp, Max: hp})

	switch kind {
	case cfg.EnemyShifter:
		components.Shifter.SetValue(enemy, components.ShifterData{
			Teleport: components.Cooldown{Duration: cfg.Enemy.Shifter.TeleportCooldown},
		})
	case cfg.EnemyDestroyer:
		components.Destroyer.SetValue(enemy, components.DestroyerData{
			Fire:             components.Cooldown{Duration: cfg.Enemy.Destroyer.FireCooldown, LastUsed: now, Used: true},
			StrafeDir:        1,
			NextStrafeChange: now + cfg.Enemy.Destroyer.StrafeInterval,
		})
	}

	messages.VisualAddedEvent.Publish(w, messages.VisualAdded{
		Entity: enemy.Entity(),
		Kind:   messages.VisualEnemy,
		Radius: enemyType.Radius,
		Color:  enemyType.Color,
	})
	return enemy
}
