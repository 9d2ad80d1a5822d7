package systems

import (
	"testing"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestNovaAddsBonusOnScaledValue(t *testing.T) {
	a := newArena(t, 1)
	a.setRound(4)
	for i := 0; i < 3; i++ {
		a.spawn(cfg.EnemyNormal, offset(a.player(), 200+float64(i)*50, 0))
	}
	for i := 0; i < 2; i++ {
		a.spawn(cfg.EnemySpecial, offset(a.player(), -200-float64(i)*50, 0))
	}

	want := 3*KillScore(cfg.EnemyNormal, 4, KillNova) + 2*KillScore(cfg.EnemySpecial, 4, KillNova)
	assert.Equal(t, 1593, want)
	assert.Greater(t, KillScore(cfg.EnemyNormal, 4, KillNova), KillScore(cfg.EnemyNormal, 4, KillWeapon))
	assert.Equal(t, want, TriggerNova(a.w))
	assert.Equal(t, want, components.GetSession(a.w).Score)
	assert.Zero(t, ActiveEnemyCount(a.w))
}

func TestNovaOnEmptyArena(t *testing.T) {
	a := newArena(t, 2)
	assert.Zero(t, TriggerNova(a.w))
}

func TestKnockbackAffectsEnemiesInsideRadius(t *testing.T) {
	a := newArena(t, 3)
	near := a.spawn(cfg.EnemyNormal, offset(a.player(), 100, 0))
	a.spawn(cfg.EnemyNormal, offset(a.player(), 0, -200))
	a.spawn(cfg.EnemyNormal, offset(a.player(), -cfg.Knockback.Radius, 0))

	assert.Equal(t, 2, TriggerKnockback(a.w))
	assert.Equal(t, -1, TriggerKnockback(a.w))

	before, _ := CenterOf(a.w, near)
	a.advance(cfg.Knockback.Duration / 4)
	UpdateKnockback(a.w)
	after, _ := CenterOf(a.w, near)
	assert.Greater(t, after.X, before.X)
	assert.InDelta(t, before.Y, after.Y, 1e-9)

	// Knocked-back enemies do not steer toward the player.
	UpdateEnemies(a.w)
	again, _ := CenterOf(a.w, near)
	assert.Equal(t, after, again)

	a.advance(cfg.Knockback.Duration)
	UpdateKnockback(a.w)
	assert.Nil(t, components.Knockback.Get(a.w.Entry(near)).Impulse)

	a.advance(cfg.Knockback.Cooldown)
	assert.GreaterOrEqual(t, TriggerKnockback(a.w), 0)
}

func TestShieldRequiresUnlock(t *testing.T) {
	a := newArena(t, 4)
	assert.False(t, ActivateShield(a.w))

	components.GetUpgrades(a.w).ShieldUnlocked = true
	require.True(t, ActivateShield(a.w))
	assert.True(t, BuildHUD(a.w).ShieldActive)
	assert.InDelta(t, 1.0, BuildHUD(a.w).Cooldowns.Shield, 1e-9)

	a.advance(cfg.Shield.Cooldown)
	assert.False(t, BuildHUD(a.w).ShieldActive)
	assert.Zero(t, BuildHUD(a.w).Cooldowns.Shield)
	assert.True(t, ActivateShield(a.w))
}

func TestHealClampsAtMax(t *testing.T) {
	a := newArena(t, 5)
	assert.Zero(t, HealPlayer(a.w, 50))

	entry, _ := PlayerEntry(a.w)
	components.Health.Get(entry).Current = cfg.Player.Health - 5
	assert.Equal(t, 5, HealPlayer(a.w, cfg.PowerUp.HealAmount))
	assert.Equal(t, cfg.Player.Health, a.playerHealth())
}

func TestDroneCapAndExpiry(t *testing.T) {
	a := newArena(t, 6)
	for i := 0; i < cfg.Drone.MaxActive; i++ {
		require.True(t, SpawnDrone(a.w))
	}
	assert.False(t, SpawnDrone(a.w))

	UpdateDrones(a.w)
	components.Drone.Each(a.w, func(e *donburi.Entry) {
		assert.InDelta(t, cfg.Drone.OrbitRadius, components.Drone.Get(e).Position.Dist(a.player()), 1e-6)
	})

	a.advance(cfg.Drone.Lifetime)
	UpdateDrones(a.w)
	assert.Zero(t, ActiveDroneCount(a.w))
}
