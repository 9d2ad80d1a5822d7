package systems

import (
	"testing"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/automoto/glitchfire/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetonateMissileFalloff(t *testing.T) {
	a := newArena(t, 1)
	at := gamemath.Vec2{X: 300, Y: 300}
	center := a.spawnWithHealth(cfg.EnemyNormal, at, 1000)
	half := a.spawnWithHealth(cfg.EnemyNormal, offset(at, cfg.Missile.BlastRadius/2, 0), 1000)
	edge := a.spawnWithHealth(cfg.EnemyNormal, offset(at, 0, cfg.Missile.BlastRadius), 1000)

	m := factory.CreateMissile(a.w, at, gamemath.Vec2{}).Entity()
	assert.Zero(t, DetonateMissile(a.w, m))

	assert.Equal(t, 1000-cfg.Missile.BlastDamage, a.health(center))
	assert.Equal(t, 1000-cfg.Missile.BlastDamage/2, a.health(half))
	assert.Equal(t, 1000, a.health(edge))
	assert.False(t, a.w.Valid(m))

	assert.Zero(t, DetonateMissile(a.w, m), "a missile explodes once")
	assert.Equal(t, 1000-cfg.Missile.BlastDamage, a.health(center))
}

func TestDetonateMissileCreditsKillsOnce(t *testing.T) {
	a := newArena(t, 2)
	at := gamemath.Vec2{X: 300, Y: 300}
	a.spawnWithHealth(cfg.EnemyNormal, at, 5)
	a.spawnWithHealth(cfg.EnemySpecial, offset(at, 20, 0), 5)

	m := factory.CreateMissile(a.w, at, gamemath.Vec2{}).Entity()
	assert.Equal(t, 2, DetonateMissile(a.w, m))
	assert.Equal(t, KillScore(cfg.EnemyNormal, 1, KillWeapon)+KillScore(cfg.EnemySpecial, 1, KillWeapon),
		components.GetSession(a.w).Score)
	assert.Equal(t, 2, components.GetSession(a.w).Kills)
}

func TestLaunchMissileUsesStockAndCooldown(t *testing.T) {
	a := newArena(t, 3)
	abilities := components.GetAbilities(a.w)
	abilities.MissileCount = 1

	require.True(t, LaunchMissile(a.w))
	assert.Zero(t, abilities.MissileCount)

	a.advance(cfg.Missile.Cooldown)
	assert.False(t, LaunchMissile(a.w), "out of missiles")

	abilities.MissileCount = 2
	require.True(t, LaunchMissile(a.w))
	assert.False(t, LaunchMissile(a.w), "on cooldown")
}

func TestMissileHomesAndDetonatesOnTarget(t *testing.T) {
	a := newArena(t, 4)
	target := a.spawnWithHealth(cfg.EnemyBoss, offset(a.player(), 0, -200), 1000)
	m := factory.CreateMissile(a.w, a.player(), gamemath.Vec2{X: cfg.Missile.Speed}).Entity()

	for i := 0; i < 200 && a.w.Valid(m); i++ {
		UpdateMissiles(a.w)
	}
	assert.False(t, a.w.Valid(m))
	assert.Less(t, a.health(target), 1000)
}

func TestMissileRetargetsWhenTargetDies(t *testing.T) {
	a := newArena(t, 5)
	first := a.spawnWithHealth(cfg.EnemyBoss, offset(a.player(), 0, -400), 1000)
	second := a.spawnWithHealth(cfg.EnemyBoss, offset(a.player(), 0, 450), 1000)
	m := factory.CreateMissile(a.w, a.player(), gamemath.Vec2{Y: -cfg.Missile.Speed}).Entity()

	UpdateMissiles(a.w)
	missile := components.Missile.Get(a.w.Entry(m))
	require.True(t, missile.HasTarget)
	assert.Equal(t, first, missile.Target)

	KillEnemy(a.w, first, KillNova)
	UpdateMissiles(a.w)
	assert.Equal(t, second, components.Missile.Get(a.w.Entry(m)).Target)
}

func TestMissileExpires(t *testing.T) {
	a := newArena(t, 6)
	m := factory.CreateMissile(a.w, a.player(), gamemath.Vec2{X: 1}).Entity()
	a.advance(cfg.Missile.Lifetime)
	UpdateMissiles(a.w)
	assert.False(t, a.w.Valid(m))
}
