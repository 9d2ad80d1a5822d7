package systems

import (
	"testing"
	"time"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/automoto/glitchfire/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRadiusIsStrict(t *testing.T) {
	a := newArena(t, 1)
	edge := a.spawn(cfg.EnemyNormal, offset(a.player(), cfg.Player.ContactRadius, 0))

	assert.Equal(t, 0, ResolvePlayerContacts(a.w))
	assert.True(t, a.w.Valid(edge))
	assert.Equal(t, cfg.Player.Health, a.playerHealth())

	inside := a.spawn(cfg.EnemyNormal, offset(a.player(), 0, cfg.Player.ContactRadius-0.01))
	assert.Equal(t, 1, ResolvePlayerContacts(a.w))
	assert.False(t, a.w.Valid(inside))
	assert.Equal(t, cfg.Player.Health-cfg.Enemy.Types[cfg.EnemyNormal].ContactDamage, a.playerHealth())
	assert.Equal(t, 0, components.GetSession(a.w).Score, "contact kills score nothing")
}

func TestContactDamageScalesWithRound(t *testing.T) {
	a := newArena(t, 2)
	a.setRound(6)
	a.spawn(cfg.EnemyBoss, offset(a.player(), 5, 5))

	ResolvePlayerContacts(a.w)
	want := gamemath.ScaledDamage(cfg.Difficulty, cfg.Enemy.Types[cfg.EnemyBoss].ContactDamage, 6)
	assert.Greater(t, want, cfg.Enemy.Types[cfg.EnemyBoss].ContactDamage)
	assert.Equal(t, cfg.Player.Health-want, a.playerHealth())
}

func TestShieldBlocksContactButEnemyStillDies(t *testing.T) {
	a := newArena(t, 3)
	components.GetUpgrades(a.w).ShieldUnlocked = true
	require.True(t, ActivateShield(a.w))
	require.False(t, ActivateShield(a.w), "shield is on cooldown")

	e := a.spawn(cfg.EnemyNormal, offset(a.player(), 10, 0))
	ResolvePlayerContacts(a.w)
	assert.False(t, a.w.Valid(e))
	assert.Equal(t, cfg.Player.Health, a.playerHealth())

	a.advance(cfg.Shield.Duration)
	a.spawn(cfg.EnemyNormal, offset(a.player(), 10, 0))
	ResolvePlayerContacts(a.w)
	assert.Less(t, a.playerHealth(), cfg.Player.Health)
}

func TestLethalContactEndsRun(t *testing.T) {
	a := newArena(t, 4)
	entry, _ := PlayerEntry(a.w)
	components.Health.Get(entry).Current = 5

	a.spawn(cfg.EnemyNormal, offset(a.player(), 3, 0))
	ResolvePlayerContacts(a.w)
	assert.Equal(t, 0, a.playerHealth())
	assert.Equal(t, components.PhaseGameOver, components.GetWave(a.w).Phase)
}

func TestShifterDodgesBeforeBulletsResolve(t *testing.T) {
	a := newArena(t, 5)
	pos := offset(a.player(), 300, 0)
	shifter := a.spawn(cfg.EnemyShifter, pos)
	full := a.health(shifter)
	a.parkedBullet(pos, 10, 0)

	UpdateCollisions(a.w)

	moved, ok := CenterOf(a.w, shifter)
	require.True(t, ok)
	assert.NotEqual(t, pos, moved)
	assert.Equal(t, full, a.health(shifter))
	assert.False(t, components.Shifter.Get(a.w.Entry(shifter)).Teleport.Ready(components.Now(a.w)))
}

func TestShifterCannotDodgeWhileFrozen(t *testing.T) {
	a := newArena(t, 6)
	pos := offset(a.player(), 300, 0)
	shifter := a.spawn(cfg.EnemyShifter, pos)
	e := components.Enemy.Get(a.w.Entry(shifter))
	e.Frozen = true
	e.FrozenUntil = components.Now(a.w) + time.Second
	a.parkedBullet(pos, 10, 0)

	UpdateCollisions(a.w)
	assert.Less(t, a.health(shifter), factory.EnemyHealth(cfg.EnemyShifter, 1))
}

func TestBulletShootsDownEnemyMissile(t *testing.T) {
	a := newArena(t, 7)
	destroyer := a.spawn(cfg.EnemyDestroyer, offset(a.player(), 400, 0))
	from := offset(a.player(), 200, 0)
	missile := FireEnemyMissile(a.w, destroyer, from, a.player()).Entity()
	bullet := a.parkedBullet(from, 10, 0)

	assert.Equal(t, 1, ResolveBulletMissileHits(a.w))
	assert.False(t, a.w.Valid(missile))
	assert.False(t, a.w.Valid(bullet))
	assert.Equal(t, cfg.EnemyMissile.ShotDownBonus, components.GetSession(a.w).Score)
	assert.Equal(t, cfg.Player.Health, a.playerHealth())
	assert.False(t, ShootDownEnemyMissile(a.w, missile, bullet), "stale handles are ignored")
}

func TestDestroyerDeathRemovesItsMissiles(t *testing.T) {
	a := newArena(t, 8)
	destroyer := a.spawn(cfg.EnemyDestroyer, offset(a.player(), 400, 0))
	m1 := FireEnemyMissile(a.w, destroyer, offset(a.player(), 380, 0), a.player()).Entity()
	m2 := FireEnemyMissile(a.w, destroyer, offset(a.player(), 360, 0), a.player()).Entity()

	KillEnemy(a.w, destroyer, KillWeapon)
	assert.False(t, a.w.Valid(m1))
	assert.False(t, a.w.Valid(m2))
}

func TestEnemyMissileHitsPlayerOnProximity(t *testing.T) {
	a := newArena(t, 9)
	destroyer := a.spawn(cfg.EnemyDestroyer, offset(a.player(), 400, 0))
	missile := FireEnemyMissile(a.w, destroyer, offset(a.player(), cfg.Player.Radius+cfg.EnemyMissile.ProximityRange+1, 0), a.player()).Entity()

	UpdateEnemyMissiles(a.w)
	assert.False(t, a.w.Valid(missile))
	assert.Equal(t, cfg.Player.Health-cfg.EnemyMissile.Damage, a.playerHealth())
}

func TestDronesKillRegularEnemiesButNotBosses(t *testing.T) {
	a := newArena(t, 10)
	require.True(t, SpawnDrone(a.w))
	UpdateDrones(a.w)

	entry, ok := components.Drone.First(a.w)
	require.True(t, ok)
	dronePos := components.Drone.Get(entry).Position

	normal := a.spawn(cfg.EnemyNormal, offset(dronePos, 5, 0))
	boss := a.spawn(cfg.EnemyBoss, offset(dronePos, -5, 0))

	assert.Equal(t, 1, ResolveDroneKills(a.w))
	assert.False(t, a.w.Valid(normal))
	assert.True(t, a.w.Valid(boss))
	assert.Equal(t, KillScore(cfg.EnemyNormal, 1, KillWeapon), components.GetSession(a.w).Score)
}

func TestPowerUpsCollectedOnTouch(t *testing.T) {
	a := newArena(t, 11)
	missiles := components.GetAbilities(a.w).MissileCount
	factory.CreatePowerUp(a.w, cfg.PowerUpMissilePack, offset(a.player(), 10, 0))
	far := factory.CreatePowerUp(a.w, cfg.PowerUpHeal, offset(a.player(), 300, 0)).Entity()

	assert.Equal(t, 1, CollectPowerUps(a.w))
	assert.Equal(t, missiles+cfg.PowerUp.MissilePackSize, components.GetAbilities(a.w).MissileCount)
	assert.True(t, a.w.Valid(far))

	a.advance(cfg.PowerUp.Lifetime)
	UpdatePowerUps(a.w)
	assert.False(t, a.w.Valid(far))
}

func TestRollPowerUpKindCoversWeights(t *testing.T) {
	assert.Equal(t, cfg.PowerUpMissilePack, rollPowerUpKind(0))
	assert.Equal(t, cfg.PowerUpNova, rollPowerUpKind(0.999))
	seen := map[cfg.PowerUpKind]bool{}
	for i := 0; i < 100; i++ {
		seen[rollPowerUpKind(float64(i)/100)] = true
	}
	assert.Len(t, seen, int(cfg.PowerUpKindCount))
}
