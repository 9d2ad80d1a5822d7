package systems

import (
	"testing"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/systems/factory"
	"github.com/automoto/glitchfire/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestIsRoundComplete(t *testing.T) {
	a := newArena(t, 1)
	wave := components.GetWave(a.w)

	assert.True(t, IsRoundComplete(a.w), "nothing scheduled and nothing alive")

	wave.EnemiesRemainingToSpawn = 1
	assert.False(t, IsRoundComplete(a.w))

	wave.EnemiesRemainingToSpawn = 0
	e := a.spawn(cfg.EnemyNormal, offset(a.player(), 400, 0))
	assert.False(t, IsRoundComplete(a.w))

	KillEnemy(a.w, e, KillWeapon)
	assert.True(t, IsRoundComplete(a.w))
}

func TestUpdateRoundOpensIntermission(t *testing.T) {
	a := newArena(t, 2)
	CreateEnemyWave(a.w, 1)
	UpdateRound(a.w)
	assert.Equal(t, components.PhaseCombat, components.GetWave(a.w).Phase)

	components.GetWave(a.w).EnemiesRemainingToSpawn = 0
	UpdateRound(a.w)
	assert.Equal(t, components.PhaseIntermission, components.GetWave(a.w).Phase)
	assert.Equal(t, 1, components.Round(a.w), "the round only advances when the store closes")
}

func TestStartNextRound(t *testing.T) {
	a := newArena(t, 3)
	assert.ErrorIs(t, StartNextRound(a.w), ErrRoundInProgress)

	components.GetWave(a.w).Phase = components.PhaseIntermission
	require.NoError(t, StartNextRound(a.w))

	wave := components.GetWave(a.w)
	assert.Equal(t, 2, wave.CurrentRound)
	assert.Equal(t, components.PhaseCombat, wave.Phase)
	assert.Equal(t, 6, wave.TotalEnemiesForRound)
	assert.Equal(t, 6, wave.EnemiesRemainingToSpawn)

	assert.ErrorIs(t, StartNextRound(a.w), ErrRoundInProgress)
}

func TestWaveSizes(t *testing.T) {
	a := newArena(t, 4)

	CreateEnemyWave(a.w, 1)
	wave := components.GetWave(a.w)
	assert.Equal(t, 6, wave.TotalEnemiesForRound)
	assert.Equal(t, 0, wave.BossesRemaining)

	CreateEnemyWave(a.w, 3)
	assert.Equal(t, 9, wave.TotalEnemiesForRound)
	assert.Equal(t, 1, wave.BossesRemaining)
	assert.Equal(t, 9, wave.EnemiesRemainingToSpawn)
	assert.Equal(t, components.Now(a.w), wave.LastSpawnTime)
}

func TestClearAllRemovesEverythingWithoutScore(t *testing.T) {
	a := newArena(t, 5)
	a.spawn(cfg.EnemyNormal, offset(a.player(), 300, 0))
	destroyer := a.spawn(cfg.EnemyDestroyer, offset(a.player(), -300, 0))
	FireEnemyMissile(a.w, destroyer, offset(a.player(), -250, 0), a.player())
	a.parkedBullet(offset(a.player(), 0, 200), 10, 0)
	factory.CreatePowerUp(a.w, cfg.PowerUpHeal, offset(a.player(), 0, -200))
	factory.CreateEMPField(a.w, a.player())
	require.True(t, SpawnDrone(a.w))

	ClearAll(a.w)

	for _, tag := range []*donburi.ComponentType[donburi.Tag]{
		tags.Enemy, tags.Bullet, tags.Missile, tags.EnemyMissile, tags.EMPField, tags.PowerUp, tags.Drone,
	} {
		n := 0
		tag.Each(a.w, func(*donburi.Entry) { n++ })
		assert.Zero(t, n)
	}
	assert.Equal(t, 0, components.GetSession(a.w).Score)
	_, ok := PlayerEntry(a.w)
	assert.True(t, ok)
}

func TestRestartRunResetsLoadout(t *testing.T) {
	a := newArena(t, 6)
	upgrades := components.GetUpgrades(a.w)
	upgrades.BulletDamage = 40
	upgrades.ShieldUnlocked = true
	components.GetSession(a.w).Score = 9000
	components.GetAbilities(a.w).MissileCount = 0
	entry, _ := PlayerEntry(a.w)
	components.Health.Get(entry).Current = 0
	components.Object.Get(entry).SetCenter(offset(a.player(), 200, 0))
	components.GetWave(a.w).Phase = components.PhaseGameOver
	a.spawn(cfg.EnemyBoss, offset(a.player(), 300, 0))

	RestartRun(a.w, 1)

	assert.Equal(t, factory.NewUpgrades(), *components.GetUpgrades(a.w))
	assert.Equal(t, 0, components.GetSession(a.w).Score)
	assert.Equal(t, cfg.Missile.StartingCount, components.GetAbilities(a.w).MissileCount)
	assert.Equal(t, cfg.Player.Health, a.playerHealth())
	assert.Equal(t, arenaCenter(), a.player())
	assert.Equal(t, 0, ActiveEnemyCount(a.w))

	wave := components.GetWave(a.w)
	assert.Equal(t, components.PhaseCombat, wave.Phase)
	assert.Equal(t, 1, wave.CurrentRound)
	assert.Equal(t, 6, wave.EnemiesRemainingToSpawn)
}

func TestGameOverMenu(t *testing.T) {
	a := newArena(t, 7)
	components.GetWave(a.w).Phase = components.PhaseGameOver

	a.press(cfg.ActionMenuDown)
	UpdateGameOverMenu(a.w)
	assert.Equal(t, components.GameOverQuit, components.GetMenu(a.w).GameOverOption)

	a.release()
	a.press(cfg.ActionMenuSelect)
	UpdateGameOverMenu(a.w)
	assert.True(t, components.GetMenu(a.w).QuitRequested)

	a.release()
	a.press(cfg.ActionContinue)
	UpdateGameOverMenu(a.w)
	assert.Equal(t, components.PhaseCombat, components.GetWave(a.w).Phase)
	assert.False(t, components.GetMenu(a.w).QuitRequested)
}
