package systems

import (
	"testing"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestChainFreezeClusterFreezesEachOnce(t *testing.T) {
	withConfig(t, &cfg.EMP.ChainChance, 1.0)
	a := newArena(t, 1)
	center := gamemath.Vec2{X: 300, Y: 300}

	var cluster []donburi.Entity
	for i := 0; i < 5; i++ {
		cluster = append(cluster, a.spawn(cfg.EnemyNormal, offset(center, float64(i*20), 0)))
	}

	assert.Equal(t, len(cluster), ChainFreeze(a.w, center))
	for _, e := range cluster {
		enemy := components.Enemy.Get(a.w.Entry(e))
		assert.True(t, enemy.Frozen)
		assert.Equal(t, components.Now(a.w)+cfg.EMP.FreezeDuration, enemy.FrozenUntil)
	}

	assert.Zero(t, ChainFreeze(a.w, center), "frozen enemies do not seed another chain")
}

func TestChainFreezeDepthBound(t *testing.T) {
	withConfig(t, &cfg.EMP.ChainChance, 1.0)
	a := newArena(t, 2)

	var line []donburi.Entity
	for i := 0; i < 10; i++ {
		line = append(line, a.spawn(cfg.EnemyNormal, gamemath.Vec2{X: 350 + 100*float64(i), Y: 500}))
	}

	// Only the first enemy is inside the field; each hop reaches just the next one.
	assert.Equal(t, cfg.EMP.MaxChainDepth+1, ChainFreeze(a.w, gamemath.Vec2{X: 100, Y: 500}))
	for i, e := range line {
		assert.Equal(t, i <= cfg.EMP.MaxChainDepth, components.Enemy.Get(a.w.Entry(e)).Frozen, "enemy %d", i)
	}
}

func TestChainFreezeNeverSpreadsAtZeroChance(t *testing.T) {
	withConfig(t, &cfg.EMP.ChainChance, 0.0)
	a := newArena(t, 3)
	a.spawn(cfg.EnemyNormal, gamemath.Vec2{X: 350, Y: 500})
	a.spawn(cfg.EnemyNormal, gamemath.Vec2{X: 450, Y: 500})

	assert.Equal(t, 1, ChainFreeze(a.w, gamemath.Vec2{X: 100, Y: 500}))
}

func TestFrozenEnemiesHoldStillUntilThaw(t *testing.T) {
	a := newArena(t, 4)
	pos := offset(a.player(), 200, 0)
	e := a.spawn(cfg.EnemyNormal, pos)
	ChainFreeze(a.w, pos)

	UpdateEnemies(a.w)
	got, _ := CenterOf(a.w, e)
	assert.Equal(t, pos, got)

	a.advance(cfg.EMP.FreezeDuration)
	UpdateEnemies(a.w)
	got, _ = CenterOf(a.w, e)
	assert.False(t, components.Enemy.Get(a.w.Entry(e)).Frozen)
	assert.Less(t, got.Dist(a.player()), pos.Dist(a.player()))
}

func TestDeployEMPLimits(t *testing.T) {
	a := newArena(t, 5)

	require.NoError(t, DeployEMP(a.w))
	assert.ErrorIs(t, DeployEMP(a.w), ErrEMPCooldown)

	a.advance(cfg.EMP.Cooldown)
	require.NoError(t, DeployEMP(a.w))
	assert.Equal(t, cfg.EMP.MaxFields, ActiveEMPFieldCount(a.w))

	a.advance(cfg.EMP.Cooldown)
	assert.ErrorIs(t, DeployEMP(a.w), ErrEMPCapacity)

	UpdateEMPFields(a.w)
	assert.Zero(t, ActiveEMPFieldCount(a.w), "both fields outlived their lifetime")
	assert.NoError(t, DeployEMP(a.w))
}

func TestEMPFieldPulsesOnInterval(t *testing.T) {
	withConfig(t, &cfg.EMP.ChainChance, 0.0)
	a := newArena(t, 6)
	require.NoError(t, DeployEMP(a.w))
	entry, ok := components.EMPField.First(a.w)
	require.True(t, ok)
	field := components.EMPField.Get(entry)

	UpdateEMPFields(a.w)
	assert.Equal(t, 1, field.Pulses)
	UpdateEMPFields(a.w)
	assert.Equal(t, 1, field.Pulses)

	e := a.spawn(cfg.EnemyNormal, offset(a.player(), 100, 0))
	a.advance(cfg.EMP.PulseInterval)
	UpdateEMPFields(a.w)
	assert.Equal(t, 2, field.Pulses)
	assert.True(t, components.Enemy.Get(a.w.Entry(e)).Frozen)
}
