package systems

import (
	"testing"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/automoto/glitchfire/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestPierceBudget(t *testing.T) {
	assert.Equal(t, 0, PierceBudget(0))
	assert.Equal(t, cfg.Bullet.BasePenetration, PierceBudget(1))
	assert.Equal(t, cfg.Bullet.BasePenetration+cfg.Bullet.PenetrationPerLevel, PierceBudget(2))
	assert.Equal(t, cfg.Bullet.BasePenetration+4*cfg.Bullet.PenetrationPerLevel, PierceBudget(5))
}

func TestHandleHitSpendsBulletAfterBudget(t *testing.T) {
	tests := []struct {
		name  string
		level int
	}{
		{"no piercing", 0},
		{"level one", 1},
		{"level two", 2},
		{"level five", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &components.BulletData{Pierce: components.PierceState{Level: tt.level, Left: PierceBudget(tt.level)}}
			budget := PierceBudget(tt.level)
			for hit := 1; hit <= budget; hit++ {
				require.False(t, HandleHit(b, donburi.Entity(hit)), "spent early on hit %d", hit)
			}
			assert.True(t, HandleHit(b, donburi.Entity(budget+1)))
			assert.Len(t, b.HitEnemies, budget+1)
		})
	}
}

func TestLevelTwoBulletRemovedOnThirdEnemy(t *testing.T) {
	a := newArena(t, 1)
	base := offset(a.player(), 300, 0)

	// Three tough enemies stacked on the bullet.
	var enemies []donburi.Entity
	for i := 0; i < 3; i++ {
		enemies = append(enemies, a.spawnWithHealth(cfg.EnemyNormal, offset(base, float64(i), 0), 1000))
	}
	bullet := a.parkedBullet(base, 10, 2)

	hits := ResolveBulletHits(a.w)
	assert.Equal(t, 3, hits)
	assert.False(t, a.w.Valid(bullet), "bullet should be removed after its third enemy")
	for _, e := range enemies {
		assert.Equal(t, 990, a.health(e))
	}
}

func TestBulletNeverHitsSameEnemyTwice(t *testing.T) {
	a := newArena(t, 2)
	pos := offset(a.player(), 250, 0)
	enemy := a.spawnWithHealth(cfg.EnemyNormal, pos, 1000)
	bullet := a.parkedBullet(pos, 10, 5)

	for i := 0; i < 5; i++ {
		ResolveBulletHits(a.w)
	}
	require.True(t, a.w.Valid(bullet), "a piercing bullet with budget left stays alive")
	assert.Equal(t, 990, a.health(enemy))
}

func TestKillCreditedOnce(t *testing.T) {
	a := newArena(t, 3)
	pos := offset(a.player(), 0, 250)
	a.spawnWithHealth(cfg.EnemyNormal, pos, 10)
	a.parkedBullet(pos, 10, 0)
	a.parkedBullet(pos, 10, 0)

	ResolveBulletHits(a.w)

	session := components.GetSession(a.w)
	assert.Equal(t, 1, session.Kills)
	assert.Equal(t, KillScore(cfg.EnemyNormal, 1, KillWeapon), session.Score)
	assert.Equal(t, 0, ActiveEnemyCount(a.w))
	assert.Equal(t, 1, ActiveBulletCount(a.w), "the second bullet found nothing left to hit")
}

func TestApplyDamageReportsKillOnce(t *testing.T) {
	a := newArena(t, 4)
	e := a.spawnWithHealth(cfg.EnemyNormal, offset(a.player(), 300, 0), 15)

	assert.False(t, ApplyDamage(a.w, e, 10))
	assert.True(t, ApplyDamage(a.w, e, 10))
	assert.Equal(t, 0, a.health(e))
	assert.False(t, ApplyDamage(a.w, e, 10), "dead enemies take no more damage")
}

func TestShootRespectsPoolAndAim(t *testing.T) {
	a := newArena(t, 5)
	origin := a.player()

	assert.False(t, Shoot(a.w, origin, origin), "zero-length aim is rejected")

	for i := 0; i < cfg.Bullet.MaxPoolSize; i++ {
		require.True(t, Shoot(a.w, origin, offset(origin, 1, 0)))
	}
	assert.False(t, Shoot(a.w, origin, offset(origin, 1, 0)))
	assert.Equal(t, cfg.Bullet.MaxPoolSize, ActiveBulletCount(a.w))
}

func TestShootCriticalDamage(t *testing.T) {
	a := newArena(t, 6)
	withConfig(t, &cfg.Bullet.CritChancePerLevel, 1.0)
	components.GetUpgrades(a.w).SuperBulletLevel = 1

	require.True(t, Shoot(a.w, a.player(), offset(a.player(), 0, -1)))
	e, ok := tags.Bullet.First(a.w)
	require.True(t, ok)
	b := components.Bullet.Get(e)
	assert.True(t, b.Critical)
	assert.Equal(t, int(float64(cfg.Bullet.BaseDamage)*cfg.Bullet.CritMultiplier), b.Damage)
}

func TestCriticalHitStunsSurvivor(t *testing.T) {
	a := newArena(t, 7)
	pos := offset(a.player(), 250, 0)
	enemy := a.spawnWithHealth(cfg.EnemyNormal, pos, 100)
	bullet := a.parkedBullet(pos, 20, 0)
	components.Bullet.Get(a.w.Entry(bullet)).Critical = true

	ResolveBulletHits(a.w)
	e := components.Enemy.Get(a.w.Entry(enemy))
	assert.True(t, e.IsStunned(components.Now(a.w)))
	assert.True(t, e.IsFlashing(components.Now(a.w)))
}

func TestUpdateBulletsDropsOutOfRange(t *testing.T) {
	a := newArena(t, 8)
	far := a.parkedBullet(offset(a.player(), cfg.Bullet.MaxRange-1, 0), 10, 0)
	near := a.parkedBullet(offset(a.player(), 10, 0), 10, 0)
	components.Bullet.Get(a.w.Entry(far)).Speed = 5

	UpdateBullets(a.w)
	assert.False(t, a.w.Valid(far))
	assert.True(t, a.w.Valid(near))
}

func TestGlitchedBulletsLimitedByLevelAndTargets(t *testing.T) {
	a := newArena(t, 9)
	components.GetUpgrades(a.w).GlitchedBulletLevel = 2
	from := offset(a.player(), 300, 300)
	hit := a.spawn(cfg.EnemyNormal, from)

	// Only one other enemy in range: one shard.
	a.spawn(cfg.EnemyNormal, offset(from, 100, 0))
	assert.Equal(t, 1, CreateGlitchedBullets(a.w, from, hit))

	// Plenty of targets: capped by level.
	for i := 0; i < 4; i++ {
		a.spawn(cfg.EnemyNormal, offset(from, -50-float64(i)*40, 0))
	}
	assert.Equal(t, 2*cfg.Bullet.GlitchedPerLevel, CreateGlitchedBullets(a.w, from, hit))

	tags.Bullet.Each(a.w, func(e *donburi.Entry) {
		b := components.Bullet.Get(e)
		assert.Equal(t, components.BulletGlitched, b.Variant)
		assert.False(t, CanHitEnemy(b, hit), "shards never return to the enemy that spawned them")
	})
}

func TestGlitchedBulletsNeedHeadroom(t *testing.T) {
	a := newArena(t, 10)
	components.GetUpgrades(a.w).GlitchedBulletLevel = 3
	from := offset(a.player(), -300, 0)
	hit := a.spawn(cfg.EnemyNormal, from)
	for i := 0; i < 5; i++ {
		a.spawn(cfg.EnemyNormal, offset(from, 0, 40+float64(i)*40))
	}
	for i := 0; i < cfg.Bullet.MaxPoolSize-1; i++ {
		a.parkedBullet(gamemath.Vec2{X: 100, Y: 100}, 1, 0)
	}
	assert.Equal(t, 1, CreateGlitchedBullets(a.w, from, hit))
	assert.Equal(t, cfg.Bullet.MaxPoolSize, ActiveBulletCount(a.w))
}
