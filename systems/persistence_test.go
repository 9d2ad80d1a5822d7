package systems

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	src := openStore(t, 100000)
	require.NoError(t, Purchase(src.w, cfg.UpgradeDamage))
	require.NoError(t, Purchase(src.w, cfg.UpgradeHealth))
	require.NoError(t, Purchase(src.w, cfg.UpgradePiercing))
	require.NoError(t, Purchase(src.w, cfg.UpgradeShield))
	src.setRound(4)
	entry, _ := PlayerEntry(src.w)
	components.Health.Get(entry).Current = 42

	snap := CaptureSnapshot(src.w)
	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"currentRound":4`)
	assert.Contains(t, string(raw), `"shieldLastUsed":-1`)

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(raw, &decoded))

	dst := newArena(t, 2)
	dst.spawn(cfg.EnemyNormal, offset(dst.player(), 300, 0))
	RestoreSnapshot(dst.w, decoded)

	assert.Equal(t, components.GetSession(src.w).Score, components.GetSession(dst.w).Score)
	assert.Equal(t, *components.GetUpgrades(src.w), *components.GetUpgrades(dst.w))
	assert.Equal(t, 42, dst.playerHealth())
	dstEntry, _ := PlayerEntry(dst.w)
	assert.Equal(t, cfg.Player.Health+cfg.Store.HealthPerLevel, components.Health.Get(dstEntry).Max)
	assert.Equal(t, components.GetAbilities(src.w).MissileCount, components.GetAbilities(dst.w).MissileCount)

	wave := components.GetWave(dst.w)
	assert.Equal(t, 4, wave.CurrentRound)
	assert.Equal(t, components.PhaseIntermission, wave.Phase)
	assert.Zero(t, ActiveEnemyCount(dst.w))

	require.NoError(t, StartNextRound(dst.w))
	assert.Equal(t, 5, components.Round(dst.w))
}

func TestSnapshotRebasesShieldCooldown(t *testing.T) {
	src := newArena(t, 1)
	components.GetUpgrades(src.w).ShieldUnlocked = true
	require.True(t, ActivateShield(src.w))
	src.advance(5 * time.Second)
	snap := CaptureSnapshot(src.w)
	assert.Equal(t, int64(1000), snap.ShieldLastUsed)
	assert.Equal(t, int64(6000), snap.SavedAt)

	// The new session's clock starts over; the remaining cooldown carries across.
	dst := newArena(t, 2)
	RestoreSnapshot(dst.w, snap)
	shield := components.GetAbilities(dst.w).Shield
	now := components.Now(dst.w)
	assert.False(t, shield.Ready(now))
	assert.InDelta(t, 1-5.0/15.0, shield.RemainingFraction(now), 1e-9)

	dst.advance(cfg.Shield.Cooldown - 5*time.Second)
	assert.True(t, components.GetAbilities(dst.w).Shield.Ready(components.Now(dst.w)))
}

func TestRestoreClampsBadValues(t *testing.T) {
	a := newArena(t, 3)
	RestoreSnapshot(a.w, Snapshot{
		Score:          -50,
		PlayerHealth:   0,
		MaxHealth:      10,
		CurrentRound:   0,
		PiercingLevel:  99,
		ShieldLastUsed: -1,
		MissileCount:   -3,
	})

	upgrades := components.GetUpgrades(a.w)
	assert.Equal(t, cfg.Bullet.BaseDamage, upgrades.BulletDamage)
	assert.Equal(t, cfg.Player.Speed, upgrades.MoveSpeed)
	assert.Equal(t, cfg.Store.Upgrades[cfg.UpgradePiercing].MaxLevel, upgrades.PiercingLevel)
	assert.Zero(t, components.GetSession(a.w).Score)
	assert.Zero(t, components.GetAbilities(a.w).MissileCount)
	assert.Equal(t, 1, a.playerHealth())
	assert.Equal(t, 1, components.Round(a.w))
	assert.True(t, components.GetAbilities(a.w).Shield.Ready(components.Now(a.w)))
}
