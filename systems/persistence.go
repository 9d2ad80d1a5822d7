package systems

import (
	"math"
	"time"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/yohamta/donburi"
)

// Snapshot is the run state saved between sessions. Times are milliseconds of
// simulation time; ShieldLastUsed is negative when the shield has never been used.
type Snapshot struct {
	Score               int     `json:"score"`
	PlayerHealth        int     `json:"playerHealth"`
	MaxHealth           int     `json:"maxHealth"`
	CurrentRound        int     `json:"currentRound"`
	BulletDamage        int     `json:"bulletDamage"`
	MoveSpeed           float64 `json:"moveSpeed"`
	ShieldUnlocked      bool    `json:"shieldUnlocked"`
	ShieldLastUsed      int64   `json:"shieldLastUsed"`
	PiercingLevel       int     `json:"piercingLevel"`
	SuperBulletLevel    int     `json:"superBulletLevel"`
	GlitchedBulletLevel int     `json:"glitchedBulletLevel"`
	MissileCount        int     `json:"missileCount"`
	SavedAt             int64   `json:"savedAt"`
}

// CaptureSnapshot records the persistent part of the run.
func CaptureSnapshot(w donburi.World) Snapshot {
	upgrades := components.GetUpgrades(w)
	abilities := components.GetAbilities(w)
	now := components.Now(w)

	s := Snapshot{
		Score:               components.GetSession(w).Score,
		CurrentRound:        components.Round(w),
		BulletDamage:        upgrades.BulletDamage,
		MoveSpeed:           upgrades.MoveSpeed,
		ShieldUnlocked:      upgrades.ShieldUnlocked,
		ShieldLastUsed:      -1,
		PiercingLevel:       upgrades.PiercingLevel,
		SuperBulletLevel:    upgrades.SuperBulletLevel,
		GlitchedBulletLevel: upgrades.GlitchedBulletLevel,
		MissileCount:        abilities.MissileCount,
		SavedAt:             now.Milliseconds(),
	}
	if abilities.Shield.Used {
		s.ShieldLastUsed = abilities.Shield.LastUsed.Milliseconds()
	}
	if entry, ok := PlayerEntry(w); ok {
		hp := components.Health.Get(entry)
		s.PlayerHealth = hp.Current
		s.MaxHealth = hp.Max
	}
	return s
}

// RestoreSnapshot loads a saved run into the intermission after its recorded round,
// so the store opens before the next wave. Out-of-range values are clamped.
func RestoreSnapshot(w donburi.World, s Snapshot) {
	ClearAll(w)
	now := components.Now(w)

	upgrades := components.GetUpgrades(w)
	*upgrades = components.UpgradesData{
		BulletDamage:        max(cfg.Bullet.BaseDamage, s.BulletDamage),
		MoveSpeed:           math.Max(cfg.Player.Speed, s.MoveSpeed),
		ShieldUnlocked:      s.ShieldUnlocked,
		PiercingLevel:       clampLevel(cfg.UpgradePiercing, s.PiercingLevel),
		SuperBulletLevel:    clampLevel(cfg.UpgradeSuperBullet, s.SuperBulletLevel),
		GlitchedBulletLevel: clampLevel(cfg.UpgradeGlitched, s.GlitchedBulletLevel),
	}

	maxHealth := max(cfg.Player.Health, s.MaxHealth)
	upgrades.Levels[cfg.UpgradeDamage] = clampLevel(cfg.UpgradeDamage, (upgrades.BulletDamage-cfg.Bullet.BaseDamage)/cfg.Store.DamagePerLevel)
	upgrades.Levels[cfg.UpgradeSpeed] = clampLevel(cfg.UpgradeSpeed, int(math.Round((upgrades.MoveSpeed-cfg.Player.Speed)/cfg.Store.SpeedPerLevel)))
	upgrades.Levels[cfg.UpgradeHealth] = clampLevel(cfg.UpgradeHealth, (maxHealth-cfg.Player.Health)/cfg.Store.HealthPerLevel)
	upgrades.Levels[cfg.UpgradePiercing] = upgrades.PiercingLevel
	upgrades.Levels[cfg.UpgradeSuperBullet] = upgrades.SuperBulletLevel
	upgrades.Levels[cfg.UpgradeGlitched] = upgrades.GlitchedBulletLevel
	if upgrades.ShieldUnlocked {
		upgrades.Levels[cfg.UpgradeShield] = 1
	}

	abilities := components.GetAbilities(w)
	abilities.MissileCount = max(0, s.MissileCount)
	abilities.Shield = components.Cooldown{Duration: cfg.Shield.Cooldown}
	if s.ShieldLastUsed >= 0 && s.SavedAt >= s.ShieldLastUsed {
		// Rebase onto this session's clock, keeping the elapsed time since use.
		elapsed := time.Duration(s.SavedAt-s.ShieldLastUsed) * time.Millisecond
		abilities.Shield.LastUsed = now - elapsed
		abilities.Shield.Used = true
	}

	session := components.GetSession(w)
	*session = components.SessionData{Score: max(0, s.Score)}

	if entry, ok := PlayerEntry(w); ok {
		hp := components.Health.Get(entry)
		hp.Max = maxHealth
		hp.Current = min(maxHealth, max(1, s.PlayerHealth))
	}

	wave := components.GetWave(w)
	*wave = components.WaveData{
		CurrentRound:  max(1, s.CurrentRound),
		Phase:         components.PhaseIntermission,
		LastSpawnTime: now,
	}
	*components.GetMenu(w) = components.MenuData{}
	reportHUD(w)
}

func clampLevel(id cfg.UpgradeID, level int) int {
	return min(cfg.Store.Upgrades[id].MaxLevel, max(0, level))
}
