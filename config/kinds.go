package config

// PowerUpKind identifies a pickup dropped by killed enemies.
type PowerUpKind int

const (
	PowerUpMissilePack PowerUpKind = iota
	PowerUpHeal
	PowerUpDrone
	PowerUpNova
	PowerUpKindCount // Must be last - used for array sizing
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpMissilePack:
		return "Missiles"
	case PowerUpHeal:
		return "Heal"
	case PowerUpDrone:
		return "Drone"
	case PowerUpNova:
		return "Nova"
	}
	return "Unknown"
}

// UpgradeID identifies a store item.
type UpgradeID int

const (
	UpgradeDamage UpgradeID = iota
	UpgradeSpeed
	UpgradeHealth
	UpgradePiercing
	UpgradeSuperBullet
	UpgradeGlitched
	UpgradeShield
	UpgradeMissiles
	UpgradeCount // Must be last - used for array sizing
)

// EffectKind identifies a one-shot presentation effect.
type EffectKind int

const (
	EffectExplosion EffectKind = iota
	EffectKnockbackWave
	EffectEMPPulse
	EffectNova
	EffectTeleport
	EffectShotDown
	EffectPickup
)
