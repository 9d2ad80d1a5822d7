package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/yohamta/donburi"
)

var (
	ErrStoreClosed       = errors.New("store is only open between rounds")
	ErrUnknownUpgrade    = errors.New("unknown upgrade")
	ErrMaxLevel          = errors.New("upgrade at max level")
	ErrInsufficientScore = errors.New("not enough score")
)

// UpgradeCost is the price of the next level of an upgrade already bought level times.
func UpgradeCost(id cfg.UpgradeID, level int) int {
	u := cfg.Store.Upgrades[id]
	return u.BaseCost + u.CostStep*level
}

// Purchase spends score on one level of an upgrade. Only allowed during the intermission.
func Purchase(w donburi.World, id cfg.UpgradeID) error {
	if components.GetWave(w).Phase != components.PhaseIntermission {
		return ErrStoreClosed
	}
	if id < 0 || id >= cfg.UpgradeCount {
		return ErrUnknownUpgrade
	}

	upgrades := components.GetUpgrades(w)
	session := components.GetSession(w)
	level := upgrades.Levels[id]
	if level >= cfg.Store.Upgrades[id].MaxLevel {
		return ErrMaxLevel
	}
	cost := UpgradeCost(id, level)
	if session.Score < cost {
		return ErrInsufficientScore
	}

	session.Score -= cost
	upgrades.Levels[id]++
	applyUpgrade(w, id)
	session.HUDDirty = true
	log.Printf("Purchased %s level %d for %d", cfg.Store.Upgrades[id].Name, upgrades.Levels[id], cost)
	reportHUD(w)
	return nil
}

func applyUpgrade(w donburi.World, id cfg.UpgradeID) {
	upgrades := components.GetUpgrades(w)
	switch id {
	case cfg.UpgradeDamage:
		upgrades.BulletDamage += cfg.Store.DamagePerLevel
	case cfg.UpgradeSpeed:
		upgrades.MoveSpeed += cfg.Store.SpeedPerLevel
	case cfg.UpgradeHealth:
		if entry, ok := PlayerEntry(w); ok {
			hp := components.Health.Get(entry)
			hp.Max += cfg.Store.HealthPerLevel
			hp.Current += cfg.Store.HealthPerLevel
		}
	case cfg.UpgradePiercing:
		upgrades.PiercingLevel++
	case cfg.UpgradeSuperBullet:
		upgrades.SuperBulletLevel++
	case cfg.UpgradeGlitched:
		upgrades.GlitchedBulletLevel++
	case cfg.UpgradeShield:
		upgrades.ShieldUnlocked = true
	case cfg.UpgradeMissiles:
		components.GetAbilities(w).MissileCount += cfg.Store.MissilesPerSale
	}
}

// UpdateStoreMenu drives the intermission store. The last row starts the next round.
func UpdateStoreMenu(w donburi.World) {
	input := components.GetInput(w)
	menu := components.GetMenu(w)
	rows := int(cfg.UpgradeCount) + 1

	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		menu.StoreIndex = (menu.StoreIndex - 1 + rows) % rows
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		menu.StoreIndex = (menu.StoreIndex + 1) % rows
	}

	if GetAction(input, cfg.ActionContinue).JustPressed {
		_ = StartNextRound(w)
		return
	}
	if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
		return
	}
	if menu.StoreIndex == int(cfg.UpgradeCount) {
		_ = StartNextRound(w)
		return
	}

	id := cfg.UpgradeID(menu.StoreIndex)
	if err := Purchase(w, id); err != nil {
		menu.Message = fmt.Sprintf("%s: %v", cfg.Store.Upgrades[id].Name, err)
		return
	}
	menu.Message = fmt.Sprintf("Bought %s", cfg.Store.Upgrades[id].Name)
}

// UpdateGameOverMenu offers a retry from round one or quitting.
func UpdateGameOverMenu(w donburi.World) {
	input := components.GetInput(w)
	menu := components.GetMenu(w)

	if GetAction(input, cfg.ActionMenuUp).JustPressed || GetAction(input, cfg.ActionMenuDown).JustPressed {
		if menu.GameOverOption == components.GameOverRetry {
			menu.GameOverOption = components.GameOverQuit
		} else {
			menu.GameOverOption = components.GameOverRetry
		}
	}

	if GetAction(input, cfg.ActionContinue).JustPressed {
		RestartRun(w, 1)
		return
	}
	if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
		return
	}
	switch menu.GameOverOption {
	case components.GameOverRetry:
		RestartRun(w, 1)
	case components.GameOverQuit:
		menu.QuitRequested = true
	}
}
