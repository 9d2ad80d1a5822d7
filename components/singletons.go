package components

import (
	"time"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// The game entity carries all per-run singleton state. These helpers panic when
// it is missing, as does MustFirst.

func GetWave(w donburi.World) *WaveData {
	return Wave.Get(Wave.MustFirst(w))
}

func GetAbilities(w donburi.World) *AbilitiesData {
	return Abilities.Get(Abilities.MustFirst(w))
}

func GetUpgrades(w donburi.World) *UpgradesData {
	return Upgrades.Get(Upgrades.MustFirst(w))
}

func GetSession(w donburi.World) *SessionData {
	return Session.Get(Session.MustFirst(w))
}

func GetClock(w donburi.World) *ClockData {
	return Clock.Get(Clock.MustFirst(w))
}

func GetRandom(w donburi.World) *RandomData {
	return Random.Get(Random.MustFirst(w))
}

func GetInput(w donburi.World) *InputData {
	return Input.Get(Input.MustFirst(w))
}

func GetMenu(w donburi.World) *MenuData {
	return Menu.Get(Menu.MustFirst(w))
}

func GetSpace(w donburi.World) *resolv.Space {
	return Space.Get(Space.MustFirst(w))
}

// Now returns the current simulation time.
func Now(w donburi.World) time.Duration {
	return GetClock(w).Now
}

// Round returns the current round number.
func Round(w donburi.World) int {
	return GetWave(w).CurrentRound
}
