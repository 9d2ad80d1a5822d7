package systems

import (
	"github.com/automoto/glitchfire/components"
	"github.com/yohamta/donburi"
)

// UpdateClock samples the clock source. Every timer in the simulation compares against Now.
func UpdateClock(w donburi.World) {
	clock := components.GetClock(w)
	if clock.Source != nil {
		clock.Now = clock.Source()
	}
	clock.Tick++
}
