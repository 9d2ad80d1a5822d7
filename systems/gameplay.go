package systems

import (
	"github.com/automoto/glitchfire/components"
	"github.com/yohamta/donburi"
)

// System advances one concern of the simulation by a tick.
type System func(w donburi.World)

// WithPhaseCheck wraps a system to run only during the given phase.
func WithPhaseCheck(phase components.Phase, system System) System {
	return func(w donburi.World) {
		if components.GetWave(w).Phase != phase {
			return
		}
		system(w)
	}
}

// WithGameplayChecks wraps a system to skip execution outside combat.
func WithGameplayChecks(system System) System {
	return WithPhaseCheck(components.PhaseCombat, system)
}
