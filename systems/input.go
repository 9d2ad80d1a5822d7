package systems

import (
	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/yohamta/donburi"
)

// UpdateInput polls the input source once and keeps the previous frame for edge detection.
func UpdateInput(w donburi.World) {
	input := components.GetInput(w)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	if input.Source == nil {
		return
	}
	state := input.Source.Poll()
	input.Current = state.Pressed
	input.Aim = state.Aim
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
