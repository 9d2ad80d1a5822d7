package components

import (
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/yohamta/donburi"
)

// InputState is one poll of the input device.
type InputState struct {
	Pressed [cfg.ActionCount]bool
	Aim     gamemath.Vec2 // world position
}

// InputSource is polled once per tick by the simulation.
type InputSource interface {
	Poll() InputState
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Source   InputSource
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Aim      gamemath.Vec2
}

var Input = donburi.NewComponentType[InputData]()
