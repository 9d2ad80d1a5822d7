// Package input polls ebiten devices into the simulation's InputState.
package input

import (
	"math"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
)

// View converts between screen and world space.
type View interface {
	ScreenToWorld(x, y float64) gamemath.Vec2
	// Focus is the world point the right stick aims from, normally the player.
	Focus() gamemath.Vec2
}

// Device reads keyboard, mouse and standard-layout gamepads.
type Device struct {
	config     Config
	view       View
	gamepadIDs []ebiten.GamepadID
}

func NewDevice(config Config, view View) *Device {
	return &Device{config: config, view: view}
}

// Poll implements components.InputSource.
func (d *Device) Poll() components.InputState {
	var state components.InputState
	d.gamepadIDs = ebiten.AppendGamepadIDs(d.gamepadIDs[:0])

	for actionID, binding := range d.config.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				state.Pressed[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				state.Pressed[actionID] = true
			}
		}
		for _, gpID := range d.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					state.Pressed[actionID] = true
				}
			}
		}
	}

	d.mergeLeftStick(&state)
	state.Aim = d.aim()
	return state
}

// mergeLeftStick folds the analog stick into the directional actions.
func (d *Device) mergeLeftStick(state *components.InputState) {
	deadzone := d.config.AnalogDeadzone
	for _, gpID := range d.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h < -deadzone {
			state.Pressed[cfg.ActionMoveLeft] = true
		}
		if h > deadzone {
			state.Pressed[cfg.ActionMoveRight] = true
		}
		if v < -deadzone {
			state.Pressed[cfg.ActionMoveUp] = true
			state.Pressed[cfg.ActionMenuUp] = true
		}
		if v > deadzone {
			state.Pressed[cfg.ActionMoveDown] = true
			state.Pressed[cfg.ActionMenuDown] = true
		}
	}
}

// aim prefers a deflected right stick, then the mouse cursor.
func (d *Device) aim() gamemath.Vec2 {
	for _, gpID := range d.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		stick := gamemath.Vec2{
			X: ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal),
			Y: ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical),
		}
		if math.Abs(stick.X) > d.config.AnalogDeadzone || math.Abs(stick.Y) > d.config.AnalogDeadzone {
			return d.view.Focus().Add(stick.Normalize().Scale(d.config.StickAimDistance))
		}
	}

	x, y := ebiten.CursorPosition()
	return d.view.ScreenToWorld(float64(x), float64(y))
}
