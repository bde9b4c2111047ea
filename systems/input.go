package systems

import (
	"github.com/automoto/thornwood/components"
	cfg "github.com/automoto/thornwood/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads into every Input component.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var current [cfg.ActionCount]bool
	method := pollDevices(&current, gamepadIDs)

	components.Input.Each(ecs.World, func(e *donburi.Entry) {
		input := components.Input.Get(e)
		Advance(input, current)
		if method >= 0 {
			input.LastInputMethod = method
		}
	})
}

// Advance shifts the current sample into Previous and stores the new one.
func Advance(input *components.InputData, current [cfg.ActionCount]bool) {
	input.Previous = input.Current
	input.Current = current
}

// pollDevices returns the device used this tick, or -1 when nothing was held.
func pollDevices(current *[cfg.ActionCount]bool, gamepads []ebiten.GamepadID) components.InputMethod {
	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepads {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Merge the left stick into horizontal movement
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			current[cfg.ActionMoveLeft] = true
			gamepadUsed = true
		}
		if horizontal > deadzone {
			current[cfg.ActionMoveRight] = true
			gamepadUsed = true
		}
	}

	switch {
	case gamepadUsed:
		return components.InputGamepad
	case keyboardUsed:
		return components.InputKeyboard
	}
	return -1
}
