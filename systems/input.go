package systems

import (
	"github.com/automoto/deal-closer/components"
	cfg "github.com/automoto/deal-closer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputSource returns the held state of every action for this tick.
type InputSource func() [cfg.ActionCount]bool

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// NewUpdateInput returns a system that samples source once per tick.
// Must run BEFORE UpdatePlayer in the system order.
func NewUpdateInput(source InputSource) ecs.System {
	return func(e *ecs.ECS) {
		getOrCreateInput(e).Advance(source())
	}
}

// UpdateInput polls ebiten keyboard and gamepad bindings.
func UpdateInput(e *ecs.ECS) {
	getOrCreateInput(e).Advance(PollInput())
}

// PollInput reads the configured key and gamepad bindings.
func PollInput() [cfg.ActionCount]bool {
	var held [cfg.ActionCount]bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				held[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					held[actionID] = true
				}
			}
		}
	}

	// Merge the left stick into movement
	left, right := getAnalogStickState(gamepadIDs)
	held[cfg.ActionMoveLeft] = held[cfg.ActionMoveLeft] || left
	held[cfg.ActionMoveRight] = held[cfg.ActionMoveRight] || right

	return held
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
	}
	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the state of one action this tick.
func GetAction(e *ecs.ECS, id cfg.ActionID) components.ActionState {
	return getOrCreateInput(e).Action(id)
}
