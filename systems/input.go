package systems

import (
	"github.com/automoto/pixelzoom/components"
	cfg "github.com/automoto/pixelzoom/config"
	"github.com/automoto/pixelzoom/viewscale"
	"github.com/hajimehoshi/ebiten/v2"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// PollInput swaps the input buffers and records which actions are held this
// frame. The host calls it once per frame before stepping the scene.
func PollInput(input *components.InputData) {
	current := [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					current[actionID] = true
				}
			}
		}
	}

	RecordInput(input, current)
}

// RecordInput pushes one frame of pressed state into the input buffers.
func RecordInput(input *components.InputData, current [cfg.ActionCount]bool) {
	input.Previous = input.Current
	input.Current = current
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

// AppendKeyEvents appends one zoom key event per action that was just pressed
// this frame, in configured order.
func AppendKeyEvents(events []viewscale.Key, input *components.InputData) []viewscale.Key {
	for _, id := range cfg.Input.Order {
		if !GetAction(input, id).JustPressed {
			continue
		}
		if k := actionKey(id); k != viewscale.KeyNone {
			events = append(events, k)
		}
	}
	return events
}

func actionKey(id cfg.ActionID) viewscale.Key {
	switch id {
	case cfg.ActionZoomIn:
		return viewscale.KeyZoomIn
	case cfg.ActionZoomOut:
		return viewscale.KeyZoomOut
	}
	return viewscale.KeyNone
}
