package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical input action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionZoomIn
	ActionZoomOut
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Order in which just-pressed actions are turned into events
	Order []ActionID
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Order: []ActionID{ActionZoomIn, ActionZoomOut},
		Bindings: map[ActionID]InputBinding{
			ActionZoomIn: {
				Keys: []ebiten.Key{ebiten.KeyX},
				// Right bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionZoomOut: {
				Keys: []ebiten.Key{ebiten.KeyZ},
				// Left bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
		},
	}
}
