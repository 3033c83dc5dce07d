package systems

import (
	"github.com/automoto/pixelzoom/components"
	"github.com/automoto/pixelzoom/tags"
	"github.com/automoto/pixelzoom/viewscale"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// NewUpdateViewScale creates the system that pushes zoom changes into the
// camera transform and the UI scale. It must run after the input step.
func NewUpdateViewScale(ctrl *viewscale.Controller, logger *log.Logger) ecs.System {
	return func(e *ecs.ECS) {
		ApplyViewScale(e.World, ctrl, logger)
	}
}

// ApplyViewScale applies the controller's pending change, if any, and
// reports whether anything was written.
func ApplyViewScale(w donburi.World, ctrl *viewscale.Controller, logger *log.Logger) bool {
	rs, ok := ctrl.TakeChange()
	if !ok {
		return false
	}

	logger.Info("pixel scale", "level", ctrl.Level())

	ui := GetOrCreateUIScale(w)
	ui.Scale = rs.UI
	ui.Generation++

	tags.Camera2D.Each(w, func(entry *donburi.Entry) {
		camera := components.Camera.Get(entry)
		camera.Scale = math.Vec2{X: rs.Camera, Y: rs.Camera}
		camera.ScaleZ = 1
	})
	return true
}

// GetOrCreateUIScale returns the singleton UIScale component, creating if needed
func GetOrCreateUIScale(w donburi.World) *components.UIScaleData {
	entry, ok := components.UIScale.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.UIScale))
		components.UIScale.SetValue(entry, components.UIScaleData{Scale: 1})
	}
	return components.UIScale.Get(entry)
}
