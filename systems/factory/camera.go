package factory

import (
	"github.com/automoto/pixelzoom/archetypes"
	"github.com/automoto/pixelzoom/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the 2D camera at the origin with unit scale.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Scale:  math.Vec2{X: 1, Y: 1},
		ScaleZ: 1,
	})
	return camera
}

// CreateUIScale spawns the UI scale resource at scale 1.
func CreateUIScale(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.UIScale.Spawn(ecs)
	components.UIScale.SetValue(entry, components.UIScaleData{Scale: 1})
	return entry
}
