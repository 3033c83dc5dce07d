package archetypes

import (
	"github.com/automoto/pixelzoom/components"
	cfg "github.com/automoto/pixelzoom/config"
	"github.com/automoto/pixelzoom/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Camera = newArchetype(
		tags.Camera2D,
		components.Camera,
	)
	UIScale = newArchetype(
		components.UIScale,
	)
	Panel = newArchetype(
		tags.Panel,
		components.Panel,
	)
	Label = newArchetype(
		tags.Label,
		components.Label,
		components.Parent,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
