package factory

import (
	cfg "github.com/automoto/pixelzoom/config"
	"github.com/yohamta/donburi/ecs"
)

// CreateScene builds the static scene: camera, UI scale resource, the panel
// and its labels. It runs once at startup.
func CreateScene(ecs *ecs.ECS) {
	CreateCamera(ecs)
	CreateUIScale(ecs)

	panel := CreatePanel(ecs, cfg.Panel)
	for i, lc := range cfg.Panel.Labels {
		CreateLabel(ecs, panel, lc, i)
	}
}
