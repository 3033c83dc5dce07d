package factory

import (
	"github.com/automoto/pixelzoom/archetypes"
	"github.com/automoto/pixelzoom/components"
	cfg "github.com/automoto/pixelzoom/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePanel spawns the centered background panel.
func CreatePanel(ecs *ecs.ECS, pc cfg.PanelConfig) *donburi.Entry {
	entry := archetypes.Panel.Spawn(ecs)
	components.Panel.SetValue(entry, components.PanelData{
		WidthPercent:    pc.WidthPercent,
		HeightPercent:   pc.HeightPercent,
		BackgroundColor: pc.BackgroundColor,
	})
	return entry
}

// CreateLabel spawns a text label laid out inside parent.
func CreateLabel(ecs *ecs.ECS, parent *donburi.Entry, lc cfg.LabelConfig, order int) *donburi.Entry {
	entry := archetypes.Label.Spawn(ecs)

	sections := make([]components.TextSection, 0, len(lc.Sections))
	for _, s := range lc.Sections {
		sections = append(sections, components.TextSection{
			Text:     s.Text,
			FontSize: s.FontSize,
			Color:    s.Color,
		})
	}

	components.Label.SetValue(entry, components.LabelData{
		Name:       lc.Name,
		Sections:   sections,
		Order:      order,
		TopPercent: lc.TopPercent,
		HasTop:     lc.HasTop,
	})
	components.Parent.SetValue(entry, components.ParentData{Parent: parent.Entity()})

	return entry
}
