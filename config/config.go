package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// Config holds general window configuration
type Config struct {
	Title  string
	Width  int
	Height int
}

// ViewConfig contains zoom behavior configuration
type ViewConfig struct {
	InitialLevel int
	LogPrefix    string
}

// TextSectionConfig is one run of text inside a label
type TextSectionConfig struct {
	Text     string
	FontSize float64
	Color    color.RGBA
}

// LabelConfig describes a text label placed inside the panel
type LabelConfig struct {
	Name     string
	Sections []TextSectionConfig

	// TopPercent places the label's top edge at this fraction of the panel
	// height. Labels without it are centered vertically.
	TopPercent float64
	HasTop     bool
}

// PanelConfig contains the centered UI panel configuration
type PanelConfig struct {
	WidthPercent    float64
	HeightPercent   float64
	BackgroundColor color.RGBA
	Labels          []LabelConfig
}

// AssetConfig contains asset paths loaded at startup
type AssetConfig struct {
	FontPath string
}

// Global configuration instances
var C *Config
var View ViewConfig
var Panel PanelConfig
var Assets AssetConfig

// Font sizes in logical UI pixels
const (
	TitleFontSize = 8.0
	FontSize      = 6.0
)

// Shared RGBA color constants
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

func init() {
	C = &Config{
		Title:  "pixelzoom",
		Width:  1280,
		Height: 720,
	}

	View = ViewConfig{
		InitialLevel: 1,
		LogPrefix:    "pixelzoom",
	}

	Assets = AssetConfig{
		FontPath: "assets/fonts/Px437_IBM_CGA.ttf",
	}

	Panel = PanelConfig{
		WidthPercent:    0.9,
		HeightPercent:   0.9,
		BackgroundColor: Black,
		Labels: []LabelConfig{
			{
				Name: "title",
				Sections: []TextSectionConfig{
					{Text: "TITLE TEXT", FontSize: TitleFontSize, Color: Blue},
				},
				TopPercent: 0.30,
				HasTop:     true,
			},
			{
				Name: "password",
				Sections: []TextSectionConfig{
					{Text: "Password: ", FontSize: FontSize, Color: Red},
					{Text: "PASSWORD", FontSize: FontSize, Color: Red},
				},
				TopPercent: 0.35,
				HasTop:     true,
			},
			{
				Name: "loading",
				Sections: []TextSectionConfig{
					{Text: "LOADING", FontSize: FontSize, Color: White},
				},
			},
		},
	}
}
