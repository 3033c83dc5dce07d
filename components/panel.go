package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// PanelData is the centered background container of the UI. Sizes are
// fractions of the UI viewport.
type PanelData struct {
	WidthPercent    float64
	HeightPercent   float64
	BackgroundColor color.RGBA
}

var Panel = donburi.NewComponentType[PanelData]()
