package components

import "github.com/yohamta/donburi"

// UIScaleData is the singleton UI scale factor. Generation increments on
// every write so renderers can tell when to rebuild.
type UIScaleData struct {
	Scale      float64
	Generation int
}

var UIScale = donburi.NewComponentType[UIScaleData]()
