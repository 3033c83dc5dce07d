package tags

import "github.com/yohamta/donburi"

var (
	Camera2D = donburi.NewTag().SetName("Camera2D")
	Panel    = donburi.NewTag().SetName("Panel")
	Label    = donburi.NewTag().SetName("Label")
)
