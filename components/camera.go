package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the 2D camera transform. Scale is applied uniformly on X and
// Y; Z is kept for parity with a 3D transform and stays at 1.
type CameraData struct {
	Position math.Vec2
	Scale    math.Vec2
	ScaleZ   float64
}

var Camera = donburi.NewComponentType[CameraData]()
