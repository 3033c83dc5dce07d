// Package viewscale owns the integer zoom level of the demo and derives the
// camera and UI scale factors from it.
package viewscale

// MinLevel is the smallest zoom level the controller allows.
const MinLevel = 1

// Key is a discrete input event fed to the controller.
type Key int

const (
	// KeyNone is any key the controller ignores.
	KeyNone Key = iota
	// KeyZoomIn raises the zoom level by one.
	KeyZoomIn
	// KeyZoomOut lowers the zoom level by one, stopping at MinLevel.
	KeyZoomOut
)

func (k Key) String() string {
	switch k {
	case KeyZoomIn:
		return "zoom-in"
	case KeyZoomOut:
		return "zoom-out"
	}
	return "none"
}

// ZoomLevelChanged is reported when a key event actually moved the level.
type ZoomLevelChanged struct {
	From int
	To   int
}

// RenderScale is the pair of factors derived from a zoom level.
type RenderScale struct {
	UI     float64 // UI scale factor, equal to the level
	Camera float64 // camera transform scale on both axes, 1/level
}

// Apply maps a zoom level to its render scale.
func Apply(level int) RenderScale {
	if level < MinLevel {
		level = MinLevel
	}
	return RenderScale{
		UI:     float64(level),
		Camera: 1 / float64(level),
	}
}

// Controller holds the zoom level and the level the presentation layer last
// picked up.
type Controller struct {
	level   int
	applied int // 0 until the first TakeChange
}

// NewController returns a controller at MinLevel. The initial level counts as
// a change so the first frame applies it.
func NewController() *Controller {
	return &Controller{level: MinLevel}
}

// Level returns the current zoom level.
func (c *Controller) Level() int {
	return c.level
}

// Set moves the controller to level, clamped to MinLevel.
func (c *Controller) Set(level int) {
	if level < MinLevel {
		level = MinLevel
	}
	c.level = level
}

// OnKeyEvent applies one key event. The bool is false when the level did not
// move: unknown keys and zoom-out at MinLevel are no-ops.
func (c *Controller) OnKeyEvent(k Key) (ZoomLevelChanged, bool) {
	from := c.level
	switch k {
	case KeyZoomIn:
		c.level++
	case KeyZoomOut:
		if c.level > MinLevel {
			c.level--
		}
	}
	if c.level == from {
		return ZoomLevelChanged{}, false
	}
	return ZoomLevelChanged{From: from, To: c.level}, true
}

// HandleEvents feeds events in order and reports whether any of them changed
// the level.
func (c *Controller) HandleEvents(events []Key) bool {
	changed := false
	for _, k := range events {
		if _, ok := c.OnKeyEvent(k); ok {
			changed = true
		}
	}
	return changed
}

// Pending reports whether the level differs from the last applied one.
func (c *Controller) Pending() bool {
	return c.level != c.applied
}

// TakeChange returns the render scale for the current level if it differs
// from the last applied level, and marks it applied. Events that cancel out
// within a frame produce no change.
func (c *Controller) TakeChange() (RenderScale, bool) {
	if !c.Pending() {
		return RenderScale{}, false
	}
	c.applied = c.level
	return Apply(c.level), true
}
