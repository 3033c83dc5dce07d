package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/pixelzoom/config"
	"github.com/automoto/pixelzoom/systems"
	"github.com/automoto/pixelzoom/systems/factory"
	"github.com/automoto/pixelzoom/ui"
	"github.com/automoto/pixelzoom/viewscale"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ZoomScene shows the panel and lets the player change the pixel scale.
type ZoomScene struct {
	ecs    *ecs.ECS
	ctrl   *viewscale.Controller
	view   *ui.ViewUI
	logger *log.Logger

	// events for the frame being stepped
	events []viewscale.Key
	once   sync.Once
}

// NewZoomScene creates the scene. view may be nil to run without rendering.
func NewZoomScene(view *ui.ViewUI, logger *log.Logger) *ZoomScene {
	return &ZoomScene{
		ctrl:   viewscale.NewController(),
		view:   view,
		logger: logger,
	}
}

// Controller returns the scene's zoom controller.
func (zs *ZoomScene) Controller() *viewscale.Controller {
	return zs.ctrl
}

// World returns the scene's ECS world.
func (zs *ZoomScene) World() donburi.World {
	zs.once.Do(zs.configure)
	return zs.ecs.World
}

// Step runs one frame: the input step consumes events, then the view-scale
// step applies any resulting change.
func (zs *ZoomScene) Step(events []viewscale.Key) {
	zs.once.Do(zs.configure)

	zs.events = events
	zs.ecs.Update()
	zs.events = nil

	if zs.view != nil {
		zs.view.Sync(zs.ecs.World)
		zs.view.Update()
	}
}

func (zs *ZoomScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if zs.ecs == nil {
		return
	}
	zs.ecs.Draw(screen)
}

func (zs *ZoomScene) configure() {
	zs.ecs = ecs.NewECS(donburi.NewWorld())
	zs.ctrl.Set(cfg.View.InitialLevel)

	factory.CreateScene(zs.ecs)

	// Input step first, then view scale
	zs.ecs.AddSystem(zs.updateZoomInput)
	zs.ecs.AddSystem(systems.NewUpdateViewScale(zs.ctrl, zs.logger))

	zs.ecs.AddRenderer(cfg.Default, zs.drawUI)
}

func (zs *ZoomScene) updateZoomInput(_ *ecs.ECS) {
	zs.ctrl.HandleEvents(zs.events)
}

func (zs *ZoomScene) drawUI(_ *ecs.ECS, screen *ebiten.Image) {
	if zs.view == nil {
		return
	}
	zs.view.Draw(screen)
}
