package main

import (
	"os"

	"github.com/automoto/pixelzoom/assets"
	"github.com/automoto/pixelzoom/components"
	"github.com/automoto/pixelzoom/config"
	"github.com/automoto/pixelzoom/fonts"
	"github.com/automoto/pixelzoom/scenes"
	"github.com/automoto/pixelzoom/systems"
	"github.com/automoto/pixelzoom/ui"
	"github.com/automoto/pixelzoom/viewscale"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene *scenes.ZoomScene

	input  components.InputData
	events []viewscale.Key
}

func NewGame(logger *log.Logger) *Game {
	view := ui.NewViewUI(fonts.CGA, config.C.Width, config.C.Height)
	return &Game{
		scene: scenes.NewZoomScene(view, logger),
	}
}

// Update polls input and hands this frame's key events to the scene.
func (g *Game) Update() error {
	systems.PollInput(&g.input)
	g.events = systems.AppendKeyEvents(g.events[:0], &g.input)
	g.scene.Step(g.events)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          config.View.LogPrefix,
	})

	ttf, err := assets.NewDiskFontLoader().LoadFont(config.Assets.FontPath)
	if err != nil {
		logger.Fatal("could not load font, see README.md", "path", config.Assets.FontPath, "error", err)
	}
	if err := fonts.LoadFont(fonts.CGA, ttf); err != nil {
		logger.Fatal("could not load font", "error", err)
	}

	// Size the window in device pixels so OS scaling does not stretch the
	// 1280x720 frame.
	deviceScale := ebiten.Monitor().DeviceScaleFactor()
	if deviceScale <= 0 {
		deviceScale = 1
	}
	ebiten.SetWindowSize(
		int(float64(config.C.Width)/deviceScale),
		int(float64(config.C.Height)/deviceScale),
	)
	ebiten.SetWindowTitle(config.C.Title)

	if err := ebiten.RunGame(NewGame(logger)); err != nil {
		logger.Fatal("game exited", "error", err)
	}
}
