package mapview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool
	// Resizable lets the user resize the window; the view follows.
	Resizable bool
}

// Run opens a window sized to the view and runs the game loop until the
// window closes.
func Run(v *View, cfg RunConfig) error {
	ebiten.SetWindowSize(v.width, v.height)
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	g := &game{view: v}
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

type game struct {
	view        *View
	fps         *fpsWidget
	interactive bool
}

func (g *game) Update() error {
	g.view.Update()
	if in := g.view.Interactive(); in != g.interactive {
		g.interactive = in
		if in {
			ebiten.SetCursorShape(ebiten.CursorShapePointer)
		} else {
			ebiten.SetCursorShape(ebiten.CursorShapeDefault)
		}
	}
	if g.fps != nil {
		g.fps.update(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen)
	if g.fps != nil {
		screen.DrawImage(g.fps.img, nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.view.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// fpsWidget is a small readout refreshed about twice a second.
type fpsWidget struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newFPSWidget() *fpsWidget {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsWidget{img: ebiten.NewImage(100, 32)}
}

func (w *fpsWidget) update(dt float64) {
	w.lastUpdate += dt
	if w.lastUpdate < 0.5 {
		return
	}
	w.lastUpdate = 0

	w.img.Clear()
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}
