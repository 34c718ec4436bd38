//go:build ebiten

package app

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/katalvlaran/lazyterra/heightmap"
	"github.com/katalvlaran/lazyterra/render"
)

// Game pans a live viewport across a lazily generated heightmap torus:
// cells materialize the moment they scroll into view.
//
// Controls: arrows or WASD pan (shift accelerates), R regenerates the
// viewport, N reseeds from the clock, Q or Escape quits.
type Game struct {
	cfg *Config
	m   *heightmap.HeightMap

	offX, offY int
	view       *ebiten.Image
	dirty      bool
}

// New constructs the viewer and its initial map.
func New(cfg *Config) *Game {
	if cfg.Window < 16 {
		cfg.Window = 16
	}
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}

	return &Game{
		cfg:   cfg,
		m:     newMap(cfg, cfg.Seed),
		view:  ebiten.NewImage(cfg.Window, cfg.Window),
		dirty: true,
	}
}

// Seed exposes the current map seed for the window title.
func (g *Game) Seed() uint64 {
	return g.m.Seed()
}

// Update handles input and refreshes the viewport when it moved.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	step := 1
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		step = 8
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		g.offX -= step
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		g.offX += step
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		g.offY -= step
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		g.offY += step
		g.dirty = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.regenViewport(); err != nil {
			return err
		}
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.m = newMap(g.cfg, "")
		log.Printf("reseeded: %#x", g.m.Seed())
		g.dirty = true
	}

	if g.dirty {
		if err := g.refresh(); err != nil {
			return err
		}
		g.dirty = false
	}

	return nil
}

// Draw blits the viewport scaled to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.cfg.Scale), float64(g.cfg.Scale))
	screen.DrawImage(g.view, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window * g.cfg.Scale, g.cfg.Window * g.cfg.Scale
}

// refresh generates every visible cell and repaints the viewport. The
// window corners stay unwrapped so a viewport may straddle the torus seam.
func (g *Game) refresh() error {
	x1 := g.offX + g.cfg.Window - 1
	y1 := g.offY + g.cfg.Window - 1
	for y := g.offY; y <= y1; y++ {
		for x := g.offX; x <= x1; x++ {
			if _, _, err := g.m.Gen(x, y); err != nil {
				return fmt.Errorf("generate (%d,%d): %w", x, y, err)
			}
		}
	}
	g.view.WritePixels(render.ImageArea(g.m, g.offX, g.offY, x1, y1).Pix)

	return nil
}

// regenViewport recomputes every visible cell from its dependencies.
func (g *Game) regenViewport() error {
	x1 := g.offX + g.cfg.Window - 1
	y1 := g.offY + g.cfg.Window - 1
	for y := g.offY; y <= y1; y++ {
		for x := g.offX; x <= x1; x++ {
			if _, _, _, err := g.m.Regen(x, y); err != nil {
				return fmt.Errorf("regenerate (%d,%d): %w", x, y, err)
			}
		}
	}

	return nil
}
