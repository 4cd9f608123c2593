//go:build ebiten

package app

import (
	"image/color"
	"time"

	"eca/internal/core"
	"eca/internal/render"
	"eca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type ruleAdjuster interface {
	AdjustRule(delta int)
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pace    *core.FixedStep
	size    core.Size

	onColor  color.Color
	offColor color.Color

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		size:     size,
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		overlay:  ui.NewOverlay(sim),
		pace:     core.NewFixedStep(cfg.Rate),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if adj, ok := g.sim.(ruleAdjuster); ok {
		if delta := ruleDelta(); delta != 0 {
			adj.AdjustRule(delta)
		}
	}

	g.overlay.Update()
	g.hud.Update(g.sim.Size().W * g.scale)
	g.syncSize()

	due := g.pace.Due()
	if g.paused {
		due = 0
	}
	if g.tickOnce {
		due = 1
		g.tickOnce = false
	}
	for i := 0; i < due; i++ {
		g.sim.Step()
	}
	return nil
}

// syncSize reallocates the painter after a HUD control resized the sim.
func (g *Game) syncSize() {
	size := g.sim.Size()
	if size == g.size {
		return
	}
	g.size = size
	g.painter = render.NewGridPainter(size.W, size.H)
	ebiten.SetWindowSize(size.W*g.scale+g.hudWidth, size.H*g.scale)
}

func ruleDelta() int {
	delta := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		delta++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		delta--
	}
	_, wheel := ebiten.Wheel()
	switch {
	case wheel > 0:
		delta++
	case wheel < 0:
		delta--
	}
	return delta
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
	g.overlay.Draw(screen, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
