//go:build ebiten

package ui

import (
	"image/color"

	"eca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws a status line on top of the simulation view.
type Overlay struct {
	sim     core.Sim
	visible bool
	backing *ebiten.Image
}

// NewOverlay constructs a visible overlay for sim.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim, visible: true}
	o.backing = ebiten.NewImage(1, 1)
	o.backing.Fill(color.White)
	return o
}

// Update toggles visibility with the I key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.visible = !o.visible
	}
}

// Draw renders the status line in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image, paused bool) {
	if !o.visible {
		return
	}
	face := basicfont.Face7x13
	line := statusLine(o.sim, paused)
	bounds := text.BoundString(face, line)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()+8), float64(bounds.Dy()+8))
	op.GeoM.Translate(2, 2)
	op.ColorScale.ScaleWithColor(color.RGBA{A: 160})
	screen.DrawImage(o.backing, op)

	text.Draw(screen, line, face, 6, 6+bounds.Dy(), color.RGBA{R: 120, G: 220, B: 120, A: 255})
}
