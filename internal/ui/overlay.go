//go:build ebiten

package ui

import (
	"image/color"

	"godforce-ca/internal/grid"
	"godforce-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type gridProvider interface {
	Grid() *grid.Grid
}

// Overlay draws optional debugging minimaps of one depth layer on top of the
// wireframe view: an energy heat map and an active-cell mask.
type Overlay struct {
	sim        gridProvider
	scale      int
	layer      int
	showEnergy bool
	showActive bool

	energyImg *ebiten.Image
	energyBuf []byte
	activeImg *ebiten.Image
	activeBuf []byte
	ramp      []color.RGBA
}

// NewOverlay constructs a new overlay instance. scale is the minimap pixel
// size per cell.
func NewOverlay(sim gridProvider, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale, ramp: EnergyRamp(64)}
}

// Update handles the overlay toggles: 1 energy, 2 active mask, [ and ] the
// inspected layer.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showEnergy = !o.showEnergy
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showActive = !o.showActive
	}
	depth := o.sim.Grid().Depth
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		o.layer = (o.layer - 1 + depth) % depth
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		o.layer = (o.layer + 1) % depth
	}
}

// Layer returns the inspected layer.
func (o *Overlay) Layer() int { return o.layer }

// Draw renders the enabled minimaps in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	g := o.sim.Grid()
	if o.layer >= g.Depth {
		o.layer = 0
	}
	x := 8.0
	if o.showEnergy {
		o.energyImg, o.energyBuf = ensureImage(o.energyImg, o.energyBuf, g.Size)
		render.FillEnergyRGBA(o.energyBuf, g, o.layer, o.ramp)
		o.blit(screen, o.energyImg, x)
		x += float64(g.Size*o.scale) + 8
	}
	if o.showActive {
		o.activeImg, o.activeBuf = ensureImage(o.activeImg, o.activeBuf, g.Size)
		render.FillBinaryRGBA(o.activeBuf, g, o.layer, color.RGBA{R: 230, G: 230, B: 240, A: 200}, color.RGBA{A: 120})
		o.blit(screen, o.activeImg, x)
	}
}

func ensureImage(img *ebiten.Image, buf []byte, size int) (*ebiten.Image, []byte) {
	if img == nil || img.Bounds().Dx() != size {
		return ebiten.NewImage(size, size), make([]byte, 4*size*size)
	}
	return img, buf
}

func (o *Overlay) blit(screen, img *ebiten.Image, x float64) {
	switch img {
	case o.energyImg:
		img.WritePixels(o.energyBuf)
	case o.activeImg:
		img.WritePixels(o.activeBuf)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	op.GeoM.Translate(x, 8)
	screen.DrawImage(img, op)
}
