//go:build ebiten

package render

import (
	"image/color"

	"godforce-ca/internal/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter draws the lattice as wireframes followed by the vignette.
type Painter struct {
	View     View
	Vignette Vignette
	Pierce   Piercing
	FOV      float64

	LineWidth float32

	lines       []Line
	vignetteImg *ebiten.Image
	vignetteBuf []byte
}

// NewPainter constructs a painter for view.
func NewPainter(view View, vignette Vignette, pierce Piercing, fov float64) *Painter {
	return &Painter{View: view, Vignette: vignette, Pierce: pierce, FOV: fov, LineWidth: 1.5}
}

// Draw renders g at time t onto screen.
func (p *Painter) Draw(screen *ebiten.Image, g *grid.Grid, t float64, cursor *Cursor) {
	screen.Fill(color.Black)
	b := screen.Bounds()
	cam := p.View.Camera(t, p.FOV, b.Dx(), b.Dy())
	p.lines = p.View.Lines(p.lines[:0], g, t, cam, cursor, p.Pierce)
	for _, l := range p.lines {
		vector.StrokeLine(screen, l.X0, l.Y0, l.X1, l.Y1, p.LineWidth, l.Color, true)
	}
	p.drawVignette(screen, cam, t)
}

// Camera exposes the camera used for the frame at time t.
func (p *Painter) Camera(t float64, width, height int) Camera {
	return p.View.Camera(t, p.FOV, width, height)
}

func (p *Painter) drawVignette(screen *ebiten.Image, cam Camera, t float64) {
	const res = 128
	if p.vignetteImg == nil {
		p.vignetteImg = ebiten.NewImage(res, res)
		p.vignetteBuf = make([]byte, res*res*4)
	}
	nx, ny, ok := cam.NDC(ToV3(p.View.ViewportCenter(t)))
	if !ok {
		nx, ny = 0, 0
	}
	cu, cv := p.Vignette.Center(float64(nx), float64(ny))
	p.Vignette.FillRGBA(p.vignetteBuf, res, res, cu, cv)
	p.vignetteImg.WritePixels(p.vignetteBuf)

	b := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx())/res, float64(b.Dy())/res)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(p.vignetteImg, op)
}
