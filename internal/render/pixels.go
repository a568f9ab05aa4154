package render

import (
	"image/color"
	"math"

	"godforce-ca/internal/grid"
)

// FillBinaryRGBA writes on for every active cell of layer and off otherwise.
func FillBinaryRGBA(buf []byte, g *grid.Grid, layer int, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	cells := layerCells(g, layer)
	for i, c := range cells {
		base := i * 4
		if c.Active {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// FillEnergyRGBA maps each cell's energy on layer onto ramp. When the ramp is
// empty the buffer is cleared to transparent black.
func FillEnergyRGBA(buf []byte, g *grid.Grid, layer int, ramp []color.RGBA) {
	cells := layerCells(g, layer)
	if len(ramp) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(ramp) - 1
	for i, c := range cells {
		idx := int(math.Round(clamp01(c.Energy) * float64(last)))
		base := i * 4
		col := ramp[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func layerCells(g *grid.Grid, layer int) []grid.Cell {
	if !g.InDepth(layer) {
		return nil
	}
	n := g.Size * g.Size
	return g.Cells()[layer*n : (layer+1)*n]
}

// Vignette darkens the frame edges around a center in UV space.
type Vignette struct {
	Intensity float64
	Radius    float64
	Falloff   float64
	// Follow scales how far the center tracks the viewport.
	Follow float64
}

const worldToUV = 0.03

// Center converts the viewport's NDC position into the vignette center.
func (v Vignette) Center(ndcX, ndcY float64) (u, w float64) {
	return ndcX*v.Follow*worldToUV + 0.5, 0.5 - ndcY*v.Follow*worldToUV
}

// Alpha returns the darkening at UV distance d from the center, in [0, 1].
func (v Vignette) Alpha(d float64) float64 {
	if v.Radius <= 0 {
		return clamp01(v.Intensity)
	}
	s := smoothstep(d / v.Radius)
	return clamp01(v.Intensity * math.Pow(s, v.Falloff))
}

// FillRGBA rasterizes the vignette into a w×h premultiplied RGBA buffer.
func (v Vignette) FillRGBA(buf []byte, w, h int, cu, cv float64) {
	for y := 0; y < h; y++ {
		fy := (float64(y)+0.5)/float64(h) - cv
		for x := 0; x < w; x++ {
			fx := (float64(x)+0.5)/float64(w) - cu
			base := (y*w + x) * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = uint8(math.Round(v.Alpha(math.Hypot(fx, fy)) * 255))
		}
	}
}

func smoothstep(x float64) float64 {
	x = clamp01(x)
	return x * x * (3 - 2*x)
}
