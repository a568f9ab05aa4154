package render

import (
	"image/color"

	"godforce-ca/internal/grid"
)

// minOpacity is the opacity below which a cell is not drawn at all.
const minOpacity = 0.01

// Line is a projected wireframe edge in screen pixels.
type Line struct {
	X0, Y0, X1, Y1 float32
	Color          color.RGBA
}

// Piercing configures the cursor depth effect.
type Piercing struct {
	Radius float64
	Depth  float64
}

// Lines projects every visible cell of g as wireframe edges and appends them
// to dst. Colors are premultiplied by each cell's opacity.
func (v View) Lines(dst []Line, g *grid.Grid, t float64, cam Camera, cursor *Cursor, pierce Piercing) []Line {
	viewport := v.ViewportCenter(t)
	cells := g.Cells()
	offsets := make([]grid.Vec2, g.Depth)
	for l := range offsets {
		offsets[l] = LayerOffset(l, t)
	}
	for i := range cells {
		c := g.CoordOf(i)
		cell := &cells[i]
		pos := v.Layout.WorldPosition(c, &offsets[c.Layer])
		if cursor != nil && cursor.Active {
			pos.Z -= Pierce(pos, cursor.Pos, pierce.Radius, pierce.Depth)
		}
		look := v.Visual(pos, viewport, cell.Active, cell.Energy, c.Layer, t)
		if look.Opacity < minOpacity {
			continue
		}
		col := premultiply(cell.Color.R, cell.Color.G, cell.Color.B, look.Opacity)
		center := ToV3(pos)
		rx, ry := float32(look.RotationX), float32(look.RotationY)
		for _, seg := range Wireframe(cell.Shape) {
			x0, y0, ok0 := cam.Project(seg.A.Rotate(rx, ry).Add(center))
			x1, y1, ok1 := cam.Project(seg.B.Rotate(rx, ry).Add(center))
			if !ok0 || !ok1 {
				continue
			}
			dst = append(dst, Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: col})
		}
	}
	return dst
}

// Camera returns the camera for time t on a width×height surface.
func (v View) Camera(t float64, fovDegrees float64, width, height int) Camera {
	return NewCamera(v.ViewportCenter(t), v.Distance, fovDegrees, width, height)
}

func premultiply(r, g, b, a float64) color.RGBA {
	a = clamp01(a)
	return color.RGBA{
		R: uint8(clamp01(r)*a*255 + 0.5),
		G: uint8(clamp01(g)*a*255 + 0.5),
		B: uint8(clamp01(b)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}
