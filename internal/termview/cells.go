// Package termview renders one layer of the godforce lattice in a terminal.
package termview

import (
	"godforce-ca/internal/grid"
	"godforce-ca/internal/render"

	"github.com/gdamore/tcell/v2"
)

// minOpacity matches the wireframe view: fainter cells are left blank.
const minOpacity = 0.01

var glyphs = map[grid.Shape]rune{
	grid.Cube:        '■',
	grid.Sphere:      '●',
	grid.Pyramid:     '▲',
	grid.Torus:       '◎',
	grid.Octahedron:  '◆',
	grid.Icosahedron: '✦',
}

// Glyph returns the rune drawn for shape.
func Glyph(shape grid.Shape) rune {
	if r, ok := glyphs[shape]; ok {
		return r
	}
	return glyphs[grid.Cube]
}

// CellStyle is the truecolor style for a cell drawn at opacity against a
// black background.
func CellStyle(cell grid.Cell, opacity float64) tcell.Style {
	opacity = clamp01(opacity)
	c := cell.Color.Clamped()
	fg := tcell.NewRGBColor(
		int32(c.R*opacity*255+0.5),
		int32(c.G*opacity*255+0.5),
		int32(c.B*opacity*255+0.5),
	)
	st := tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack)
	if cell.Active && cell.Energy > 0.8 {
		st = st.Bold(true)
	}
	return st
}

// DrawLayer paints layer of g at time t with two columns per cell and
// returns how many cells were visible.
func DrawLayer(screen tcell.Screen, g *grid.Grid, layer int, view render.View, t float64) int {
	w, h := screen.Size()
	viewport := view.ViewportCenter(t)
	offset := render.LayerOffset(layer, t)
	blank := tcell.StyleDefault.Background(tcell.ColorBlack)
	shown := 0
	for row := 0; row < g.Size && row < h-1; row++ {
		for col := 0; col < g.Size && col*2 < w; col++ {
			coord := grid.Coord{Layer: layer, Row: row, Col: col}
			cell := g.At(coord)
			pos := view.Layout.WorldPosition(coord, &offset)
			look := view.Visual(pos, viewport, cell.Active, cell.Energy, layer, t)
			if look.Opacity < minOpacity {
				screen.SetContent(col*2, row, ' ', nil, blank)
				continue
			}
			screen.SetContent(col*2, row, Glyph(cell.Shape), nil, CellStyle(*cell, look.Opacity))
			shown++
		}
	}
	return shown
}

// DrawStatus writes s on the bottom row.
func DrawStatus(screen tcell.Screen, s string) {
	w, h := screen.Size()
	if h == 0 {
		return
	}
	st := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	x := 0
	for _, r := range s {
		if x >= w {
			break
		}
		screen.SetContent(x, h-1, r, nil, st)
		x++
	}
	for ; x < w; x++ {
		screen.SetContent(x, h-1, ' ', nil, st)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
