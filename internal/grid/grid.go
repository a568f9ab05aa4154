// Package grid stores the 3D cell lattice the automaton runs over.
package grid

import (
	"errors"
	"math"

	"godforce-ca/pkg/core"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidSize is returned when a grid is requested with a non-positive
// size or depth.
var ErrInvalidSize = errors.New("grid: size and depth must be positive")

// DepthWeight scales layer differences in distance computations so that
// neighboring layers read as farther apart than neighboring columns.
const DepthWeight = 3

// MaxNeighbors is the size of a full 3D Moore neighborhood.
const MaxNeighbors = 26

// Shape selects the wireframe form a cell is drawn with.
type Shape uint8

const (
	Cube Shape = iota
	Sphere
	Pyramid
	Torus
	Octahedron
	Icosahedron
)

// Shapes lists every shape in declaration order.
var Shapes = []Shape{Cube, Sphere, Pyramid, Torus, Octahedron, Icosahedron}

var shapeNames = [...]string{"cube", "sphere", "pyramid", "torus", "octahedron", "icosahedron"}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "cube"
}

// RandomShape picks a shape uniformly.
func RandomShape(rng *core.RNG) Shape {
	return Shapes[rng.IntN(len(Shapes))]
}

// Cell is one lattice site.
type Cell struct {
	Shape  Shape
	Active bool
	Color  colorful.Color
	Energy float64
}

// Coord addresses a cell by depth layer, row and column.
type Coord struct {
	Layer, Row, Col int
}

// Grid is a Depth × Size × Size array of cells stored layer-major. Rows and
// columns wrap; layers do not.
type Grid struct {
	Size  int
	Depth int
	cells []Cell
}

// New allocates a grid of zero-valued cells.
func New(size, depth int) (*Grid, error) {
	if size <= 0 || depth <= 0 {
		return nil, ErrInvalidSize
	}
	return &Grid{Size: size, Depth: depth, cells: make([]Cell, size*size*depth)}, nil
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cells exposes the backing slice in layer-major order.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for c. c must be in range.
func (g *Grid) Index(c Coord) int {
	return (c.Layer*g.Size+c.Row)*g.Size + c.Col
}

// CoordOf is the inverse of Index.
func (g *Grid) CoordOf(i int) Coord {
	per := g.Size * g.Size
	return Coord{Layer: i / per, Row: (i % per) / g.Size, Col: i % g.Size}
}

// At returns a pointer to the cell at c.
func (g *Grid) At(c Coord) *Cell { return &g.cells[g.Index(c)] }

// InDepth reports whether layer addresses an existing layer.
func (g *Grid) InDepth(layer int) bool { return layer >= 0 && layer < g.Depth }

// Wrap applies toroidal wrapping to row and column.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.Size + g.Size) % g.Size
	col = (col%g.Size + g.Size) % g.Size
	return row, col
}

// Neighbors appends the coordinates adjacent to c to buf and returns it.
// Offsets that leave the depth range are skipped, so cells on the first or
// last layer have fewer than MaxNeighbors neighbors.
func (g *Grid) Neighbors(c Coord, buf []Coord) []Coord {
	for dl := -1; dl <= 1; dl++ {
		layer := c.Layer + dl
		if !g.InDepth(layer) {
			continue
		}
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dl == 0 && dr == 0 && dc == 0 {
					continue
				}
				row, col := g.Wrap(c.Row+dr, c.Col+dc)
				buf = append(buf, Coord{Layer: layer, Row: row, Col: col})
			}
		}
	}
	return buf
}

// CopyFrom overwrites g with the contents of src. Both grids must share
// dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.cells, src.cells)
}

// Center returns the continuous center of the lattice in index space.
func (g *Grid) Center() (layer, row, col float64) {
	return float64(g.Depth) / 2, float64(g.Size) / 2, float64(g.Size) / 2
}

// Distance is the Euclidean distance between two coordinates with the layer
// axis weighted by DepthWeight. Wrapping is not considered.
func Distance(a, b Coord) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	dl := float64(a.Layer-b.Layer) * DepthWeight
	return math.Sqrt(dr*dr + dc*dc + dl*dl)
}
