package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {36, 0}, {-1, 3}} {
		_, err := New(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidSize, "dims %v", dims)
	}
}

func TestIndexRoundTrip(t *testing.T) {
	g, err := New(7, 3)
	require.NoError(t, err)
	require.Equal(t, 7*7*3, g.Len())
	for i := 0; i < g.Len(); i++ {
		assert.Equal(t, i, g.Index(g.CoordOf(i)))
	}
}

func TestNeighborsInteriorLayer(t *testing.T) {
	g, err := New(10, 5)
	require.NoError(t, err)

	n := g.Neighbors(Coord{Layer: 2, Row: 4, Col: 4}, nil)
	assert.Len(t, n, MaxNeighbors)
	seen := map[Coord]bool{}
	for _, c := range n {
		assert.False(t, seen[c], "duplicate %v", c)
		seen[c] = true
	}
	assert.False(t, seen[Coord{Layer: 2, Row: 4, Col: 4}])
}

func TestNeighborsDepthBounded(t *testing.T) {
	g, err := New(6, 3)
	require.NoError(t, err)

	for layer := 0; layer < g.Depth; layer++ {
		for _, c := range g.Neighbors(Coord{Layer: layer}, nil) {
			assert.True(t, g.InDepth(c.Layer))
			assert.GreaterOrEqual(t, c.Row, 0)
			assert.Less(t, c.Row, g.Size)
			assert.GreaterOrEqual(t, c.Col, 0)
			assert.Less(t, c.Col, g.Size)
		}
	}
	assert.Len(t, g.Neighbors(Coord{Layer: 0, Row: 3, Col: 3}, nil), 17)
	assert.Len(t, g.Neighbors(Coord{Layer: 2, Row: 3, Col: 3}, nil), 17)

	single, err := New(6, 1)
	require.NoError(t, err)
	assert.Len(t, single.Neighbors(Coord{Row: 2, Col: 2}, nil), 8)
}

func TestNeighborsWrapAround(t *testing.T) {
	const w = 8
	g, err := New(w, 1)
	require.NoError(t, err)

	for c := 0; c < w; c++ {
		n := g.Neighbors(Coord{Row: 0, Col: c}, nil)
		left := (c - 1 + w) % w
		right := (c + 1) % w
		assert.Contains(t, n, Coord{Row: w - 1, Col: left})
		assert.Contains(t, n, Coord{Row: w - 1, Col: right})
		assert.Contains(t, n, Coord{Row: w - 1, Col: c})
	}
}

func TestDistanceWeightsDepth(t *testing.T) {
	assert.InDelta(t, 3.0, Distance(Coord{Layer: 0}, Coord{Layer: 1}), 1e-12)
	assert.InDelta(t, 5.0, Distance(Coord{Row: 0, Col: 0}, Coord{Row: 3, Col: 4}), 1e-12)
}

func TestWorldPosition(t *testing.T) {
	l := DefaultLayout(36)
	require.Equal(t, 28, l.Effective())

	p := l.WorldPosition(Coord{Layer: 2, Row: 18, Col: 18}, nil)
	assert.InDelta(t, 0.0, p.X, 1e-9)
	assert.InDelta(t, 0.0, p.Y, 1e-9)
	assert.InDelta(t, -0.6, p.Z, 1e-9)

	p = l.WorldPosition(Coord{Row: 4, Col: 4}, &Vec2{X: 0.5, Y: -0.25})
	assert.InDelta(t, -14*0.8+0.5, p.X, 1e-9)
	assert.InDelta(t, -14*0.8-0.25, p.Y, 1e-9)
}
