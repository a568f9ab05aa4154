package grid

// Vec2 is a planar offset.
type Vec2 struct{ X, Y float64 }

// Vec3 is a point in world space.
type Vec3 struct{ X, Y, Z float64 }

// Layout maps lattice indices into world space.
type Layout struct {
	Size int
	// Padding is added to every index before centering. A negative value
	// pushes the lattice edges outside the viewed frame.
	Padding      int
	Spacing      float64
	LayerSpacing float64
}

// DefaultLayout returns the spacing used by the display front ends.
func DefaultLayout(size int) Layout {
	return Layout{Size: size, Padding: -4, Spacing: 0.8, LayerSpacing: 0.3}
}

// Effective returns the padded edge length.
func (l Layout) Effective() int {
	return l.Size + 2*l.Padding
}

// WorldPosition maps c into world space. The optional offset jitters the
// layer in the XY plane.
func (l Layout) WorldPosition(c Coord, offset *Vec2) Vec3 {
	half := float64(l.Effective()) / 2
	p := Vec3{
		X: (float64(c.Row+l.Padding) - half) * l.Spacing,
		Y: (float64(c.Col+l.Padding) - half) * l.Spacing,
		Z: -float64(c.Layer) * l.LayerSpacing,
	}
	if offset != nil {
		p.X += offset.X
		p.Y += offset.Y
	}
	return p
}
