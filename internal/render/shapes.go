package render

import (
	"math"

	"godforce-ca/internal/grid"
)

// Segment is one wireframe edge in shape-local coordinates.
type Segment struct {
	A, B V3
}

var wireframes = buildWireframes()

// Wireframe returns the edges outlining shape s. Unknown shapes draw as a
// cube. The returned slice is shared and must not be modified.
func Wireframe(s grid.Shape) []Segment {
	if int(s) < len(wireframes) && wireframes[s] != nil {
		return wireframes[s]
	}
	return wireframes[grid.Cube]
}

func buildWireframes() [][]Segment {
	out := make([][]Segment, len(grid.Shapes))
	out[grid.Cube] = cube(0.25)
	out[grid.Sphere] = sphere(0.3, 8)
	out[grid.Pyramid] = pyramid(0.3, 0.6)
	out[grid.Torus] = torus(0.2, 0.1, 12, 4)
	out[grid.Octahedron] = octahedron(0.3)
	out[grid.Icosahedron] = icosahedron(0.3)
	return out
}

func cube(h float32) []Segment {
	var corners [8]V3
	for i := range corners {
		corners[i] = V3{X: sign(i&1) * h, Y: sign(i&2) * h, Z: sign(i&4) * h}
	}
	return edgesAt(corners[:], 2*h)
}

func sign(bit int) float32 {
	if bit != 0 {
		return 1
	}
	return -1
}

func ring(radius float32, n int, at func(c, s float32) V3) []V3 {
	pts := make([]V3, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = at(radius*float32(math.Cos(a)), radius*float32(math.Sin(a)))
	}
	return pts
}

func loop(pts []V3) []Segment {
	segs := make([]Segment, len(pts))
	for i := range pts {
		segs[i] = Segment{pts[i], pts[(i+1)%len(pts)]}
	}
	return segs
}

func sphere(r float32, n int) []Segment {
	var segs []Segment
	segs = append(segs, loop(ring(r, n, func(c, s float32) V3 { return V3{X: c, Y: s} }))...)
	segs = append(segs, loop(ring(r, n, func(c, s float32) V3 { return V3{X: c, Z: s} }))...)
	segs = append(segs, loop(ring(r, n, func(c, s float32) V3 { return V3{Y: c, Z: s} }))...)
	return segs
}

func pyramid(r, height float32) []Segment {
	base := ring(r, 4, func(c, s float32) V3 { return V3{X: c, Y: -height / 2, Z: s} })
	apex := V3{Y: height / 2}
	segs := loop(base)
	for _, p := range base {
		segs = append(segs, Segment{p, apex})
	}
	return segs
}

func torus(major, minor float32, n, tubes int) []Segment {
	var segs []Segment
	for _, r := range []float32{major - minor, major + minor} {
		segs = append(segs, loop(ring(r, n, func(c, s float32) V3 { return V3{X: c, Y: s} }))...)
	}
	for i := 0; i < tubes; i++ {
		a := 2 * math.Pi * float64(i) / float64(tubes)
		ca, sa := float32(math.Cos(a)), float32(math.Sin(a))
		tube := ring(minor, 6, func(c, s float32) V3 {
			d := major + c
			return V3{X: d * ca, Y: d * sa, Z: s}
		})
		segs = append(segs, loop(tube)...)
	}
	return segs
}

func octahedron(r float32) []Segment {
	pts := []V3{{X: r}, {X: -r}, {Y: r}, {Y: -r}, {Z: r}, {Z: -r}}
	return edgesAt(pts, r*float32(math.Sqrt2))
}

func icosahedron(r float32) []Segment {
	phi := float32((1 + math.Sqrt(5)) / 2)
	raw := []V3{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	norm := r / float32(math.Sqrt(float64(1+phi*phi)))
	pts := make([]V3, len(raw))
	for i, p := range raw {
		pts[i] = p.Scale(norm)
	}
	return edgesAt(pts, 2*norm)
}

// edgesAt connects every pair of points separated by length.
func edgesAt(pts []V3, length float32) []Segment {
	var segs []Segment
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			d := pts[i].Subtract(pts[j])
			l := float32(math.Sqrt(float64(d.X*d.X + d.Y*d.Y + d.Z*d.Z)))
			if math.Abs(float64(l-length)) < 1e-3 {
				segs = append(segs, Segment{pts[i], pts[j]})
			}
		}
	}
	return segs
}
