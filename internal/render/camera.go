package render

import (
	"math"

	"godforce-ca/internal/grid"

	"github.com/chewxy/math32"
)

// V3 is a float32 point used on the drawing path.
type V3 struct {
	X, Y, Z float32
}

// ToV3 narrows a world-space point.
func ToV3(p grid.Vec3) V3 {
	return V3{float32(p.X), float32(p.Y), float32(p.Z)}
}

// Vec3 widens v back to a world-space point.
func (v V3) Vec3() grid.Vec3 {
	return grid.Vec3{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// Add returns the sum of v and b.
func (v V3) Add(b V3) V3 {
	v.X += b.X
	v.Y += b.Y
	v.Z += b.Z
	return v
}

// Subtract returns v minus b.
func (v V3) Subtract(b V3) V3 {
	v.X -= b.X
	v.Y -= b.Y
	v.Z -= b.Z
	return v
}

// Scale returns v scaled by s.
func (v V3) Scale(s float32) V3 {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

// Rotate applies a rotation of rx radians about the X axis followed by ry
// about the Y axis.
func (v V3) Rotate(rx, ry float32) V3 {
	sx, cx := math32.Sin(rx), math32.Cos(rx)
	y := v.Y*cx - v.Z*sx
	z := v.Y*sx + v.Z*cx
	sy, cy := math32.Sin(ry), math32.Cos(ry)
	return V3{
		X: v.X*cy + z*sy,
		Y: y,
		Z: -v.X*sy + z*cy,
	}
}

// Camera is a perspective camera looking down -Z at a target directly in
// front of it.
type Camera struct {
	Eye    V3
	FOV    float32 // vertical, radians
	Aspect float32
	Near   float32
	Width  float32
	Height float32
}

// NewCamera places the camera distance units in front of target.
func NewCamera(target grid.Vec3, distance, fovDegrees float64, width, height int) Camera {
	t := ToV3(target)
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return Camera{
		Eye:    V3{t.X, t.Y, t.Z + float32(distance)},
		FOV:    float32(fovDegrees * math.Pi / 180),
		Aspect: aspect,
		Near:   0.1,
		Width:  float32(width),
		Height: float32(height),
	}
}

// Project maps p to screen pixels. It reports false for points behind the
// near plane.
func (c Camera) Project(p V3) (x, y float32, ok bool) {
	rel := p.Subtract(c.Eye)
	depth := -rel.Z
	if depth < c.Near {
		return 0, 0, false
	}
	f := 1 / math32.Tan(c.FOV/2)
	ndcX := f / c.Aspect * rel.X / depth
	ndcY := f * rel.Y / depth
	return (ndcX + 1) / 2 * c.Width, (1 - ndcY) / 2 * c.Height, true
}

// NDC maps p to normalized device coordinates in [-1, 1] when visible.
func (c Camera) NDC(p V3) (x, y float32, ok bool) {
	sx, sy, ok := c.Project(p)
	if !ok || c.Width == 0 || c.Height == 0 {
		return 0, 0, false
	}
	return sx/c.Width*2 - 1, 1 - sy/c.Height*2, true
}

// Unproject maps a screen pixel onto the plane z = planeZ in world space.
func (c Camera) Unproject(sx, sy float32, planeZ float32) V3 {
	f := 1 / math32.Tan(c.FOV/2)
	ndcX := sx/c.Width*2 - 1
	ndcY := 1 - sy/c.Height*2
	depth := c.Eye.Z - planeZ
	return V3{
		X: c.Eye.X + ndcX*c.Aspect/f*depth,
		Y: c.Eye.Y + ndcY/f*depth,
		Z: planeZ,
	}
}
