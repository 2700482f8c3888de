// Package core holds the fundamental value types shared by every other
// package in the raytracer: vectors, points, colors, rays and hit records.
package core

import "github.com/chewxy/math32"

// Vec3 is a free direction in 3-space: the difference of two points, a
// surface normal, or a ray direction. It carries no notion of "where".
type Vec3 struct {
	X, Y, Z float32
}

// NewVec3 builds a direction from its three components.
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two directions.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the difference of two directions.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Negate flips the direction.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Scale multiplies every component by a scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of two directions.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of two directions.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared avoids the square root when only comparison is needed.
func (v Vec3) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the Euclidean length of the direction.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// Normalize returns a unit-length direction. The zero vector is a
// precondition violation: every caller in this package only normalizes
// vectors that are geometrically guaranteed non-zero (camera bases,
// surface normals), so no defensive check is performed here.
func (v Vec3) Normalize() Vec3 {
	return v.Scale(1 / v.Length())
}

// Point3 is an absolute position in world space.
type Point3 struct {
	X, Y, Z float32
}

// NewPoint3 builds a position from its three components.
func NewPoint3(x, y, z float32) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Sub returns the direction from o to p.
func (p Point3) Sub(o Point3) Vec3 {
	return Vec3{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

// Add displaces a position by a direction, yielding a new position.
func (p Point3) Add(v Vec3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Color3 is an RGB radiance triple. Components are not restricted to
// [0,1]; clamping to a displayable range happens only at output time.
type Color3 struct {
	R, G, B float32
}

// NewColor3 builds a color from its three channels.
func NewColor3(r, g, b float32) Color3 {
	return Color3{R: r, G: g, B: b}
}

// Add returns the sum of two colors.
func (c Color3) Add(o Color3) Color3 {
	return Color3{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Mul returns the component-wise (Schur) product of two colors.
func (c Color3) Mul(o Color3) Color3 {
	return Color3{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Scale multiplies every channel by a scalar.
func (c Color3) Scale(s float32) Color3 {
	return Color3{c.R * s, c.G * s, c.B * s}
}

// Clamp restricts every channel to [lo, hi].
func (c Color3) Clamp(lo, hi float32) Color3 {
	clamp := func(v float32) float32 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	return Color3{clamp(c.R), clamp(c.G), clamp(c.B)}
}

var (
	black = Color3{}
)

// Black is the zero radiance color, returned by terms that do not
// contribute (e.g. an absorbed ray).
func Black() Color3 { return black }
