package geometry

import (
	"math"

	"cardtracer/pkg/core"
)

// Sphere is an analytic sphere. Intersection uses the simplified
// quadratic that assumes ray.Direction is unit length, which NewRay
// guarantees for every ray in this module.
type Sphere struct {
	Center core.Point3
	Radius float32

	Color    core.Color3
	Reflect  float32
	Refract  float32
	Eta      float32
	Specular float32
}

// NewSphere builds a sphere with the given material coefficients.
func NewSphere(center core.Point3, radius float32, color core.Color3, reflect, refract, eta, specular float32) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Color:    color,
		Reflect:  reflect,
		Refract:  refract,
		Eta:      eta,
		Specular: specular,
	}
}

// Hit solves |origin + t*direction - center|^2 = radius^2 and tests
// only the near root t = -b - sqrt(delta); when that root is not beyond
// DistanceMin (as for a ray starting inside the sphere) the far root is
// not tried and Hit reports a miss. The discriminant is computed in float64 and
// narrowed back to float32, per the spec's allowance, to keep grazing
// rays from losing the root to cancellation.
func (s *Sphere) Hit(ray core.Ray, hit *core.HitResult) bool {
	oc := ray.Origin.Sub(s.Center)

	b := float64(oc.Dot(ray.Direction))
	c := float64(oc.Dot(oc)) - float64(s.Radius)*float64(s.Radius)
	delta := b*b - c
	if delta <= 0 {
		return false
	}

	t := float32(-b - math.Sqrt(delta))
	if t <= core.DistanceMin || t >= hit.Distance {
		return false
	}

	position := ray.At(t)
	hit.Distance = t
	hit.Position = position
	hit.Normal = oc.Add(ray.Direction.Scale(t)).Normalize()
	hit.Color = s.Color
	hit.Reflect = s.Reflect
	hit.Refract = s.Refract
	hit.Eta = s.Eta
	hit.Specular = s.Specular
	return true
}
