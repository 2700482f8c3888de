package core

import "github.com/chewxy/math32"

// DistanceMin is the near-clip epsilon used uniformly to reject
// self-intersections, and the distance a reflected/refracted ray's
// origin is offset along the incident direction (pulled back for a
// reflection, pushed through for a refraction) to avoid re-hitting the
// surface it just left.
const DistanceMin float32 = 1e-5

// DistanceMax seeds a HitResult before any object has been tested.
const DistanceMax float32 = 1e9

// Ray is an oriented half-line: an origin plus a unit direction.
type Ray struct {
	Origin    Point3
	Direction Vec3
}

// NewRay builds a ray, normalizing its direction. Every ray in this
// module is constructed through NewRay (directly or through Reflect /
// Refract), so sphere intersection may safely assume a unit direction.
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point reached after advancing distance t along the ray.
func (r Ray) At(t float32) Point3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Reflect derives the mirror-reflected ray at a surface hit: the origin
// is pulled back by DistanceMin along the incident direction to avoid
// immediately re-hitting the surface, and the direction is mirrored
// about the normal.
func (r Ray) Reflect(distance float32, normal Vec3) Ray {
	origin := r.At(distance - DistanceMin)
	direction := r.Direction.Sub(normal.Scale(2 * normal.Dot(r.Direction)))
	return NewRay(origin, direction)
}

// Refract derives the transmitted ray at a surface hit following
// Snell's law with relative index of refraction eta. On total internal
// reflection (k < 0) the incident direction passes through unmodified.
func (r Ray) Refract(distance float32, normal Vec3, eta float32) Ray {
	origin := r.At(distance + DistanceMin)
	d := normal.Dot(r.Direction)
	k := 1 - eta*eta*(1-d*d)
	if k < 0 {
		return NewRay(origin, r.Direction)
	}
	direction := r.Direction.Scale(eta).Sub(normal.Scale(eta*d + math32.Sqrt(k)))
	return NewRay(origin, direction)
}
