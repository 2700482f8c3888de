package geometry

import (
	"testing"

	"cardtracer/pkg/core"
)

func TestSphereHitMiss(t *testing.T) {
	sphere := NewSphere(core.NewPoint3(0, 0, 0), 1, core.Color3{}, 0, 0, 0, 0)
	ray := core.NewRay(core.NewPoint3(5, 0, 0), core.NewVec3(0, 1, 0))

	hit := core.NewHitResult()
	if sphere.Hit(ray, &hit) {
		t.Fatalf("expected miss, got hit at distance %f", hit.Distance)
	}
}

func TestSphereHitNormalUnitAndOutward(t *testing.T) {
	sphere := NewSphere(core.NewPoint3(0, 0, 0), 2, core.Color3{}, 0, 0, 0, 0)
	ray := core.NewRay(core.NewPoint3(0, 0, 10), core.NewVec3(0, 0, -1))

	hit := core.NewHitResult()
	if !sphere.Hit(ray, &hit) {
		t.Fatalf("expected hit")
	}

	length := hit.Normal.Length()
	if diff := length - 1; diff > 1e-5 || diff < -1e-5 {
		t.Errorf("expected unit normal, got length %f", length)
	}

	// Ray originates outside the sphere, so the normal must point away
	// from the center, i.e. back toward the ray origin.
	toOrigin := ray.Origin.Sub(hit.Position).Normalize()
	if cos := hit.Normal.Dot(toOrigin); cos <= 0 {
		t.Errorf("expected normal to point outward, got cos=%f", cos)
	}
}

func TestSphereHitRejectsFartherThanCurrent(t *testing.T) {
	sphere := NewSphere(core.NewPoint3(0, 0, 0), 1, core.Color3{}, 0, 0, 0, 0)
	ray := core.NewRay(core.NewPoint3(0, 0, 10), core.NewVec3(0, 0, -1))

	hit := core.NewHitResult()
	hit.Distance = 1 // closer than the sphere's hit at distance 9

	if sphere.Hit(ray, &hit) {
		t.Fatalf("expected the closer existing hit to be preserved")
	}
	if hit.Distance != 1 {
		t.Fatalf("hit record was mutated on rejection")
	}
}

func TestSphereHitNeverReturnsDistanceAtOrBelowDistanceMin(t *testing.T) {
	sphere := NewSphere(core.NewPoint3(0, 0, 0), 1, core.Color3{}, 0, 0, 0, 0)
	origins := []core.Point3{
		core.NewPoint3(0, 0, 1),  // on the surface, aimed at the center
		core.NewPoint3(0, 0, 5),
		core.NewPoint3(3, 0, 0),
		core.NewPoint3(0, -2, 0),
	}

	for _, origin := range origins {
		ray := core.NewRay(origin, core.NewPoint3(0, 0, 0).Sub(origin))
		hit := core.NewHitResult()
		if sphere.Hit(ray, &hit) && hit.Distance <= core.DistanceMin {
			t.Fatalf("hit distance %f from origin %v should never be <= DistanceMin", hit.Distance, origin)
		}
	}
}
