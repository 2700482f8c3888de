package geometry

import (
	"testing"

	"cardtracer/pkg/core"
)

func newTestPlane() *Plane {
	return NewPlane(core.NewVec3(0, 0, 1), 1, core.NewColor3(1, 0, 0), core.NewColor3(1, 1, 1), 0, 0, 0, 0)
}

func TestPlaneHitLiesInPlane(t *testing.T) {
	plane := newTestPlane()
	ray := core.NewRay(core.NewPoint3(0, 0, 5), core.NewVec3(0.3, 0.1, -1))

	hit := core.NewHitResult()
	if !plane.Hit(ray, &hit) {
		t.Fatalf("expected hit")
	}
	if z := hit.Position.Z; z > 1e-5 || z < -1e-5 {
		t.Errorf("expected intersection in the z=0 plane, got z=%f", z)
	}
}

func TestPlaneHitMissesParallelRay(t *testing.T) {
	plane := newTestPlane()
	ray := core.NewRay(core.NewPoint3(0, 0, 5), core.NewVec3(1, 0, 0))

	hit := core.NewHitResult()
	if plane.Hit(ray, &hit) {
		t.Fatalf("expected miss for a ray parallel to the plane")
	}
}

func TestCheckerboardInvariantUnderTranslation(t *testing.T) {
	plane := newTestPlane()
	p := core.NewPoint3(0.37, -1.2, 0)
	shift := 2 / plane.Scale

	c1 := plane.checkerboard(p)
	c2 := plane.checkerboard(core.NewPoint3(p.X+shift, p.Y, 0))
	c3 := plane.checkerboard(core.NewPoint3(p.X, p.Y+shift, 0))

	if c1 != c2 || c1 != c3 {
		t.Errorf("checkerboard pattern is not invariant under translation by 2/scale")
	}
}

func TestCheckerboardAlternates(t *testing.T) {
	plane := newTestPlane()
	c1 := plane.checkerboard(core.NewPoint3(0.1, 0.1, 0))
	c2 := plane.checkerboard(core.NewPoint3(1.1, 0.1, 0))

	if c1 == c2 {
		t.Errorf("expected adjacent tiles to differ")
	}
}
