package core

import "testing"

func TestNewRayNormalizesDirection(t *testing.T) {
	r := NewRay(NewPoint3(0, 0, 0), NewVec3(3, 0, 0))
	if !approxEqualf(r.Direction.Length(), 1, 1e-6) {
		t.Errorf("expected unit direction, got length %f", r.Direction.Length())
	}
}

func TestAtAdvancesAlongDirection(t *testing.T) {
	r := NewRay(NewPoint3(1, 2, 3), NewVec3(0, 0, 1))
	p := r.At(5)
	want := NewPoint3(1, 2, 8)
	if p != want {
		t.Errorf("got %+v, want %+v", p, want)
	}
}

func TestReflectPreservesAngleToNormal(t *testing.T) {
	r := NewRay(NewPoint3(0, 0, 1), NewVec3(1, 0, -1))
	normal := NewVec3(0, 0, 1)

	reflected := r.Reflect(1, normal)

	incidentAngle := normal.Dot(r.Direction)
	reflectedAngle := normal.Dot(reflected.Direction)
	if !approxEqualf(reflectedAngle, -incidentAngle, 1e-5) {
		t.Errorf("expected reflected.n = -incident.n, got %f vs %f", reflectedAngle, -incidentAngle)
	}
}

func TestReflectOffsetsOriginAwayFromSurface(t *testing.T) {
	r := NewRay(NewPoint3(0, 0, 5), NewVec3(0, 0, -1))
	normal := NewVec3(0, 0, 1)

	reflected := r.Reflect(5, normal)

	if reflected.Origin.Z <= 0 {
		t.Errorf("expected reflected origin to stay above the surface, got z=%f", reflected.Origin.Z)
	}
}

func TestRefractWithMatchingEtaPassesThroughUnchanged(t *testing.T) {
	r := NewRay(NewPoint3(0, 0, 5), NewVec3(0.3, 0, -1))
	normal := NewVec3(0, 0, 1)

	refracted := r.Refract(5, normal, 1)

	if !approxEqualf(refracted.Direction.X, r.Direction.X, 1e-5) ||
		!approxEqualf(refracted.Direction.Y, r.Direction.Y, 1e-5) ||
		!approxEqualf(refracted.Direction.Z, r.Direction.Z, 1e-5) {
		t.Errorf("expected eta=1 to pass direction through unchanged, got %+v vs %+v", refracted.Direction, r.Direction)
	}
}

func TestRefractTotalInternalReflectionPassesIncidentDirectionThrough(t *testing.T) {
	r := NewRay(NewPoint3(0, 0, 5), NewVec3(0.99, 0, -0.01).Normalize())
	normal := NewVec3(0, 0, 1)

	refracted := r.Refract(5, normal, 2.5)

	if !approxEqualf(refracted.Direction.X, r.Direction.X, 1e-5) {
		t.Errorf("expected TIR to pass the incident direction through, got %+v vs %+v", refracted.Direction, r.Direction)
	}
}
