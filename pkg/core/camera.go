package core

// Camera is a pinhole-plus-lens camera: a position, a normalized
// forward direction, a normalized up-normal, and the three scalars that
// the renderer's basis construction and lens sampling consume
// directly: FOV (an angular multiplier, not a degree value), DOF (the
// aperture radius on the lens plane) and Focus (the focal distance from
// the lens).
type Camera struct {
	Position  Point3
	Direction Vec3
	Normal    Vec3
	FOV       float32
	DOF       float32
	Focus     float32
}

// NewCameraLookAt builds a camera from a position, a target position
// and an up position; the forward and up-normal directions are derived
// as differences and normalized.
func NewCameraLookAt(position, target, up Point3, fov, dof, focus float32) Camera {
	return Camera{
		Position:  position,
		Direction: target.Sub(position).Normalize(),
		Normal:    up.Sub(position).Normalize(),
		FOV:       fov,
		DOF:       dof,
		Focus:     focus,
	}
}

// NewCamera builds a camera from an explicit position, direction and
// normal; both are normalized directly rather than derived as a
// difference.
func NewCamera(position Point3, direction, normal Vec3, fov, dof, focus float32) Camera {
	return Camera{
		Position:  position,
		Direction: direction.Normalize(),
		Normal:    normal.Normalize(),
		FOV:       fov,
		DOF:       dof,
		Focus:     focus,
	}
}
