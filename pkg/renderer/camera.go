package renderer

import (
	"math/rand"

	"cardtracer/pkg/core"
)

// Basis is the camera's image-plane frame, derived once per render from
// a core.Camera and the output dimensions. right/down are pre-scaled by
// the normalized field of view, so primary-ray generation is a handful
// of vector adds.
type Basis struct {
	Origin core.Point3
	Right  core.Vec3
	Down   core.Vec3
	Corner core.Vec3
	DOF    float32
	Focus  float32
}

// NewBasis derives the camera basis used to build every primary ray for
// this render. fov is normalized against the smaller image dimension so
// that framing is independent of aspect ratio and resolution.
func NewBasis(camera core.Camera, width, height int) Basis {
	minDim := width
	if height < minDim {
		minDim = height
	}
	fov := camera.FOV * 512 / float32(minDim)

	right := camera.Direction.Cross(camera.Normal).Normalize().Scale(fov)
	down := camera.Direction.Cross(right).Normalize().Scale(fov)
	corner := camera.Direction.Sub(right.Add(down).Scale(0.5))

	return Basis{
		Origin: camera.Position,
		Right:  right,
		Down:   down,
		Corner: corner,
		DOF:    camera.DOF,
		Focus:  camera.Focus,
	}
}

// sampleJitter is the half-width of the uniform jitter shared by
// sub-pixel anti-aliasing offsets and square-footprint lens sampling.
const sampleJitter = 0.5

// jitter draws from the uniform distribution over
// [-sampleJitter, +sampleJitter].
func jitter(random *rand.Rand) float32 {
	return float32(random.Float64())*2*sampleJitter - sampleJitter
}

// PrimaryRay builds the jittered primary ray through pixel (x, y): one
// sub-pixel offset for anti-aliasing, one square-footprint lens offset
// for depth of field.
func (b Basis) PrimaryRay(x, y, width, height int, random *rand.Rand) core.Ray {
	lens := b.Right.Scale(jitter(random)).Add(b.Down.Scale(jitter(random))).Scale(b.DOF)

	dir := b.Right.Scale(float32(x-width/2+1) + jitter(random)).
		Add(b.Down.Scale(float32(y-height/2+1) + jitter(random))).
		Add(b.Corner)

	origin := b.Origin.Add(lens)
	direction := dir.Scale(b.Focus).Sub(lens)
	return core.NewRay(origin, direction)
}
