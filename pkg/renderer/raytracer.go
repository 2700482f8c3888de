// Package renderer implements the recursive shading algorithm and the
// tile-pool parallel renderer that drives it across an output
// framebuffer.
package renderer

import (
	"math/rand"

	"github.com/chewxy/math32"

	"cardtracer/pkg/core"
	"cardtracer/pkg/scene"
)

// softShadowJitter is the half-width of the uniform jitter applied to
// the light position before casting the shadow ray, producing soft
// shadow edges across the samples of a pixel.
const softShadowJitter = 0.75

// Raytracer evaluates the recursive shading equation against one
// scene. It is cheap to construct and carries no mutable state of its
// own beyond the scene reference, so one is shared by every tile a
// worker renders.
type Raytracer struct {
	scene *scene.Scene
}

// NewRaytracer builds a raytracer bound to scene.
func NewRaytracer(s *scene.Scene) *Raytracer {
	return &Raytracer{scene: s}
}

// Trace returns the radiance seen along ray, using at most recursion
// additional reflection/refraction bounces.
func (rt *Raytracer) Trace(ray core.Ray, recursion int, random *rand.Rand) core.Color3 {
	if recursion <= 0 {
		return rt.scene.Sky.Ambient
	}

	hit := core.NewHitResult()
	if !rt.scene.Hit(ray, &hit) {
		falloff := 1 - ray.Direction.Z
		falloff = falloff * falloff * falloff * falloff
		return rt.scene.Sky.Color.Scale(falloff)
	}

	light := rt.scene.Light
	jitteredLight := core.NewPoint3(
		light.Position.X+jitter(random)*2*softShadowJitter,
		light.Position.Y+jitter(random)*2*softShadowJitter,
		light.Position.Z+jitter(random)*2*softShadowJitter,
	)

	lightRay := core.NewRay(hit.Position, jitteredLight.Sub(hit.Position))
	reflected := ray.Reflect(hit.Distance, hit.Normal)
	refracted := ray.Refract(hit.Distance, hit.Normal, hit.Eta)

	lightDistance := light.Position.Sub(hit.Position).Length()

	diffuse := lightRay.Direction.Dot(hit.Normal)
	if diffuse < 0 {
		diffuse = 0
	}

	shadow := core.NewHitResult()
	if rt.scene.Hit(lightRay, &shadow) {
		diffuse = 0
	}

	attenuation := 1 / math32.Sqrt(lightDistance/light.Power)
	lightColor := light.Color.Scale(attenuation)

	coef := 1 - hit.Reflect - hit.Refract

	result := core.Black()
	if coef > 0 {
		ambient := hit.Color.Mul(rt.scene.Sky.Ambient).Scale(coef)
		diffuseTerm := hit.Color.Mul(lightColor).Scale(coef * diffuse)
		result = result.Add(ambient).Add(diffuseTerm)
	}
	if hit.Reflect > 0 {
		result = result.Add(rt.Trace(reflected, recursion-1, random).Scale(hit.Reflect))
	}
	if hit.Refract > 0 {
		result = result.Add(rt.Trace(refracted, recursion-1, random).Scale(hit.Refract))
	}
	if hit.Specular > 0 && diffuse > 0 {
		specAngle := lightRay.Direction.Dot(reflected.Direction)
		if specAngle > 0 {
			specular := math32.Pow(specAngle, hit.Specular)
			result = result.Add(lightColor.Scale(specular))
		}
	}

	return result
}
