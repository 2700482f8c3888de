// Package scene owns the scene container and the named-scene factory
// that builds one from literal camera/light/sky/material constants and
// a bitmap-encoded sphere grid.
package scene

import "cardtracer/pkg/core"

// Scene is a value-owning container: one camera, one light, one sky,
// and an ordered sequence of objects. It is built once before
// rendering and is read-only for the lifetime of the render.
type Scene struct {
	Camera  core.Camera
	Light   core.Light
	Sky     core.Sky
	Objects []core.Object
}

// Hit iterates every object in the scene and returns whether any of
// them produced a strictly-closer hit than the one already recorded in
// hit. Because each Object.Hit only overwrites on a strictly-closer
// intersection, the final state of hit after the loop is exactly the
// closest intersection across the whole scene.
func (s *Scene) Hit(ray core.Ray, hit *core.HitResult) bool {
	hitAny := false
	for _, obj := range s.Objects {
		if obj.Hit(ray, hit) {
			hitAny = true
		}
	}
	return hitAny
}
