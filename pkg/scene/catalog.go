package scene

import (
	"cardtracer/pkg/core"
	"cardtracer/pkg/geometry"
)

// aekBitmap is the canonical business-card bitmap: 9 rows of 32
// columns, grounded directly in original_source's world[] table.
var aekBitmap = []uint32{
	0b00000000000000000000100000000000,
	0b00000000000000000000100000000000,
	0b00000001110000111000100000000000,
	0b00000000001001000100100010000000,
	0b00000000001001000100100100000000,
	0b00000001111001111100101000000000,
	0b00000010001001000000110000000000,
	0b00000010001001000000101000000000,
	0b00000001111000111000100100000000,
}

// smileyBitmap is a small hand-authored 9x16 bitmap tracing a smiley
// face: two eyes and a curved mouth.
var smileyBitmap = []uint32{
	0b0000000000000000,
	0b0000011000110000,
	0b0000011000110000,
	0b0000011000110000,
	0b0000000000000000,
	0b0000000000000000,
	0b0001000000001000,
	0b0000100000010000,
	0b0000011111100000,
}

func groundPlane(color1, color2 core.Color3, scale float32) *geometry.Plane {
	return geometry.NewPlane(core.NewVec3(0, 0, 1), scale, color1, color2, 0, 0, 0, 0)
}

// buildAek is the canonical business-card scene: camera, light and sky
// constants are taken verbatim from original_source's raytrace().
func buildAek() *Scene {
	camera := core.NewCameraLookAt(
		core.NewPoint3(17, 16, 8),
		core.NewPoint3(11, 0, 8),
		core.NewPoint3(17, 16, 9), // up is camera position shifted +Z, matching camtop=(0,0,1)
		0.002, 99, 16,
	)
	objects := spheresFromBitmap(aekBitmap, 24, 12, 1, core.NewColor3(1, 1, 1), 0.5, 0, 0, 30)
	objects = append(objects, groundPlane(core.NewColor3(3, 1, 1), core.NewColor3(3, 3, 3), 0.2))

	return &Scene{
		Camera:  camera,
		Light:   core.NewLight(core.NewPoint3(9, 9, 16), core.NewColor3(1, 1, 1), 200),
		Sky:     core.NewSky(core.NewColor3(0.7, 0.6, 1.0), core.NewColor3(13, 13, 13)),
		Objects: objects,
	}
}

// buildPonceto reuses the aek bitmap and camera rig with the two
// checkerboard colors swapped and a cooler sky tint, demonstrating that
// the factory's literal constants are independent of the bitmap.
func buildPonceto() *Scene {
	s := buildAek()
	s.Sky = core.NewSky(core.NewColor3(0.6, 0.7, 1.0), core.NewColor3(11, 11, 13))
	// Objects[len-1] is the ground plane appended after the spheres.
	s.Objects[len(s.Objects)-1] = groundPlane(core.NewColor3(3, 3, 3), core.NewColor3(3, 1, 1), 0.2)
	return s
}

// buildSmiley follows the aek layout (look-at camera with a +Z up,
// overhead point light, bitmap spheres over a ground plane) with its own
// camera, light and sky constants, framed tighter to fit the smaller
// bitmap.
func buildSmiley() *Scene {
	camera := core.NewCameraLookAt(
		core.NewPoint3(9, 12, 6),
		core.NewPoint3(6, 0, 6),
		core.NewPoint3(9, 12, 7),
		0.003, 0, 10,
	)
	objects := spheresFromBitmap(smileyBitmap, 8, 6, 0.8, core.NewColor3(1, 0.8, 0.2), 0, 0, 0, 10)
	objects = append(objects, groundPlane(core.NewColor3(1, 1, 1), core.NewColor3(0.4, 0.4, 0.4), 0.3))

	return &Scene{
		Camera:  camera,
		Light:   core.NewLight(core.NewPoint3(6, 6, 12), core.NewColor3(1, 1, 1), 150),
		Sky:     core.NewSky(core.NewColor3(0.5, 0.7, 1.0), core.NewColor3(10, 10, 10)),
		Objects: objects,
	}
}

// buildSimple places a single opaque sphere resting on the ground
// plane, lit from the side so that it casts a shadow; it is the
// smallest catalog scene.
func buildSimple() *Scene {
	sphere := geometry.NewSphere(core.NewPoint3(0, 0, 1), 1, core.NewColor3(0.9, 0.2, 0.2), 0, 0, 0, 20)
	plane := groundPlane(core.NewColor3(1, 0, 0), core.NewColor3(1, 1, 1), 1)

	return &Scene{
		Camera: core.NewCameraLookAt(
			core.NewPoint3(0, -6, 3),
			core.NewPoint3(0, 0, 1),
			core.NewPoint3(0, -6, 4),
			0.01, 0, 8,
		),
		Light:   core.NewLight(core.NewPoint3(5, 0, 5), core.NewColor3(1, 1, 1), 20),
		Sky:     core.NewSky(core.NewColor3(0.7, 0.6, 1.0), core.NewColor3(0.1, 0.1, 0.1)),
		Objects: []core.Object{sphere, plane},
	}
}

// buildSpheres generates a denser 16-row grid algorithmically (every
// third bit set) rather than hand-authoring every row, to exercise the
// renderer against a denser scene: 176 spheres (11 per row) plus the
// ground plane.
func buildSpheres() *Scene {
	bitmap := make([]uint32, 16)
	for r := range bitmap {
		var row uint32
		for c := 0; c < bitmapCols; c += 3 {
			row |= 1 << uint(c)
		}
		bitmap[r] = row
	}

	objects := spheresFromBitmap(bitmap, 16, 8, 0.45, core.NewColor3(0.3, 0.6, 0.9), 0.2, 0, 0, 15)
	objects = append(objects, groundPlane(core.NewColor3(1, 1, 1), core.NewColor3(0.5, 0.5, 0.5), 0.5))

	return &Scene{
		Camera: core.NewCameraLookAt(
			core.NewPoint3(16, 20, 14),
			core.NewPoint3(16, 0, 8),
			core.NewPoint3(16, 20, 15),
			0.003, 50, 20,
		),
		Light:   core.NewLight(core.NewPoint3(8, 8, 20), core.NewColor3(1, 1, 1), 250),
		Sky:     core.NewSky(core.NewColor3(0.7, 0.6, 1.0), core.NewColor3(12, 12, 12)),
		Objects: objects,
	}
}
