package scene

import (
	"cardtracer/pkg/core"
	"cardtracer/pkg/geometry"
)

// bitmapCols is the fixed row width: every row of a catalog bitmap is a
// 32-bit word, one bit per column.
const bitmapCols = 32

// spheresFromBitmap expands a row-major bitmap into one sphere per set
// bit. Bits are read from LSB to MSB within each row; bit column c on
// row r yields a sphere at world coordinates
// (cols - c + colOffset, 0, rows - r + rowOffset).
func spheresFromBitmap(bitmap []uint32, colOffset, rowOffset int, radius float32, color core.Color3, reflect, refract, eta, specular float32) []core.Object {
	rows := len(bitmap)
	var objects []core.Object
	for r, row := range bitmap {
		for c := 0; c < bitmapCols; c++ {
			if row&(1<<uint(c)) == 0 {
				continue
			}
			x := float32(bitmapCols - c + colOffset)
			z := float32(rows - r + rowOffset)
			center := core.NewPoint3(x, 0, z)
			objects = append(objects, geometry.NewSphere(center, radius, color, reflect, refract, eta, specular))
		}
	}
	return objects
}
