package geometry

import "github.com/chewxy/math32"

func ceilf(v float32) float32 {
	return math32.Ceil(v)
}
