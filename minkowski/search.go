package minkowski

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// bestDirection accumulates the sampled direction with the smallest support
// distance. distance never increases while directions are observed.
type bestDirection struct {
	direction mgl64.Vec3
	distance  float64
}

func newBestDirection() bestDirection {
	return bestDirection{distance: math.Inf(1)}
}

// observe keeps the first direction reaching a new minimum.
func (b bestDirection) observe(direction mgl64.Vec3, distance float64) bestDirection {
	if distance < b.distance {
		return bestDirection{direction: direction, distance: distance}
	}
	return b
}

// shift is the translation that separates the configuration along the best
// direction with margin to spare.
func (b bestDirection) shift(margin float64) mgl64.Vec3 {
	return b.direction.Mul(b.distance + margin)
}

// search scores every direction by dot(direction, support(direction)).
// The whole set is always scanned.
func search(directions []mgl64.Vec3, support func(mgl64.Vec3) mgl64.Vec3) bestDirection {
	best := newBestDirection()

	for _, direction := range directions {
		best = best.observe(direction, direction.Dot(support(direction)))
	}

	return best
}
