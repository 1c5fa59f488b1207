package actor

import "github.com/go-gl/mathgl/mgl64"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Bounds computes the tight world-space AABB of a support-mapped set with six
// support queries, one per axis direction.
func Bounds(shape SupportMapper) AABB {
	var lo, hi mgl64.Vec3

	for axis := 0; axis < 3; axis++ {
		var direction mgl64.Vec3

		direction[axis] = 1
		hi[axis] = shape.SupportWorld(direction)[axis]

		direction[axis] = -1
		lo[axis] = shape.SupportWorld(direction)[axis]
	}

	return AABB{Min: lo, Max: hi}
}

// Overlaps checks if two AABBs overlap
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they overlap on all three axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}
