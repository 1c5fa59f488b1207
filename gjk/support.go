package gjk

import (
	"github.com/akmonengine/depth/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Difference is the Minkowski difference A - B of two placed shapes, seen as
// the Minkowski sum of A and the reflection of B.
type Difference struct {
	A actor.SupportMapper
	B actor.SupportMapper
}

// Support returns the difference point furthest along direction, annotated
// with the support points of A and B it comes from.
func (d Difference) Support(direction mgl64.Vec3) CSOPoint {
	a := d.A.SupportWorld(direction)
	reflected := actor.Reflection{Of: d.B}.SupportWorld(direction)

	return CSOPoint{
		Point: a.Add(reflected),
		A:     a,
		B:     reflected.Mul(-1),
	}
}

// single wraps one shape as the difference shape - {origin}.
func single(shape actor.SupportMapper) func(mgl64.Vec3) CSOPoint {
	return func(direction mgl64.Vec3) CSOPoint {
		p := shape.SupportWorld(direction)
		return CSOPoint{Point: p, A: p}
	}
}
