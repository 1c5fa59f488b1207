package minkowski

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// minResidual is the length under which a witness separation cannot be
// normalized.
const minResidual = 1e-12

// correctPair turns the closest points found on the shifted configuration into
// a contact of the original one.
//
// p1 alone is not a usable contact point once the shift is undone. Two boxes
// overlapping on a corner region:
//
//	        +-------------+
//	        |             |
//	        |    obj2     |
//	+-------|-----+       |
//	|       +-----+-------+
//	|    obj1     |
//	|             |
//	+-------------+
//
// may become, once obj2 is shifted:
//
//	               +-------------+
//	               |             |
//	               |    obj2     |
//	               |             |
//	         p2 -> x-------------+
//	+-------------x <- p1
//	|             |
//	|    obj1     |
//	|             |
//	+-------------+
//
// and after un-shifting p2 only the pair (p1, p2) carries meaning:
//
//	        +-------------+
//	        |             |
//	        |    obj2     |
//	+-------|-----+ <- p1 |
//	| p2 -> +-----+-------+
//	|    obj1     |
//	|             |
//	+-------------+
//
// Both contact points are therefore rebuilt from the midpoint of p1 and the
// un-shifted p2, moved apart along the normal by the shifted support distance
// projected on the normal, minus the gap the margin left between p1 and p2.
func (s *Sampler) correctPair(p1, p2, shift mgl64.Vec3, best bestDirection) (Contact, error) {
	normal := p2.Sub(p1)
	residual := normal.Len()
	if residual < minResidual {
		s.logger.Debug("minkowski: witness points coincide", "point", p1)
		return Contact{}, fmt.Errorf("%w: witnesses %v and %v", ErrDegenerateNormal, p1, p2)
	}
	normal = normal.Mul(1 / residual)

	p2 = p2.Sub(shift)
	center := p1.Add(p2).Mul(0.5)
	corrected := normal.Dot(best.direction) * (best.distance + s.margin)

	return Contact{
		PointA: center,
		PointB: center.Sub(normal.Mul(corrected - residual)),
		Normal: normal,
	}, nil
}

// correctProjection turns the projection p of the origin on the shifted shape
// into a boundary point of the original shape, relative to the origin.
func (s *Sampler) correctProjection(p mgl64.Vec3, best bestDirection) (mgl64.Vec3, error) {
	normal := p.Mul(-1)
	residual := normal.Len()
	if residual < minResidual {
		s.logger.Debug("minkowski: projection reached the origin")
		return mgl64.Vec3{}, fmt.Errorf("%w: projection %v", ErrDegenerateNormal, p)
	}
	normal = normal.Mul(1 / residual)

	corrected := normal.Dot(best.direction) * (best.distance + s.margin)

	return normal.Mul(corrected - residual), nil
}
