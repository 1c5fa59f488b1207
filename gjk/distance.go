package gjk

import (
	"errors"
	"fmt"

	"github.com/akmonengine/depth/actor"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// MaxIterations limits the number of support queries of a distance query.
	MaxIterations = 64

	// RelativeTolerance stops the distance query once a new support point
	// improves the squared distance by less than this fraction.
	RelativeTolerance = 1e-9

	// touchThreshold is the squared distance under which the origin is
	// considered to lie on the simplex, which means penetration.
	touchThreshold = 1e-14
)

var (
	// ErrPenetrating reports that the shapes of a distance query overlap or
	// touch, or that the origin lies inside the projected shape.
	ErrPenetrating = errors.New("gjk: shapes penetrate")

	// ErrNotConverged reports a distance query that ran out of iterations
	// before reaching the closest feature.
	ErrNotConverged = errors.New("gjk: distance query did not converge")
)

// ClosestPoints computes the closest points between two disjoint convex shapes.
//
// The simplex seeds the search: it may be empty, or hold points left by a
// previous query on the same pair as long as they still belong to the
// Minkowski difference a - b.
//
// Returns:
//   - p1: point of a closest to b
//   - p2: point of b closest to a
//   - err: ErrPenetrating when the shapes penetrate or touch, ErrNotConverged
//     when the iteration limit is reached; p1 and p2 are meaningless then
func ClosestPoints(a, b actor.SupportMapper, simplex *Simplex) (mgl64.Vec3, mgl64.Vec3, error) {
	if err := converge(Difference{A: a, B: b}.Support, simplex, MaxIterations); err != nil {
		return mgl64.Vec3{}, mgl64.Vec3{}, err
	}

	p1, p2 := simplex.Witnesses()
	return p1, p2, nil
}

// ProjectOrigin returns the point of shape closest to the origin.
// It fails with ErrPenetrating when the origin is inside the shape or on its boundary.
func ProjectOrigin(shape actor.SupportMapper, simplex *Simplex) (mgl64.Vec3, error) {
	if err := converge(single(shape), simplex, MaxIterations); err != nil {
		return mgl64.Vec3{}, err
	}

	return simplex.Closest(), nil
}

// converge runs the distance iteration until the simplex holds the feature of
// the support-mapped set closest to the origin. It stops with ErrPenetrating
// as soon as the origin is found inside the set.
func converge(support func(mgl64.Vec3) CSOPoint, simplex *Simplex, maxIterations int) error {
	if simplex.Count == 0 {
		simplex.push(support(mgl64.Vec3{1, 0, 0}))
	}

	for i := 0; i < maxIterations; i++ {
		v, contained := simplex.reduce()
		if contained {
			return ErrPenetrating
		}

		vv := v.LenSqr()
		if vv < touchThreshold {
			return ErrPenetrating
		}

		w := support(v.Mul(-1))

		// v·v - v·w bounds how much closer the set can get to the origin
		if vv-v.Dot(w.Point) <= RelativeTolerance*vv {
			return nil
		}

		// Cycling on a support point already held, no further progress possible
		if simplex.holds(w.Point) {
			return nil
		}

		simplex.push(w)
	}

	return fmt.Errorf("%w after %d iterations", ErrNotConverged, maxIterations)
}
