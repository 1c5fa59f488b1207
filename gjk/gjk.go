// Package gjk implements the Gilbert-Johnson-Keerthi (GJK) algorithm for convex shapes.
//
// Two flavours are provided. Intersect is the boolean test: it detects whether
// two convex shapes overlap by testing if their Minkowski difference contains
// the origin, converging in typically 3-6 iterations. ClosestPoints and
// ProjectOrigin are the distance flavour: they require the shapes to be
// disjoint (or the origin to be outside the shape) and return witness points.
// When that precondition turns out to be false they report it instead of
// returning a result.
//
// Every query works on a caller-owned Simplex which is left in place after the
// call, so a following query can be seeded with it.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the Distance Between
//     Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D Environments" (2003)
//   - Ericson: "Real-Time Collision Detection" (2004), closest point on triangle
package gjk

import (
	"github.com/akmonengine/depth/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Intersect performs collision detection between two placed convex shapes.
//
// Algorithm overview:
//  1. Start with initial search direction (toward B from A)
//  2. Get first support point in Minkowski difference
//  3. Iteratively refine simplex toward origin
//  4. If origin is contained → collision
//  5. If can't reach origin → no collision
//
// The simplex is modified in place and contains 1-4 points. For collisions it is
// usually a tetrahedron containing the origin, a suitable seed for the penetration
// queries.
func Intersect(a, b *actor.Body, simplex *Simplex) bool {
	cso := Difference{A: a, B: b}

	// Starting toward the other shape typically reduces iterations
	direction := b.Transform.Position.Sub(a.Transform.Position)
	if direction.LenSqr() < 1e-8 {
		direction = mgl64.Vec3{1, 0, 0} // Fallback if positions are identical
	}

	simplex.Points[0] = cso.Support(direction)
	simplex.Count = 1

	direction = simplex.Points[0].Point.Mul(-1)

	// If first support point is at/near origin, shapes are touching
	if direction.LenSqr() < 1e-16 {
		return true
	}

	maxIterations := 32 // Safety limit to prevent infinite loops
	for i := 0; i < maxIterations; i++ {
		newPoint := cso.Support(direction)

		// If the new point doesn't pass the origin in the search direction,
		// the origin cannot be reached, therefore no collision.
		if newPoint.Point.Dot(direction) <= 0 {
			return false
		}

		simplex.Points[simplex.Count] = newPoint
		simplex.Count++

		// Also reduces the simplex to its feature closest to the origin
		// and updates the direction for the next iteration
		if containsOrigin(simplex, &direction) {
			return true
		}
	}

	// Failed to converge after maxIterations (very rare, may indicate numerical issues)
	return false
}

// containsOrigin tests if the simplex contains the origin and refines the simplex.
//
// Behavior by simplex dimension:
//   - 2 points (line): Test Voronoi regions, reduce to closest point or keep edge
//   - 3 points (triangle): Test Voronoi regions, reduce to closest edge or keep face
//   - 4 points (tetrahedron): Test if origin is inside; if not, reduce to closest face
func containsOrigin(simplex *Simplex, direction *mgl64.Vec3) bool {
	switch simplex.Count {
	case 2:
		return line(simplex, direction)
	case 3:
		return triangle(simplex, direction)
	case 4:
		return tetrahedron(simplex, direction)
	}
	return false
}

// line handles the line simplex case (2 points: A and B, A most recent).
func line(simplex *Simplex, direction *mgl64.Vec3) bool {
	a := simplex.Points[1]
	b := simplex.Points[0]
	ab := b.Point.Sub(a.Point)
	ao := a.Point.Mul(-1)

	// Degenerate case: identical points
	if ab.LenSqr() < 1e-8 {
		if ao.LenSqr() < 1e-8 {
			return true // origin is at the point
		}
		simplex.Points[0] = a
		simplex.Count = 1
		*direction = ao
		return false
	}

	// Origin is closest to point A alone
	if ab.Dot(ao) <= 0 {
		simplex.Points[0] = a
		simplex.Count = 1
		*direction = ao
		return false
	}

	abPerp := ab.Cross(ao).Cross(ab)
	if abPerp.LenSqr() < 1e-8 {
		// Origin is on the line segment → touching
		return true
	}

	*direction = abPerp
	return false
}

// triangle handles the triangle simplex case (3 points: A, B, C, A most recent).
//
// Degenerate case: if points are collinear (flat triangle), treats as line instead.
func triangle(simplex *Simplex, direction *mgl64.Vec3) bool {
	a := simplex.Points[2]
	b := simplex.Points[1]
	c := simplex.Points[0]

	ab := b.Point.Sub(a.Point)
	ac := c.Point.Sub(a.Point)
	ao := a.Point.Mul(-1)

	abc := ab.Cross(ac)

	if abc.LenSqr() < 1e-10 {
		// Keep A and B (discard C which is furthest from recent history)
		simplex.Points[0] = b
		simplex.Points[1] = a
		simplex.Count = 2
		return line(simplex, direction)
	}

	// Region AB (edge)
	if ab.Cross(abc).Dot(ao) > 0 {
		simplex.Points[0] = b
		simplex.Points[1] = a
		simplex.Count = 2
		*direction = ab.Cross(ao).Cross(ab)
		return false
	}

	// Region AC (edge)
	if abc.Cross(ac).Dot(ao) > 0 {
		simplex.Points[0] = c
		simplex.Points[1] = a
		simplex.Count = 2
		*direction = ac.Cross(ao).Cross(ac)
		return false
	}

	if abc.Dot(ao) > 0 {
		// Above the triangle
		*direction = abc
	} else {
		// Below, reverse order to maintain correct orientation
		simplex.Points[0] = a
		simplex.Points[1] = c
		simplex.Points[2] = b
		simplex.Count = 3
		*direction = abc.Mul(-1)
	}

	return false // Triangle never contains origin in 3D (we need tetrahedron)
}

// tetrahedron handles the tetrahedron simplex case (4 points: A, B, C, D, A most recent).
//
// Face normals must point outward (away from the 4th vertex) to correctly test
// which side of each face the origin is on.
func tetrahedron(simplex *Simplex, direction *mgl64.Vec3) bool {
	a := simplex.Points[3]
	b := simplex.Points[2]
	c := simplex.Points[1]
	d := simplex.Points[0]

	ab := b.Point.Sub(a.Point)
	ac := c.Point.Sub(a.Point)
	ad := d.Point.Sub(a.Point)
	ao := a.Point.Mul(-1)

	// Face ABC (opposite to D)
	abc := ab.Cross(ac)
	if abc.Dot(ad) > 0 {
		abc = abc.Mul(-1)
	}

	// Face ACD (opposite to B)
	acd := ac.Cross(ad)
	if acd.Dot(ab) > 0 {
		acd = acd.Mul(-1)
	}

	// Face ADB (opposite to C)
	adb := ad.Cross(ab)
	if adb.Dot(ac) > 0 {
		adb = adb.Mul(-1)
	}

	if abc.LenSqr() < 1e-10 || acd.LenSqr() < 1e-10 || adb.LenSqr() < 1e-10 {
		simplex.Points[0] = c
		simplex.Points[1] = b
		simplex.Points[2] = a
		simplex.Count = 3
		return triangle(simplex, direction)
	}

	// Face ABC
	if abc.Dot(ao) > 0 {
		simplex.Points[0] = c
		simplex.Points[1] = b
		simplex.Points[2] = a
		simplex.Count = 3
		return triangle(simplex, direction)
	}

	// Face ACD
	if acd.Dot(ao) > 0 {
		simplex.Points[0] = d
		simplex.Points[1] = c
		simplex.Points[2] = a
		simplex.Count = 3
		return triangle(simplex, direction)
	}

	// Face ADB
	if adb.Dot(ao) > 0 {
		simplex.Points[0] = b
		simplex.Points[1] = d
		simplex.Points[2] = a
		simplex.Count = 3
		return triangle(simplex, direction)
	}

	return true
}
