package actor

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// zeroDirectionThreshold is the squared length under which a direction is
// treated as the zero vector by the support functions.
const zeroDirectionThreshold = 1e-24

// ErrEmptyHull is returned when a convex hull is built without vertices.
var ErrEmptyHull = errors.New("convex hull needs at least one vertex")

// ShapeType represents the type of collision shape
type ShapeType int

const (
	ShapeTypeSphere ShapeType = iota
	ShapeTypeBox
	ShapeTypeCapsule
	ShapeTypeConvexHull
)

// Shape is the interface that all convex collision shapes must implement.
//
// Support returns the point of the shape, in local space, that is furthest
// along direction. It must return a point of the shape for every direction,
// the zero vector included.
type Shape interface {
	Type() ShapeType
	Support(direction mgl64.Vec3) mgl64.Vec3
}

// Box represents an oriented box collision shape
// The box is defined by its half-extents (half-width, half-height, half-depth)
type Box struct {
	HalfExtents mgl64.Vec3
}

func (b *Box) Type() ShapeType {
	return ShapeTypeBox
}

func (b *Box) Support(direction mgl64.Vec3) mgl64.Vec3 {
	hx, hy, hz := b.HalfExtents.X(), b.HalfExtents.Y(), b.HalfExtents.Z()

	if direction.X() < 0 {
		hx = -hx
	}
	if direction.Y() < 0 {
		hy = -hy
	}
	if direction.Z() < 0 {
		hz = -hz
	}

	return mgl64.Vec3{hx, hy, hz}
}

// Sphere represents a spherical collision shape
type Sphere struct {
	Radius float64
}

func (s *Sphere) Type() ShapeType {
	return ShapeTypeSphere
}

func (s *Sphere) Support(direction mgl64.Vec3) mgl64.Vec3 {
	lenSqr := direction.LenSqr()
	if lenSqr < zeroDirectionThreshold {
		// Any boundary point is a valid answer
		return mgl64.Vec3{s.Radius, 0, 0}
	}

	return direction.Mul(s.Radius / math.Sqrt(lenSqr))
}

// Capsule is a segment along the local Y axis swept by a sphere.
// The segment runs from -HalfHeight to +HalfHeight.
type Capsule struct {
	HalfHeight float64
	Radius     float64
}

func (c *Capsule) Type() ShapeType {
	return ShapeTypeCapsule
}

func (c *Capsule) Support(direction mgl64.Vec3) mgl64.Vec3 {
	tip := mgl64.Vec3{0, c.HalfHeight, 0}
	if direction.Y() < 0 {
		tip[1] = -c.HalfHeight
	}

	lenSqr := direction.LenSqr()
	if lenSqr < zeroDirectionThreshold {
		return tip
	}

	return tip.Add(direction.Mul(c.Radius / math.Sqrt(lenSqr)))
}

// ConvexHull is the convex hull of a point cloud given in local space.
// Interior points are allowed, they are never returned by Support.
type ConvexHull struct {
	Vertices []mgl64.Vec3
}

// NewConvexHull copies vertices into a new hull.
func NewConvexHull(vertices []mgl64.Vec3) (*ConvexHull, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptyHull
	}

	hull := &ConvexHull{Vertices: make([]mgl64.Vec3, len(vertices))}
	copy(hull.Vertices, vertices)

	return hull, nil
}

func (h *ConvexHull) Type() ShapeType {
	return ShapeTypeConvexHull
}

// Support scans every vertex; ties keep the first one so the answer is
// stable for a given vertex order. A hull built as a literal without vertices
// degenerates to its local origin.
func (h *ConvexHull) Support(direction mgl64.Vec3) mgl64.Vec3 {
	if len(h.Vertices) == 0 {
		return mgl64.Vec3{}
	}

	best := h.Vertices[0]
	bestDot := best.Dot(direction)

	for _, v := range h.Vertices[1:] {
		if d := v.Dot(direction); d > bestDot {
			best = v
			bestDot = d
		}
	}

	return best
}
