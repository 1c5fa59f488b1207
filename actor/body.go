package actor

import "github.com/go-gl/mathgl/mgl64"

// SupportMapper is anything able to report its furthest point along a
// world-space direction. It is the only capability the collision queries
// need from a placed shape.
type SupportMapper interface {
	SupportWorld(direction mgl64.Vec3) mgl64.Vec3
}

// Body is a convex shape placed in world space.
type Body struct {
	Transform Transform
	Shape     Shape
}

// NewBody creates a body placing shape at transform
func NewBody(transform Transform, shape Shape) *Body {
	return &Body{
		Transform: transform,
		Shape:     shape,
	}
}

// SupportWorld returns the world-space support point of the placed shape.
func (b *Body) SupportWorld(direction mgl64.Vec3) mgl64.Vec3 {
	// 1. Direction into local space (inverse rotation)
	localDirection := b.Transform.RotateInverse(direction)

	// 2. Support in local space
	localSupport := b.Shape.Support(localDirection)

	// 3. Back to world space (rotation + translation)
	return b.Transform.Apply(localSupport)
}

// Translated returns a copy of the body moved by v. The shape is shared.
func (b *Body) Translated(v mgl64.Vec3) *Body {
	return &Body{
		Transform: b.Transform.Translated(v),
		Shape:     b.Shape,
	}
}

// Reflection is the point reflection of a support-mapped set through the
// origin: it holds -x for every x of the wrapped set.
type Reflection struct {
	Of SupportMapper
}

func (r Reflection) SupportWorld(direction mgl64.Vec3) mgl64.Vec3 {
	return r.Of.SupportWorld(direction.Mul(-1)).Mul(-1)
}
