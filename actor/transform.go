package actor

import "github.com/go-gl/mathgl/mgl64"

// Transform places a shape in world space: rotation first, then translation.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
	}
}

// Translated returns the transform moved by v in world space.
func (t Transform) Translated(v mgl64.Vec3) Transform {
	t.Position = t.Position.Add(v)
	return t
}

// Apply maps a local point to world space.
func (t Transform) Apply(point mgl64.Vec3) mgl64.Vec3 {
	return t.Position.Add(t.Rotation.Rotate(point))
}

// RotateInverse maps a world direction to local space.
func (t Transform) RotateInverse(direction mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Conjugate().Rotate(direction)
}
