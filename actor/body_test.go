package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestTransform(t *testing.T) {
	transform := Transform{
		Position: mgl64.Vec3{1, 2, 3},
		Rotation: mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1}),
	}

	local := mgl64.Vec3{1, 0, 0}
	world := transform.Apply(local)
	if !vec3Equal(world, mgl64.Vec3{1, 3, 3}, 1e-12) {
		t.Errorf("Apply(%v) = %v, want (1,3,3)", local, world)
	}

	if dir := transform.RotateInverse(mgl64.Vec3{0, 1, 0}); !vec3Equal(dir, mgl64.Vec3{1, 0, 0}, 1e-12) {
		t.Errorf("RotateInverse((0,1,0)) = %v, want (1,0,0)", dir)
	}

	moved := transform.Translated(mgl64.Vec3{-1, 0, 1})
	if moved.Position != (mgl64.Vec3{0, 2, 4}) {
		t.Errorf("Translated position = %v, want (0,2,4)", moved.Position)
	}
	if transform.Position != (mgl64.Vec3{1, 2, 3}) {
		t.Error("Translated must not modify the receiver")
	}
}

func TestNewTransform(t *testing.T) {
	transform := NewTransform()
	p := mgl64.Vec3{4, -5, 6}

	if got := transform.Apply(p); got != p {
		t.Errorf("Identity transform moved %v to %v", p, got)
	}
}

func TestBodySupportWorld(t *testing.T) {
	t.Run("translated sphere", func(t *testing.T) {
		body := NewBody(Transform{Position: mgl64.Vec3{3, 0, 0}, Rotation: mgl64.QuatIdent()}, &Sphere{Radius: 1})

		if got := body.SupportWorld(mgl64.Vec3{-1, 0, 0}); !vec3Equal(got, mgl64.Vec3{2, 0, 0}, 1e-12) {
			t.Errorf("Expected (2,0,0), got %v", got)
		}
	})

	t.Run("rotated box", func(t *testing.T) {
		body := NewBody(Transform{
			Position: mgl64.Vec3{10, 0, 0},
			Rotation: mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1}),
		}, &Box{HalfExtents: mgl64.Vec3{2, 1, 1}})

		// The long local X axis now lies along world Y
		direction := mgl64.Vec3{0, 1, 0}
		if got := body.SupportWorld(direction).Dot(direction); !floatEqual(got, 2, 1e-9) {
			t.Errorf("Expected extent 2 along Y, got %v", got)
		}

		direction = mgl64.Vec3{1, 0, 0}
		if got := body.SupportWorld(direction).Dot(direction); !floatEqual(got, 11, 1e-9) {
			t.Errorf("Expected extent 11 along X, got %v", got)
		}
	})
}

func TestBodyTranslated(t *testing.T) {
	shape := &Sphere{Radius: 1}
	body := NewBody(NewTransform(), shape)

	moved := body.Translated(mgl64.Vec3{0, 5, 0})
	if moved == body {
		t.Fatal("Translated must return a new body")
	}
	if moved.Shape != shape {
		t.Error("Translated must share the shape")
	}
	if body.Transform.Position != (mgl64.Vec3{}) {
		t.Errorf("Original body moved to %v", body.Transform.Position)
	}
	if got := moved.SupportWorld(mgl64.Vec3{0, 1, 0}); !vec3Equal(got, mgl64.Vec3{0, 6, 0}, 1e-12) {
		t.Errorf("Expected (0,6,0), got %v", got)
	}
}

func TestReflection(t *testing.T) {
	body := NewBody(Transform{Position: mgl64.Vec3{3, 0, 0}, Rotation: mgl64.QuatIdent()}, &Box{HalfExtents: mgl64.Vec3{1, 1, 1}})
	reflection := Reflection{Of: body}

	// -B spans x in [-4,-2]
	if got := reflection.SupportWorld(mgl64.Vec3{1, 0, 0}).X(); got != -2 {
		t.Errorf("Expected -2, got %v", got)
	}
	if got := reflection.SupportWorld(mgl64.Vec3{-1, 0, 0}).X(); got != -4 {
		t.Errorf("Expected -4, got %v", got)
	}
}
