package gjk

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestClosestPoints_Spheres(t *testing.T) {
	a := createSphereBody(mgl64.Vec3{0, 0, 0}, 1)
	b := createSphereBody(mgl64.Vec3{4, 0, 0}, 1)

	p1, p2, err := ClosestPoints(a, b, &Simplex{})
	if err != nil {
		t.Fatalf("Expected separated spheres to yield closest points, got %v", err)
	}
	if !vec3InDelta(p1, mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Errorf("Expected p1 = (1,0,0), got %v", p1)
	}
	if !vec3InDelta(p2, mgl64.Vec3{3, 0, 0}, 1e-9) {
		t.Errorf("Expected p2 = (3,0,0), got %v", p2)
	}
}

func TestClosestPoints_Boxes(t *testing.T) {
	a := createBoxBody(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
	b := createBoxBody(mgl64.Vec3{3, 0.5, 0}, mgl64.Vec3{1, 1, 1})

	p1, p2, err := ClosestPoints(a, b, &Simplex{})
	if err != nil {
		t.Fatalf("Expected separated boxes to yield closest points, got %v", err)
	}
	if !vec3InDelta(p2.Sub(p1), mgl64.Vec3{1, 0, 0}, 1e-6) {
		t.Errorf("Expected p2 - p1 = (1,0,0), got %v", p2.Sub(p1))
	}
	if diff := p1.X() - 1; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("Expected p1 on the +X face of a, got %v", p1)
	}
}

func TestClosestPoints_BoxSphere(t *testing.T) {
	a := createBoxBody(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
	b := createSphereBody(mgl64.Vec3{3, 3, 0}, 1)

	p1, p2, err := ClosestPoints(a, b, &Simplex{})
	if err != nil {
		t.Fatalf("Expected separated shapes to yield closest points, got %v", err)
	}

	// Closest feature of the box is the edge x = y = 1
	if !vec3InDelta(p1, mgl64.Vec3{1, 1, 0}, 1e-4) {
		t.Errorf("Expected p1 near (1,1,0), got %v", p1)
	}
	expected := 3 - 1/math.Sqrt2
	if !vec3InDelta(p2, mgl64.Vec3{expected, expected, 0}, 1e-4) {
		t.Errorf("Expected p2 near (%v,%v,0), got %v", expected, expected, p2)
	}
}

func TestClosestPoints_Penetrating(t *testing.T) {
	testCases := []struct {
		name string
		a, b mgl64.Vec3
	}{
		{"overlapping", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1.5, 0, 0}},
		{"concentric", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 0}},
		{"touching", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 0, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := createSphereBody(tc.a, 1)
			b := createSphereBody(tc.b, 1)

			if _, _, err := ClosestPoints(a, b, &Simplex{}); !errors.Is(err, ErrPenetrating) {
				t.Errorf("Expected ErrPenetrating, got %v", err)
			}
		})
	}
}

func TestClosestPoints_SeededSimplex(t *testing.T) {
	a := createBoxBody(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
	b := createSphereBody(mgl64.Vec3{3, 1.5, -0.5}, 1)

	simplex := &Simplex{}
	p1, p2, err := ClosestPoints(a, b, simplex)
	if err != nil {
		t.Fatalf("Expected closest points on first query, got %v", err)
	}

	q1, q2, err := ClosestPoints(a, b, simplex)
	if err != nil {
		t.Fatalf("Expected closest points on seeded query, got %v", err)
	}
	if !vec3InDelta(p1, q1, 1e-6) || !vec3InDelta(p2, q2, 1e-6) {
		t.Errorf("Seeded query diverged: (%v, %v) vs (%v, %v)", p1, p2, q1, q2)
	}
}

func TestClosestPoints_SeedIndependent(t *testing.T) {
	axis := mgl64.Vec3{0.9, 0.5, -0.5}.Normalize()
	a := createSphereBody(mgl64.Vec3{0, 0, 0}, 1)
	b := createSphereBody(axis.Mul(2.01), 1)

	seeds := []mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {-1, 0, 0}, {0.3, -0.8, 0.2}}
	for _, seed := range seeds {
		simplex := &Simplex{}
		simplex.push(Difference{A: a, B: b}.Support(seed))

		p1, p2, err := ClosestPoints(a, b, simplex)
		if err != nil {
			t.Fatalf("seed %v: expected closest points, got %v", seed, err)
		}
		if normal := p2.Sub(p1).Normalize(); !vec3InDelta(normal, axis, 1e-5) {
			t.Errorf("seed %v: expected normal %v, got %v", seed, axis, normal)
		}
		if d := p2.Sub(p1).Len(); math.Abs(d-0.01) > 1e-6 {
			t.Errorf("seed %v: expected distance 0.01, got %v", seed, d)
		}
	}
}

func TestConverge_IterationLimit(t *testing.T) {
	a := createSphereBody(mgl64.Vec3{0, 0, 0}, 1)
	b := createSphereBody(mgl64.Vec3{3, 2, -1}, 1)

	err := converge(Difference{A: a, B: b}.Support, &Simplex{}, 2)
	if !errors.Is(err, ErrNotConverged) {
		t.Fatalf("Expected ErrNotConverged, got %v", err)
	}
	if errors.Is(err, ErrPenetrating) {
		t.Error("An exhausted search must not be reported as penetration")
	}
}

func TestProjectOrigin(t *testing.T) {
	t.Run("origin outside sphere", func(t *testing.T) {
		sphere := createSphereBody(mgl64.Vec3{3, 0, 0}, 1)

		p, err := ProjectOrigin(sphere, &Simplex{})
		if err != nil {
			t.Fatalf("Expected a projection, got %v", err)
		}
		if !vec3InDelta(p, mgl64.Vec3{2, 0, 0}, 1e-9) {
			t.Errorf("Expected (2,0,0), got %v", p)
		}
	})

	t.Run("origin outside box face", func(t *testing.T) {
		box := createBoxBody(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{2, 1, 2})

		p, err := ProjectOrigin(box, &Simplex{})
		if err != nil {
			t.Fatalf("Expected a projection, got %v", err)
		}
		if !vec3InDelta(p, mgl64.Vec3{0, 4, 0}, 1e-6) {
			t.Errorf("Expected (0,4,0), got %v", p)
		}
	})

	t.Run("origin inside", func(t *testing.T) {
		sphere := createSphereBody(mgl64.Vec3{0.2, 0, 0}, 1)

		if _, err := ProjectOrigin(sphere, &Simplex{}); !errors.Is(err, ErrPenetrating) {
			t.Errorf("Expected ErrPenetrating for a contained origin, got %v", err)
		}
	})
}

func BenchmarkClosestPoints_Boxes(b *testing.B) {
	a := createBoxBody(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
	box := createBoxBody(mgl64.Vec3{3, 0.5, 0}, mgl64.Vec3{1, 1, 1})
	simplex := &Simplex{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		simplex.Reset()
		ClosestPoints(a, box, simplex)
	}
}
