// Package depth answers distance and penetration queries between convex
// shapes placed in world space.
//
// Disjoint shapes go through an exact GJK distance query. Overlapping shapes
// fall back to Minkowski sampling (package minkowski), which approximates the
// penetration depth, the contact normal and one contact point per shape.
//
// A Query is immutable once built and safe for concurrent use.
package depth

import (
	"errors"
	"fmt"

	"github.com/akmonengine/depth/actor"
	"github.com/akmonengine/depth/gjk"
	"github.com/akmonengine/depth/minkowski"
	"github.com/akmonengine/depth/sampling"
	"github.com/go-gl/mathgl/mgl64"
)

// Contact describes an approximate penetration between two shapes.
type Contact = minkowski.Contact

// Query runs collision queries with a fixed configuration.
type Query struct {
	sampler *minkowski.Sampler
	logger  *Logger
}

// New creates a Query.
func New(optFns ...Option) (*Query, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	directions, err := sampling.Directions(opts.resolution)
	if err != nil {
		return nil, fmt.Errorf("depth: %w", err)
	}

	sampler, err := minkowski.NewSampler(minkowski.Config{
		Margin:     opts.margin,
		Directions: directions,
		Logger:     opts.logger.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("depth: %w", err)
	}

	return &Query{
		sampler: sampler,
		logger:  opts.logger,
	}, nil
}

// Margin returns the margin of the separating shift.
func (q *Query) Margin() float64 {
	return q.sampler.Margin()
}

// Distance returns the closest points of two disjoint shapes: p1 on a, p2 on b.
// It fails with ErrPenetrating when the shapes overlap or touch, and with
// ErrNotConverged when the exact query runs out of iterations.
func (q *Query) Distance(a, b *actor.Body) (mgl64.Vec3, mgl64.Vec3, error) {
	simplex := acquireSimplex()
	defer gjk.SimplexPool.Put(simplex)

	p1, p2, err := gjk.ClosestPoints(a, b, simplex)
	if errors.Is(err, gjk.ErrPenetrating) {
		return mgl64.Vec3{}, mgl64.Vec3{}, ErrPenetrating
	}
	if err != nil {
		return mgl64.Vec3{}, mgl64.Vec3{}, fmt.Errorf("depth: %w", err)
	}

	return p1, p2, nil
}

// Penetration returns an approximate contact between two overlapping shapes.
// It fails with ErrNotPenetrating when the shapes are apart.
//
// The simplex left by the exact distance query seeds the sampling stage.
func (q *Query) Penetration(a, b *actor.Body) (Contact, error) {
	simplex := acquireSimplex()
	defer gjk.SimplexPool.Put(simplex)

	p1, p2, err := gjk.ClosestPoints(a, b, simplex)
	if err == nil {
		return Contact{}, fmt.Errorf("%w: distance %v", ErrNotPenetrating, p2.Sub(p1).Len())
	}
	if !errors.Is(err, gjk.ErrPenetrating) {
		return Contact{}, fmt.Errorf("depth: %w", err)
	}

	return q.sampler.ClosestPoints(a, b, simplex)
}

// Project returns the point of body's boundary closest to the origin when the
// origin lies outside, and an approximate exit point when it lies inside.
// inside reports which case applied.
func (q *Query) Project(body *actor.Body) (point mgl64.Vec3, inside bool, err error) {
	simplex := acquireSimplex()
	defer gjk.SimplexPool.Put(simplex)

	p, err := gjk.ProjectOrigin(body, simplex)
	if err == nil {
		return p, false, nil
	}
	if !errors.Is(err, gjk.ErrPenetrating) {
		return mgl64.Vec3{}, false, fmt.Errorf("depth: %w", err)
	}

	point, err = q.sampler.ProjectOrigin(body, simplex)
	if err != nil {
		return mgl64.Vec3{}, true, err
	}

	return point, true, nil
}

func acquireSimplex() *gjk.Simplex {
	simplex := gjk.SimplexPool.Get().(*gjk.Simplex)
	simplex.Reset()
	return simplex
}
