// Package minkowski approximates penetration depth and contact information for
// overlapping convex shapes by sampling the support function of their
// Minkowski difference.
//
// It is the fallback used when an exact GJK distance query cannot proceed
// because the shapes overlap. Each query runs four stages:
//
//  1. Direction search: every direction of a fixed set is scored by the
//     support distance of the configuration; the smallest one approximates the
//     shallowest way out.
//  2. Separating shift: the configuration is pushed apart along that direction
//     by the support distance plus a margin, and the caller's simplex is
//     translated by the same amount so it stays a valid seed.
//  3. Exact refinement: GJK distance runs on the now separated configuration.
//  4. Unshift and normal correction: the witness points are brought back to
//     the original frame and a unit normal and a depth consistent with the
//     unshifted configuration are rebuilt.
//
// The result is an approximation whose quality depends on the density of the
// direction set and on the margin.
package minkowski

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/akmonengine/depth/actor"
	"github.com/akmonengine/depth/gjk"
	"github.com/akmonengine/depth/sampling"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultMargin is the extra distance added to the separating shift so that the
// shifted configuration is separated despite floating-point error.
const DefaultMargin = 0.01

// unitTolerance bounds how far from 1 the length of a sampled direction may be.
const unitTolerance = 1e-9

var (
	// ErrNotSeparated is returned when the exact refinement still finds the
	// shapes overlapping after the separating shift. Retrying with the same
	// input reproduces it.
	ErrNotSeparated = errors.New("minkowski: configuration still overlaps after the separating shift")

	// ErrDegenerateNormal is returned when the refined witness points coincide
	// and no contact normal can be derived. A larger margin may help.
	ErrDegenerateNormal = errors.New("minkowski: zero-length contact normal")

	// ErrInvalidMargin is returned by NewSampler for a negative or non-finite margin.
	ErrInvalidMargin = errors.New("minkowski: margin must be positive and finite")

	// ErrInvalidDirection is returned by NewSampler when a direction of the
	// set is not a unit vector.
	ErrInvalidDirection = errors.New("minkowski: sampled direction is not a unit vector")

	// ErrNoDirections is returned by NewSampler for an empty direction set.
	ErrNoDirections = errors.New("minkowski: direction set is empty")
)

// Config holds the tunables of a Sampler.
type Config struct {
	// Margin is added to the separating shift. Zero selects DefaultMargin.
	Margin float64

	// Directions is the sampled direction set, unit vectors. Nil selects
	// sampling.Default(). The slice is read, never modified.
	Directions []mgl64.Vec3

	// Logger receives invariant violations. Nil discards them.
	Logger *slog.Logger
}

// Sampler runs penetration queries. It holds no mutable state and can be
// shared between goroutines; each call must receive its own simplex.
type Sampler struct {
	margin     float64
	directions []mgl64.Vec3
	logger     *slog.Logger
}

// NewSampler validates cfg and fills in the defaults.
func NewSampler(cfg Config) (*Sampler, error) {
	if !(cfg.Margin >= 0) || math.IsInf(cfg.Margin, 1) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidMargin, cfg.Margin)
	}
	if cfg.Margin == 0 {
		cfg.Margin = DefaultMargin
	}

	if cfg.Directions == nil {
		cfg.Directions = sampling.Default()
	}
	if len(cfg.Directions) == 0 {
		return nil, ErrNoDirections
	}
	// A shorter direction understates the support distance, and the shift
	// would fall short of separating the shapes.
	for i, d := range cfg.Directions {
		if l := d.Len(); math.IsNaN(l) || math.Abs(l-1) > unitTolerance {
			return nil, fmt.Errorf("%w: direction %d %v has length %v", ErrInvalidDirection, i, d, l)
		}
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	return &Sampler{
		margin:     cfg.Margin,
		directions: cfg.Directions,
		logger:     cfg.Logger,
	}, nil
}

// Margin returns the margin in use.
func (s *Sampler) Margin() float64 {
	return s.margin
}

// Contact describes an approximate penetration between two shapes.
type Contact struct {
	// PointA is the contact point of the first shape.
	PointA mgl64.Vec3
	// PointB is the contact point of the second shape.
	PointB mgl64.Vec3
	// Normal is a unit vector pointing from the first shape toward the second.
	Normal mgl64.Vec3
}

// Depth returns the penetration depth measured along the normal.
// It is negative when the shapes turned out to be apart.
func (c Contact) Depth() float64 {
	return c.PointA.Sub(c.PointB).Dot(c.Normal)
}

// ClosestPoints computes an approximate contact between two penetrating shapes.
//
// The simplex is seeded into the refinement stage after being translated; it
// may be empty or hold what a failed GJK distance query on (a, b) left in it.
// It is modified in place.
//
// The shapes are assumed to penetrate. For disjoint shapes the returned contact
// has a negative depth.
func (s *Sampler) ClosestPoints(a, b *actor.Body, simplex *gjk.Simplex) (Contact, error) {
	cso := gjk.Difference{A: a, B: b}

	best := search(s.directions, func(direction mgl64.Vec3) mgl64.Vec3 {
		return cso.Support(direction).Point
	})

	shift := best.shift(s.margin)

	// Moving b by +shift moves every difference point by -shift
	shifted := b.Translated(shift)
	simplex.Translate(shift.Mul(-1))

	p1, p2, err := gjk.ClosestPoints(a, shifted, simplex)
	if errors.Is(err, gjk.ErrPenetrating) {
		s.logger.Warn("minkowski: shapes still overlap after separating shift",
			"margin", s.margin,
			"direction", best.direction,
			"distance", best.distance,
		)
		return Contact{}, fmt.Errorf("%w: shift %v", ErrNotSeparated, shift)
	}
	if err != nil {
		s.logger.Warn("minkowski: refinement did not converge", "shift", shift, "error", err)
		return Contact{}, fmt.Errorf("minkowski: %w", err)
	}

	return s.correctPair(p1, p2, shift, best)
}

// ProjectOrigin computes an approximate exit point for the origin lying inside
// body: a point of the boundary close to the origin. The simplex is modified in
// place, see ClosestPoints.
func (s *Sampler) ProjectOrigin(body *actor.Body, simplex *gjk.Simplex) (mgl64.Vec3, error) {
	best := search(s.directions, body.SupportWorld)

	shift := best.shift(s.margin)

	shifted := body.Translated(shift.Mul(-1))
	simplex.Translate(shift.Mul(-1))

	p, err := gjk.ProjectOrigin(shifted, simplex)
	if errors.Is(err, gjk.ErrPenetrating) {
		s.logger.Warn("minkowski: origin still inside after separating shift",
			"margin", s.margin,
			"direction", best.direction,
			"distance", best.distance,
		)
		return mgl64.Vec3{}, fmt.Errorf("%w: shift %v", ErrNotSeparated, shift)
	}
	if err != nil {
		s.logger.Warn("minkowski: refinement did not converge", "shift", shift, "error", err)
		return mgl64.Vec3{}, fmt.Errorf("minkowski: %w", err)
	}

	return s.correctProjection(p, best)
}
