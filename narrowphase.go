package depth

import (
	"context"
	"errors"

	"github.com/akmonengine/depth/actor"
	"github.com/akmonengine/depth/gjk"
)

// ErrInvalidWorkers is returned by NarrowPhase for a worker count below one.
var ErrInvalidWorkers = errors.New("depth: workers must be at least 1")

// Pair represents a pair of bodies that potentially collide
type Pair struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

// Result is the outcome of the narrow phase for one pair.
type Result struct {
	Pair Pair

	// Colliding is true when the boolean GJK test found the pair overlapping.
	Colliding bool

	// Contact is set when Colliding is true and Err is nil.
	Contact Contact

	// Err is set when the penetration of a colliding pair could not be
	// resolved. It does not stop the rest of the batch.
	Err error
}

// NarrowPhase tests every pair with boolean GJK and computes a contact for the
// overlapping ones. Pairs are spread across workersCount goroutines, each
// query using its own pooled simplex; the simplex of the intersection test
// seeds the penetration query of the same pair.
//
// Results are in the order of pairs. The returned error is only set when ctx
// is done or workersCount is invalid; per-pair failures are reported in
// Result.Err.
func (q *Query) NarrowPhase(ctx context.Context, pairs []Pair, workersCount int) ([]Result, error) {
	if workersCount < 1 {
		return nil, ErrInvalidWorkers
	}

	results := make([]Result, len(pairs))

	err := task(ctx, workersCount, pairs, func(i int, pair Pair) error {
		results[i] = q.collide(i, pair)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (q *Query) collide(i int, pair Pair) Result {
	result := Result{Pair: pair}

	simplex := acquireSimplex()
	defer gjk.SimplexPool.Put(simplex)

	if !gjk.Intersect(pair.BodyA, pair.BodyB, simplex) {
		return result
	}
	result.Colliding = true

	contact, err := q.sampler.ClosestPoints(pair.BodyA, pair.BodyB, simplex)
	if err != nil {
		q.logger.WithPair(i).Debug("depth: contact not resolved", "error", err)
		result.Err = err
		return result
	}

	result.Contact = contact
	return result
}
