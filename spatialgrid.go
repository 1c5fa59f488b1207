package depth

import (
	"math"
	"sort"

	"github.com/akmonengine/depth/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// CellKey holds the integer coordinates of a grid cell.
type CellKey struct {
	X, Y, Z int
}

// SpatialGrid is a uniform hashed grid used to find the pairs worth a narrow
// phase. Distinct cells may share a bucket; candidates are always confirmed
// with an AABB test, so collisions only cost time.
type SpatialGrid struct {
	cellSize float64
	buckets  [][]int
	mask     int
}

// NewSpatialGrid creates a grid of square cells of side cellSize, hashed into
// numBuckets buckets rounded up to a power of two.
func NewSpatialGrid(cellSize float64, numBuckets int) *SpatialGrid {
	numBuckets = nextPowerOfTwo(numBuckets)

	buckets := make([][]int, numBuckets)
	for i := range buckets {
		buckets[i] = make([]int, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		buckets:  buckets,
		mask:     numBuckets - 1,
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// BroadPhase lists the pairs of bodies whose bounding boxes overlap. Pairs are
// ordered by the index of their first body, then of their second one, and a
// pair always has BodyA before BodyB in bodies.
func BroadPhase(grid *SpatialGrid, bodies []*actor.Body) []Pair {
	bounds := make([]actor.AABB, len(bodies))

	grid.Clear()
	for i, body := range bodies {
		bounds[i] = actor.Bounds(body)
		grid.Insert(i, bounds[i])
	}

	return grid.FindPairs(bodies, bounds)
}

// Insert adds index to every cell covered by bounds.
func (g *SpatialGrid) Insert(index int, bounds actor.AABB) {
	g.forEachBucket(bounds, func(bucket int) {
		g.buckets[bucket] = append(g.buckets[bucket], index)
	})
}

// Clear empties the grid and keeps its memory.
func (g *SpatialGrid) Clear() {
	for i := range g.buckets {
		g.buckets[i] = g.buckets[i][:0]
	}
}

// FindPairs returns the overlapping pairs among inserted bodies. bounds[i]
// must be the box bodies[i] was inserted with.
func (g *SpatialGrid) FindPairs(bodies []*actor.Body, bounds []actor.AABB) []Pair {
	pairs := make([]Pair, 0, len(bodies)/2)
	seen := make([]bool, len(bodies))
	candidates := make([]int, 0, 8)

	for i := range bodies {
		candidates = candidates[:0]

		g.forEachBucket(bounds[i], func(bucket int) {
			for _, other := range g.buckets[bucket] {
				if other <= i || seen[other] {
					continue
				}
				seen[other] = true

				if bounds[i].Overlaps(bounds[other]) {
					candidates = append(candidates, other)
				}
			}
		})

		sort.Ints(candidates)
		for _, other := range candidates {
			pairs = append(pairs, Pair{BodyA: bodies[i], BodyB: bodies[other]})
		}

		clear(seen)
	}

	return pairs
}

func (g *SpatialGrid) forEachBucket(bounds actor.AABB, fn func(bucket int)) {
	lo := g.worldToCell(bounds.Min)
	hi := g.worldToCell(bounds.Max)

	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				fn(g.hashCell(CellKey{x, y, z}))
			}
		}
	}
}

func (g *SpatialGrid) worldToCell(pos mgl64.Vec3) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X() / g.cellSize)),
		Y: int(math.Floor(pos.Y() / g.cellSize)),
		Z: int(math.Floor(pos.Z() / g.cellSize)),
	}
}

func (g *SpatialGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & g.mask
}
