package gjk

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// degenerateEpsilon is the relative size under which a simplex feature is
// considered flat: squared lengths, areas and volumes are compared against
// the product of the squared edge lengths they are built from.
const degenerateEpsilon = 1e-24

// CSOPoint is a point of the Minkowski difference A - B together with the
// two support points it was built from. Point == A - B always holds.
type CSOPoint struct {
	Point mgl64.Vec3
	A     mgl64.Vec3
	B     mgl64.Vec3
}

// Translated moves the difference point by v. This is what happens to the
// difference when the second shape is moved by -v, so B follows that move.
func (p CSOPoint) Translated(v mgl64.Vec3) CSOPoint {
	return CSOPoint{
		Point: p.Point.Add(v),
		A:     p.A,
		B:     p.B.Sub(v),
	}
}

// Simplex represents a set of 1-4 points in the Minkowski difference space.
// The simplex evolves during GJK iterations, always containing the most recent support points.
// Size progression: 1 point → 2 points (line) → 3 points (triangle) → 4 points (tetrahedron)
//
// Weights holds the barycentric coordinates of the point closest to the
// origin; it is only meaningful after a distance query returned.
type Simplex struct {
	Points  [4]CSOPoint
	Weights [4]float64
	Count   int
}

func (s *Simplex) Reset() {
	s.Count = 0
}

var SimplexPool = sync.Pool{
	New: func() interface{} {
		return &Simplex{}
	},
}

// Translate moves every point held by the simplex by v.
func (s *Simplex) Translate(v mgl64.Vec3) {
	for i := 0; i < s.Count; i++ {
		s.Points[i] = s.Points[i].Translated(v)
	}
}

// Closest returns the weighted combination of the simplex points.
func (s *Simplex) Closest() mgl64.Vec3 {
	var p mgl64.Vec3
	for i := 0; i < s.Count; i++ {
		p = p.Add(s.Points[i].Point.Mul(s.Weights[i]))
	}
	return p
}

// Witnesses returns the points on A and on B matching Closest.
func (s *Simplex) Witnesses() (mgl64.Vec3, mgl64.Vec3) {
	var a, b mgl64.Vec3
	for i := 0; i < s.Count; i++ {
		a = a.Add(s.Points[i].A.Mul(s.Weights[i]))
		b = b.Add(s.Points[i].B.Mul(s.Weights[i]))
	}
	return a, b
}

func (s *Simplex) push(p CSOPoint) {
	s.Points[s.Count] = p
	s.Count++
}

func (s *Simplex) holds(p mgl64.Vec3) bool {
	for i := 0; i < s.Count; i++ {
		q := s.Points[i].Point
		if q.Sub(p).LenSqr() <= degenerateEpsilon*math.Max(q.LenSqr(), p.LenSqr()) {
			return true
		}
	}
	return false
}

// feature is a sub-simplex: indices into Points and their weights.
type feature struct {
	idx [3]int
	w   [3]float64
	n   int
}

func vertexFeature(i int) feature {
	return feature{idx: [3]int{i}, w: [3]float64{1}, n: 1}
}

func (s *Simplex) point(f feature) mgl64.Vec3 {
	var p mgl64.Vec3
	for k := 0; k < f.n; k++ {
		p = p.Add(s.Points[f.idx[k]].Point.Mul(f.w[k]))
	}
	return p
}

// keep shrinks the simplex to f.
func (s *Simplex) keep(f feature) {
	var points [4]CSOPoint
	for k := 0; k < f.n; k++ {
		points[k] = s.Points[f.idx[k]]
	}

	s.Points = points
	s.Weights = [4]float64{f.w[0], f.w[1], f.w[2], 0}
	s.Count = f.n
}

// reduce replaces the simplex by the smallest sub-simplex supporting the
// point closest to the origin, stores its barycentric weights and returns
// that point. It reports true when the origin lies inside the tetrahedron.
func (s *Simplex) reduce() (mgl64.Vec3, bool) {
	var f feature

	switch s.Count {
	case 1:
		f = vertexFeature(0)
	case 2:
		f = s.segment(0, 1)
	case 3:
		f = s.triangle(0, 1, 2)
	case 4:
		var contained bool
		if f, contained = s.tetrahedron(); contained {
			s.Weights = [4]float64{0.25, 0.25, 0.25, 0.25}
			return mgl64.Vec3{}, true
		}
	}

	s.keep(f)
	return s.Closest(), false
}

// closerVertex picks whichever of i and j lies nearer to the origin.
func (s *Simplex) closerVertex(i, j int) feature {
	if s.Points[j].Point.LenSqr() < s.Points[i].Point.LenSqr() {
		return vertexFeature(j)
	}
	return vertexFeature(i)
}

// segment handles the line case (2 points: A and B).
func (s *Simplex) segment(i, j int) feature {
	a := s.Points[i].Point
	b := s.Points[j].Point
	ab := b.Sub(a)

	denom := ab.LenSqr()
	if denom <= degenerateEpsilon*math.Max(a.LenSqr(), b.LenSqr()) {
		return s.closerVertex(i, j)
	}

	t := -a.Dot(ab) / denom
	if t <= 0 {
		return vertexFeature(i)
	}
	if t >= 1 {
		return vertexFeature(j)
	}

	return feature{idx: [3]int{i, j}, w: [3]float64{1 - t, t}, n: 2}
}

// triangle handles the triangle case (3 points: A, B, C), testing the
// Voronoi regions of the vertices, then of the edges, then the face.
func (s *Simplex) triangle(i, j, k int) feature {
	a := s.Points[i].Point
	b := s.Points[j].Point
	c := s.Points[k].Point

	ab := b.Sub(a)
	ac := c.Sub(a)

	// Collinear points: best of the three edges
	if ab.Cross(ac).LenSqr() <= degenerateEpsilon*ab.LenSqr()*ac.LenSqr() {
		return s.bestFeature(s.segment(i, j), s.segment(j, k), s.segment(i, k))
	}

	// Region A
	d1 := -ab.Dot(a)
	d2 := -ac.Dot(a)
	if d1 <= 0 && d2 <= 0 {
		return vertexFeature(i)
	}

	// Region B
	d3 := -ab.Dot(b)
	d4 := -ac.Dot(b)
	if d3 >= 0 && d4 <= d3 {
		return vertexFeature(j)
	}

	// Region AB
	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		t := d1 / (d1 - d3)
		return feature{idx: [3]int{i, j}, w: [3]float64{1 - t, t}, n: 2}
	}

	// Region C
	d5 := -ab.Dot(c)
	d6 := -ac.Dot(c)
	if d6 >= 0 && d5 <= d6 {
		return vertexFeature(k)
	}

	// Region AC
	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		t := d2 / (d2 - d6)
		return feature{idx: [3]int{i, k}, w: [3]float64{1 - t, t}, n: 2}
	}

	// Region BC
	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		t := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return feature{idx: [3]int{j, k}, w: [3]float64{1 - t, t}, n: 2}
	}

	// Region ABC
	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return feature{idx: [3]int{i, j, k}, w: [3]float64{1 - v - w, v, w}, n: 3}
}

// tetrahedron handles the tetrahedron case (4 points).
//
// The origin is contained unless it lies strictly outside one of the faces.
// Otherwise the closest feature is searched among the faces it lies outside
// of. A flat tetrahedron has no inside, so all four faces are candidates.
func (s *Simplex) tetrahedron() (feature, bool) {
	faces := [4][4]int{
		{0, 1, 2, 3}, // face ABC, opposite point is D
		{0, 1, 3, 2}, // face ABD, opposite point is C
		{0, 2, 3, 1}, // face ACD, opposite point is B
		{1, 2, 3, 0}, // face BCD, opposite point is A
	}

	var best feature
	bestDist := -1.0

	for _, face := range faces {
		a := s.Points[face[0]].Point
		b := s.Points[face[1]].Point
		c := s.Points[face[2]].Point
		d := s.Points[face[3]].Point

		normal := b.Sub(a).Cross(c.Sub(a))
		signOpposite := normal.Dot(d.Sub(a))
		signOrigin := -normal.Dot(a)

		flat := signOpposite*signOpposite <= degenerateEpsilon*normal.LenSqr()*d.Sub(a).LenSqr()
		if !flat && signOrigin*signOpposite >= 0 {
			continue
		}

		f := s.triangle(face[0], face[1], face[2])
		if dist := s.point(f).LenSqr(); bestDist < 0 || dist < bestDist {
			best = f
			bestDist = dist
		}
	}

	if bestDist < 0 {
		return feature{}, true
	}

	return best, false
}

func (s *Simplex) bestFeature(candidates ...feature) feature {
	best := candidates[0]
	bestDist := s.point(best).LenSqr()

	for _, f := range candidates[1:] {
		if dist := s.point(f).LenSqr(); dist < bestDist {
			best = f
			bestDist = dist
		}
	}

	return best
}
