// Package sampling enumerates fixed, deterministic sets of unit directions
// covering the sphere.
//
// Directions are built by projecting the cell centers of a regular grid laid
// on each face of the unit cube onto the sphere. The result is close to
// uniform, the same for every call, and for odd resolutions contains the six
// coordinate axes exactly, which makes axis-aligned configurations resolve
// without angular error.
package sampling

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultResolution is the per-face grid size of Default: 6*11*11 = 726 directions.
const DefaultResolution = 11

// ErrInvalidResolution is returned for a grid size below one.
var ErrInvalidResolution = errors.New("sampling: resolution must be at least 1")

var cache sync.Map // int -> []mgl64.Vec3

// cubeFaces lists the face axis and sign, in enumeration order.
var cubeFaces = [6]struct {
	axis int
	sign float64
}{
	{0, 1}, {0, -1},
	{1, 1}, {1, -1},
	{2, 1}, {2, -1},
}

// Directions returns 6*resolution*resolution unit vectors.
//
// The returned slice is shared between callers and must not be modified.
func Directions(resolution int) ([]mgl64.Vec3, error) {
	if resolution < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidResolution, resolution)
	}

	if dirs, ok := cache.Load(resolution); ok {
		return dirs.([]mgl64.Vec3), nil
	}

	dirs, _ := cache.LoadOrStore(resolution, cubeSphere(resolution))
	return dirs.([]mgl64.Vec3), nil
}

// Default returns Directions(DefaultResolution).
func Default() []mgl64.Vec3 {
	dirs, _ := Directions(DefaultResolution)
	return dirs
}

func cubeSphere(resolution int) []mgl64.Vec3 {
	dirs := make([]mgl64.Vec3, 0, 6*resolution*resolution)
	r := float64(resolution)

	for _, face := range cubeFaces {
		u := (face.axis + 1) % 3
		v := (face.axis + 2) % 3

		for i := 0; i < resolution; i++ {
			for j := 0; j < resolution; j++ {
				var p mgl64.Vec3
				p[face.axis] = face.sign
				// Integer numerators keep the middle cell at exactly 0
				p[u] = float64(2*i+1-resolution) / r
				p[v] = float64(2*j+1-resolution) / r

				dirs = append(dirs, p.Normalize())
			}
		}
	}

	return dirs
}
