package depth

import (
	"errors"

	"github.com/akmonengine/depth/gjk"
	"github.com/akmonengine/depth/minkowski"
	"github.com/akmonengine/depth/sampling"
)

var (
	// ErrPenetrating is returned by Distance when the shapes overlap.
	ErrPenetrating = errors.New("depth: shapes penetrate")

	// ErrNotPenetrating is returned by Penetration when the shapes are apart.
	ErrNotPenetrating = errors.New("depth: shapes do not penetrate")
)

// Errors of the lower layers, re-exported so that callers only import depth.
var (
	ErrNotSeparated      = minkowski.ErrNotSeparated
	ErrDegenerateNormal  = minkowski.ErrDegenerateNormal
	ErrInvalidMargin     = minkowski.ErrInvalidMargin
	ErrInvalidDirection  = minkowski.ErrInvalidDirection
	ErrNotConverged      = gjk.ErrNotConverged
	ErrInvalidResolution = sampling.ErrInvalidResolution
)
