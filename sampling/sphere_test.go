package sampling

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirections_Count(t *testing.T) {
	for _, resolution := range []int{1, 2, 5, 11} {
		dirs, err := Directions(resolution)
		require.NoError(t, err)
		assert.Len(t, dirs, 6*resolution*resolution)
	}
}

func TestDirections_UnitLength(t *testing.T) {
	dirs, err := Directions(7)
	require.NoError(t, err)

	for _, d := range dirs {
		assert.InDelta(t, 1.0, d.Len(), 1e-12)
	}
}

func TestDirections_AxesForOddResolution(t *testing.T) {
	axes := []mgl64.Vec3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}

	for _, resolution := range []int{1, 3, DefaultResolution} {
		dirs, err := Directions(resolution)
		require.NoError(t, err)

		for _, axis := range axes {
			assert.Contains(t, dirs, axis, "resolution %d", resolution)
		}
	}
}

func TestDirections_CoverSphere(t *testing.T) {
	dirs := Default()

	// Every direction of a coarse probe set has a sample within a few degrees
	probes := []mgl64.Vec3{
		mgl64.Vec3{1, 1, 1}.Normalize(),
		mgl64.Vec3{-1, 2, 0.5}.Normalize(),
		mgl64.Vec3{0.3, -0.2, -1}.Normalize(),
	}

	for _, probe := range probes {
		best := -1.0
		for _, d := range dirs {
			if dot := d.Dot(probe); dot > best {
				best = dot
			}
		}
		assert.Greater(t, best, 0.99, "probe %v", probe)
	}
}

func TestDirections_Deterministic(t *testing.T) {
	first, err := Directions(4)
	require.NoError(t, err)

	second, err := Directions(4)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, cubeSphere(4), first)
}

func TestDirections_InvalidResolution(t *testing.T) {
	for _, resolution := range []int{0, -3} {
		dirs, err := Directions(resolution)
		assert.ErrorIs(t, err, ErrInvalidResolution)
		assert.Nil(t, dirs)
	}
}

func TestDefault(t *testing.T) {
	assert.Len(t, Default(), 6*DefaultResolution*DefaultResolution)
}
