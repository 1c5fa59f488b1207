package depth

import (
	"testing"

	"github.com/akmonengine/depth/actor"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createBox(position, halfExtents mgl64.Vec3) *actor.Body {
	return actor.NewBody(
		actor.Transform{Position: position, Rotation: mgl64.QuatIdent()},
		&actor.Box{HalfExtents: halfExtents},
	)
}

func createSphere(position mgl64.Vec3, radius float64) *actor.Body {
	return actor.NewBody(
		actor.Transform{Position: position, Rotation: mgl64.QuatIdent()},
		&actor.Sphere{Radius: radius},
	)
}

func newQuery(t *testing.T, opts ...Option) *Query {
	t.Helper()
	q, err := New(opts...)
	require.NoError(t, err)
	return q
}

func assertVecInDelta(t *testing.T, expected, actual mgl64.Vec3, delta float64) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], delta, "component %d of %v", i, actual)
	}
}
