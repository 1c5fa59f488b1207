package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/akmonengine/depth"
	"github.com/akmonengine/depth/actor"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
)

func main() {
	handler := log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "overlap",
	})

	query, err := depth.New(
		depth.WithMargin(0.01),
		depth.WithLogger(depth.NewLogger(handler)),
	)
	if err != nil {
		panic(err)
	}

	hull, err := actor.NewConvexHull([]mgl64.Vec3{
		{-1, 0, -1}, {1, 0, -1}, {1, 0, 1}, {-1, 0, 1}, {0, 1.5, 0},
	})
	if err != nil {
		panic(err)
	}

	bodies := []*actor.Body{
		actor.NewBody(actor.NewTransform(), &actor.Box{HalfExtents: mgl64.Vec3{1, 1, 1}}),
		actor.NewBody(placed(mgl64.Vec3{1.6, 0.2, 0}, 0), &actor.Sphere{Radius: 0.5}),
		actor.NewBody(placed(mgl64.Vec3{-1.2, 1.5, 0}, math.Pi/6), &actor.Capsule{HalfHeight: 0.8, Radius: 0.3}),
		actor.NewBody(placed(mgl64.Vec3{0, -1.8, 0.4}, 0), hull),
		actor.NewBody(placed(mgl64.Vec3{8, 0, 0}, 0), &actor.Sphere{Radius: 1}),
	}

	pairs := depth.BroadPhase(depth.NewSpatialGrid(2, 64), bodies)
	fmt.Printf("Broad phase: %d candidate pairs\n", len(pairs))

	results, err := query.NarrowPhase(context.Background(), pairs, 4)
	if err != nil {
		panic(err)
	}

	for _, result := range results {
		switch {
		case !result.Colliding:
			p1, p2, err := query.Distance(result.Pair.BodyA, result.Pair.BodyB)
			if err != nil {
				fmt.Printf("  %v / %v: %v\n", shapeName(result.Pair.BodyA), shapeName(result.Pair.BodyB), err)
				continue
			}
			fmt.Printf("  %v / %v: apart, distance %.4f\n", shapeName(result.Pair.BodyA), shapeName(result.Pair.BodyB), p2.Sub(p1).Len())
		case result.Err != nil:
			fmt.Printf("  %v / %v: unresolved (%v)\n", shapeName(result.Pair.BodyA), shapeName(result.Pair.BodyB), result.Err)
		default:
			c := result.Contact
			fmt.Printf("  %v / %v: depth %.4f normal %.3v\n", shapeName(result.Pair.BodyA), shapeName(result.Pair.BodyB), c.Depth(), c.Normal)
		}
	}

	// One-shape mode: where does the origin leave the sphere?
	point, inside, err := query.Project(bodies[1].Translated(mgl64.Vec3{-1.3, 0, 0}))
	switch {
	case errors.Is(err, depth.ErrNotSeparated):
		fmt.Println("Projection unresolved")
	case err != nil:
		panic(err)
	default:
		fmt.Printf("Origin projection: %.4v (inside: %v)\n", point, inside)
	}
}

func placed(position mgl64.Vec3, angleZ float64) actor.Transform {
	return actor.Transform{
		Position: position,
		Rotation: mgl64.QuatRotate(angleZ, mgl64.Vec3{0, 0, 1}),
	}
}

func shapeName(body *actor.Body) string {
	switch body.Shape.Type() {
	case actor.ShapeTypeBox:
		return "box"
	case actor.ShapeTypeSphere:
		return "sphere"
	case actor.ShapeTypeCapsule:
		return "capsule"
	case actor.ShapeTypeConvexHull:
		return "hull"
	default:
		return "shape"
	}
}
