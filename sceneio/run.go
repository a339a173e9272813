package sceneio

import (
	"fmt"

	"github.com/arl/goregion/buildctx"
	"github.com/arl/goregion/region"
)

// Build replays sc's pipeline against an empty region.Region and returns the
// result. Steps run in order; each combines the running result with the
// step's named shape using Op.
func Build(sc *Scene) (*region.Region, error) {
	return BuildWithContext(sc, nil)
}

// BuildWithContext is Build, attaching ctx to the region before running the
// pipeline so every step's combine is logged and timed against it. Pass nil
// for the same behavior as Build.
func BuildWithContext(sc *Scene, ctx *buildctx.Context) (*region.Region, error) {
	r := region.New()
	r.SetContext(ctx)
	for i, step := range sc.Pipeline {
		shape, ok := sc.shapeByName(step.Shape)
		if !ok {
			return nil, &LoadError{Step: i, Cause: fmt.Errorf("unknown shape %q", step.Shape)}
		}
		rect := shape.Rectangle()
		switch step.Op {
		case "union":
			r.UnionRect(rect)
		case "intersect":
			r.IntersectRect(rect)
		case "subtract":
			r.SubtractRect(rect)
		case "xor":
			r.XorRect(rect)
		default:
			return nil, &LoadError{Step: i, Cause: fmt.Errorf("unknown op %q", step.Op)}
		}
	}
	return r, nil
}
