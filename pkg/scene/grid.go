// Package scene builds the static vertex data for the grass field, the land
// quad and the skybox. Nothing here touches OpenGL.
package scene

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// GridStrategy selects how anchor coordinates along each axis are produced.
type GridStrategy int

const (
	// GridAccumulate steps with repeated float32 addition (x += step).
	GridAccumulate GridStrategy = iota
	// GridIndexed computes each coordinate as min + i*step.
	GridIndexed
)

// String returns the flag spelling of the strategy.
func (s GridStrategy) String() string {
	switch s {
	case GridAccumulate:
		return "accumulate"
	case GridIndexed:
		return "indexed"
	default:
		return fmt.Sprintf("GridStrategy(%d)", int(s))
	}
}

// ParseGridStrategy parses the flag spelling of a strategy.
func ParseGridStrategy(name string) (GridStrategy, error) {
	switch name {
	case "accumulate":
		return GridAccumulate, nil
	case "indexed":
		return GridIndexed, nil
	}
	return 0, fmt.Errorf("unknown grid strategy %q", name)
}

// GridSpec describes a square lattice of grass anchors on the XZ plane.
type GridSpec struct {
	Min    float32 // inclusive lower bound on x and z
	Max    float32 // exclusive upper bound on x and z
	Step   float32
	Height float32 // y of every anchor
}

// DefaultGrid is the 20x20 field at y=-1 with 0.06 spacing.
var DefaultGrid = GridSpec{Min: -10, Max: 10, Step: 0.06, Height: -1}

// axis returns the coordinates along one axis.
func (g GridSpec) axis(strategy GridStrategy) []float32 {
	if g.Step <= 0 || g.Max <= g.Min {
		return nil
	}

	if strategy == GridIndexed {
		n := int(math.Ceil(float64(g.Max-g.Min) / float64(g.Step)))
		coords := make([]float32, 0, n)
		for i := 0; i < n; i++ {
			v := g.Min + float32(i)*g.Step
			if v >= g.Max {
				break
			}
			coords = append(coords, v)
		}
		return coords
	}

	var coords []float32
	for v := g.Min; v < g.Max; v += g.Step {
		coords = append(coords, v)
	}
	return coords
}

// PerAxis returns the number of anchors along one axis.
func (g GridSpec) PerAxis(strategy GridStrategy) int {
	return len(g.axis(strategy))
}

// Count returns the total number of anchors the strategy produces.
func (g GridSpec) Count(strategy GridStrategy) int {
	n := g.PerAxis(strategy)
	return n * n
}

// GrassAnchors lays out one anchor per lattice point, x-major then z.
func GrassAnchors(g GridSpec, strategy GridStrategy) []mgl32.Vec3 {
	axis := g.axis(strategy)
	anchors := make([]mgl32.Vec3, 0, len(axis)*len(axis))
	for _, x := range axis {
		for _, z := range axis {
			anchors = append(anchors, mgl32.Vec3{x, g.Height, z})
		}
	}
	return anchors
}

// Flatten packs vectors into a tightly packed float slice for upload.
func Flatten(vs []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}
