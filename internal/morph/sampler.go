// Package morph implements the particle morph engine. It samples point
// clouds from triangulated meshes, pairs every point with a scattered
// target, and drives a shared position buffer through explode and implode
// transitions between models.
package morph

import (
	"fmt"
	"math/rand"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/pointmorph/pkg/geometry"
	"github.com/Faultbox/pointmorph/pkg/math"
)

// SampleMode selects how triangles are chosen for each draw.
type SampleMode int

const (
	// SampleByArea weights every triangle by its surface area.
	SampleByArea SampleMode = iota
	// SampleByTriangle picks triangles uniformly by index. Small triangles
	// are over-represented, so dense regions of the mesh cluster.
	SampleByTriangle
)

// String returns the configuration name of the mode.
func (m SampleMode) String() string {
	switch m {
	case SampleByArea:
		return "area"
	case SampleByTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("SampleMode(%d)", int(m))
	}
}

// ParseSampleMode converts a configuration name into a SampleMode.
func ParseSampleMode(s string) (SampleMode, error) {
	switch s {
	case "", "area":
		return SampleByArea, nil
	case "triangle":
		return SampleByTriangle, nil
	default:
		return 0, fmt.Errorf("%w: unknown sampling mode %q", ErrOutOfRangeParameter, s)
	}
}

// Sampler draws random points on the surface of a mesh.
type Sampler struct {
	Mode SampleMode
	Rand *rand.Rand
	Log  *zap.Logger
}

// NewSampler creates a sampler. A nil logger discards output.
func NewSampler(mode SampleMode, rng *rand.Rand, log *zap.Logger) *Sampler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sampler{Mode: mode, Rand: rng, Log: log}
}

// Sample draws count points from mesh with a quiet, single-use sampler.
func Sample(mesh geometry.Mesh, count int, mode SampleMode, rng *rand.Rand) ([]math.Vec3, error) {
	return NewSampler(mode, rng, nil).Sample(mesh, count)
}

// Sample returns exactly count points, drawn with replacement, each lying
// inside one of the mesh triangles.
func (s *Sampler) Sample(mesh geometry.Mesh, count int) ([]math.Vec3, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: particle count %d", ErrOutOfRangeParameter, count)
	}
	if len(mesh.Triangles) == 0 {
		return nil, fmt.Errorf("%w: %q has no triangles", ErrInvalidMesh, mesh.Name)
	}

	pick := s.pickUniform(len(mesh.Triangles))
	if s.Mode == SampleByArea {
		cumulative, total := cumulativeAreas(mesh.Triangles)
		if total > 0 {
			pick = s.pickByArea(cumulative, total)
		} else {
			s.Log.Warn("mesh has zero surface area, sampling by triangle",
				zap.String("mesh", mesh.Name),
				zap.Int("triangles", len(mesh.Triangles)),
			)
		}
	}

	points := make([]math.Vec3, count)
	for i := range points {
		points[i] = s.pointIn(mesh.Triangles[pick()])
	}
	return points, nil
}

// pointIn returns a uniformly distributed point inside tri. Draws that land
// in the far half of the parallelogram are reflected back into the triangle.
func (s *Sampler) pointIn(tri geometry.Triangle) math.Vec3 {
	r1 := s.Rand.Float32()
	r2 := s.Rand.Float32()
	if r1+r2 > 1 {
		r1, r2 = 1-r1, 1-r2
	}
	return tri.Point(r1, r2)
}

func (s *Sampler) pickUniform(n int) func() int {
	return func() int {
		return s.Rand.Intn(n)
	}
}

func (s *Sampler) pickByArea(cumulative []float64, total float64) func() int {
	last := len(cumulative) - 1
	return func() int {
		r := s.Rand.Float64() * total
		i := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] > r })
		if i > last {
			i = last
		}
		return i
	}
}

// cumulativeAreas returns the running sum of triangle areas and the total.
func cumulativeAreas(tris []geometry.Triangle) ([]float64, float64) {
	cumulative := make([]float64, len(tris))
	var total float64
	for i, t := range tris {
		total += float64(t.Area())
		cumulative[i] = total
	}
	return cumulative, total
}
