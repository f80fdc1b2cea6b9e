package geometry

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/pointmorph/pkg/math"
)

// Shape names a procedural surface.
type Shape string

// Supported shapes.
const (
	ShapeSphere Shape = "sphere"
	ShapeTorus  Shape = "torus"
	ShapeKnot   Shape = "knot"
	ShapeBox    Shape = "box"
)

// DefaultSegments is used when a Spec leaves Segments at zero.
const DefaultSegments = 48

// Spec describes a procedural mesh. Size is the outer radius (or half
// extent for boxes) in model units.
type Spec struct {
	Shape    Shape
	Size     float32
	Segments int
}

// Build generates the mesh described by spec.
func Build(name string, spec Spec) (Mesh, error) {
	if spec.Size <= 0 {
		return Mesh{}, fmt.Errorf("mesh %q: size must be positive, got %v", name, spec.Size)
	}
	seg := spec.Segments
	if seg == 0 {
		seg = DefaultSegments
	}
	if seg < 3 {
		return Mesh{}, fmt.Errorf("mesh %q: need at least 3 segments, got %d", name, seg)
	}

	switch spec.Shape {
	case ShapeSphere:
		return sphere(name, spec.Size, seg), nil
	case ShapeTorus:
		return torus(name, spec.Size*0.7, spec.Size*0.3, seg), nil
	case ShapeKnot:
		return knot(name, spec.Size, seg), nil
	case ShapeBox:
		return box(name, spec.Size), nil
	default:
		return Mesh{}, fmt.Errorf("mesh %q: unknown shape %q", name, spec.Shape)
	}
}

func sphere(name string, radius float32, seg int) Mesh {
	cols, rows := seg, seg/2
	return gridMesh(name, cols, rows, func(i, j int) math.Vec3 {
		phi := float32(i) / float32(cols) * 2 * math32.Pi
		theta := float32(j) / float32(rows) * math32.Pi
		st, ct := math32.Sincos(theta)
		sp, cp := math32.Sincos(phi)
		return math.Vec3{X: radius * st * cp, Y: radius * ct, Z: radius * st * sp}
	})
}

func torus(name string, major, minor float32, seg int) Mesh {
	cols, rows := seg, seg/2
	return gridMesh(name, cols, rows, func(i, j int) math.Vec3 {
		u := float32(i) / float32(cols) * 2 * math32.Pi
		v := float32(j) / float32(rows) * 2 * math32.Pi
		su, cu := math32.Sincos(u)
		sv, cv := math32.Sincos(v)
		r := major + minor*cv
		return math.Vec3{X: r * cu, Y: minor * sv, Z: r * su}
	})
}

// knotCurve traces a (2,3) torus knot.
func knotCurve(u, radius float32) math.Vec3 {
	const p, q = 2.0, 3.0
	cu, su := math32.Cos(u), math32.Sin(u)
	quOverP := q / p * u
	cs := math32.Cos(quOverP)
	return math.Vec3{
		X: radius * (2 + cs) * 0.5 * cu,
		Y: radius * math32.Sin(quOverP) * 0.5,
		Z: radius * (2 + cs) * 0.5 * su,
	}
}

func knot(name string, size float32, seg int) Mesh {
	radius := size / 1.6
	tube := size * 0.15
	cols, rows := seg*4, seg/4+3
	return gridMesh(name, cols, rows, func(i, j int) math.Vec3 {
		u := float32(i) / float32(cols) * 2 * 2 * math32.Pi
		v := float32(j) / float32(rows) * 2 * math32.Pi

		p1 := knotCurve(u, radius)
		p2 := knotCurve(u+0.01, radius)
		t := p2.Sub(p1)
		n := p2.Add(p1)
		b := t.Cross(n).Normalize()
		n = b.Cross(t).Normalize()

		sv, cv := math32.Sincos(v)
		return p1.Add(n.Scale(tube * cv)).Add(b.Scale(tube * sv))
	})
}

func box(name string, h float32) Mesh {
	c := [8]math.Vec3{
		{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
	}
	faces := [6][4]int{
		{0, 3, 2, 1}, // back
		{4, 5, 6, 7}, // front
		{0, 4, 7, 3}, // left
		{1, 2, 6, 5}, // right
		{0, 1, 5, 4}, // bottom
		{3, 7, 6, 2}, // top
	}
	tris := make([]Triangle, 0, 12)
	for _, f := range faces {
		tris = append(tris,
			Triangle{c[f[0]], c[f[1]], c[f[2]]},
			Triangle{c[f[0]], c[f[2]], c[f[3]]},
		)
	}
	return Mesh{Name: name, Triangles: tris}
}
