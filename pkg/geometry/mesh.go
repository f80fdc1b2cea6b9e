// Package geometry provides triangulated surfaces and a procedural mesh
// library used as the model source for the morph engine.
package geometry

import (
	"github.com/Faultbox/pointmorph/pkg/math"
)

// Triangle is a single face given by its three corner positions.
type Triangle struct {
	A, B, C math.Vec3
}

// Area returns the surface area of the triangle.
func (t Triangle) Area() float32 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Length() / 2
}

// Point returns A + r1*(B-A) + r2*(C-A).
func (t Triangle) Point(r1, r2 float32) math.Vec3 {
	return t.A.Add(t.B.Sub(t.A).Scale(r1)).Add(t.C.Sub(t.A).Scale(r2))
}

// Mesh is a triangulated surface in model space.
type Mesh struct {
	Name      string
	Triangles []Triangle
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Area returns the total surface area.
func (m Mesh) Area() float32 {
	var total float32
	for _, t := range m.Triangles {
		total += t.Area()
	}
	return total
}

// Bounds returns the axis-aligned bounding box. An empty mesh has zero bounds.
func (m Mesh) Bounds() Bounds {
	if len(m.Triangles) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Triangles[0].A, Max: m.Triangles[0].A}
	for _, t := range m.Triangles {
		for _, p := range [3]math.Vec3{t.A, t.B, t.C} {
			b.Min.X = min(b.Min.X, p.X)
			b.Min.Y = min(b.Min.Y, p.Y)
			b.Min.Z = min(b.Min.Z, p.Z)
			b.Max.X = max(b.Max.X, p.X)
			b.Max.Y = max(b.Max.Y, p.Y)
			b.Max.Z = max(b.Max.Z, p.Z)
		}
	}
	return b
}

// gridMesh triangulates a (cols+1) x (rows+1) vertex grid produced by at,
// two triangles per cell.
func gridMesh(name string, cols, rows int, at func(i, j int) math.Vec3) Mesh {
	verts := make([]math.Vec3, 0, (cols+1)*(rows+1))
	for j := 0; j <= rows; j++ {
		for i := 0; i <= cols; i++ {
			verts = append(verts, at(i, j))
		}
	}

	tris := make([]Triangle, 0, cols*rows*2)
	stride := cols + 1
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			a := verts[j*stride+i]
			b := verts[j*stride+i+1]
			c := verts[(j+1)*stride+i]
			d := verts[(j+1)*stride+i+1]
			tris = append(tris, Triangle{a, c, b}, Triangle{b, c, d})
		}
	}
	return Mesh{Name: name, Triangles: tris}
}
