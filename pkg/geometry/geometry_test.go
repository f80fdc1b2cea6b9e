package geometry

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/pointmorph/pkg/math"
)

func TestTriangleArea(t *testing.T) {
	tri := Triangle{
		A: math.Vec3{},
		B: math.Vec3{X: 2},
		C: math.Vec3{Y: 3},
	}
	if got := tri.Area(); got != 3 {
		t.Errorf("Area() = %v, want 3", got)
	}
}

func TestTrianglePoint(t *testing.T) {
	tri := Triangle{
		A: math.Vec3{X: 1, Y: 1, Z: 1},
		B: math.Vec3{X: 3, Y: 1, Z: 1},
		C: math.Vec3{X: 1, Y: 5, Z: 1},
	}

	tests := []struct {
		r1, r2 float32
		want   math.Vec3
	}{
		{0, 0, tri.A},
		{1, 0, tri.B},
		{0, 1, tri.C},
		{0.5, 0.5, math.Vec3{X: 2, Y: 3, Z: 1}},
	}
	for _, tt := range tests {
		if got := tri.Point(tt.r1, tt.r2); got != tt.want {
			t.Errorf("Point(%v, %v) = %v, want %v", tt.r1, tt.r2, got, tt.want)
		}
	}
}

func TestBuildShapes(t *testing.T) {
	tests := []struct {
		shape   Shape
		size    float32
		minArea float32
		maxArea float32
	}{
		// Tessellated areas land a little under the analytic value.
		{ShapeSphere, 2, 0.95 * 4 * math32.Pi * 4, 4 * math32.Pi * 4},
		{ShapeBox, 1, 24, 24},
		{ShapeTorus, 10, 0.9 * 4 * math32.Pi * math32.Pi * 7 * 3, 4 * math32.Pi * math32.Pi * 7 * 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.shape), func(t *testing.T) {
			m, err := Build("m", Spec{Shape: tt.shape, Size: tt.size})
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			area := m.Area()
			if area < tt.minArea || area > tt.maxArea*1.0001 {
				t.Errorf("area = %v, want in [%v, %v]", area, tt.minArea, tt.maxArea)
			}
		})
	}
}

func TestBuildKnot(t *testing.T) {
	m, err := Build("knot", Spec{Shape: ShapeKnot, Size: 100, Segments: 16})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(m.Triangles) == 0 {
		t.Fatal("knot has no triangles")
	}
	b := m.Bounds()
	if b.Max.X > 130 || b.Min.X < -130 {
		t.Errorf("knot bounds %v exceed expected extent", b)
	}
	if m.Area() <= 0 {
		t.Error("knot area should be positive")
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"zero size", Spec{Shape: ShapeSphere}},
		{"negative size", Spec{Shape: ShapeSphere, Size: -1}},
		{"too few segments", Spec{Shape: ShapeTorus, Size: 1, Segments: 2}},
		{"unknown shape", Spec{Shape: "teapot", Size: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Build("m", tt.spec); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestBounds(t *testing.T) {
	m, err := Build("box", Spec{Shape: ShapeBox, Size: 2})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b := m.Bounds()
	if b.Min != (math.Vec3{X: -2, Y: -2, Z: -2}) || b.Max != (math.Vec3{X: 2, Y: 2, Z: 2}) {
		t.Errorf("Bounds() = %+v", b)
	}
	if (Mesh{}).Bounds() != (Bounds{}) {
		t.Error("empty mesh should have zero bounds")
	}
}

func TestLibrary(t *testing.T) {
	lib, err := NewLibrary(map[string]Spec{
		"ball":  {Shape: ShapeSphere, Size: 300},
		"donut": {Shape: ShapeTorus, Size: 200},
	})
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}

	names := lib.Names()
	if len(names) != 2 || names[0] != "ball" || names[1] != "donut" {
		t.Errorf("Names() = %v", names)
	}

	if _, err := lib.Mesh("ball"); err != nil {
		t.Errorf("Mesh(ball): %v", err)
	}
	if _, err := lib.Mesh("cat"); err == nil {
		t.Error("expected error for missing mesh")
	}

	if _, err := NewLibrary(map[string]Spec{"bad": {Shape: "teapot", Size: 1}}); err == nil {
		t.Error("expected error for bad spec")
	}
}
