package camera

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/pointmorph/pkg/math"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Eye != (math.Vec3{Y: 3.5, Z: 8}) {
		t.Errorf("Eye = %v", c.Eye)
	}
	if c.FovY != 60 || c.Near != 0.1 || c.Far != 10000 {
		t.Errorf("unexpected lens %v/%v/%v", c.FovY, c.Near, c.Far)
	}
}

func TestViewMatrixCentersTarget(t *testing.T) {
	c := Default()
	v := c.ViewMatrix()

	// The target lies straight ahead on the -Z axis in view space.
	p := v.TransformPoint(c.Target)
	if math32.Abs(p.X) > 1e-4 || math32.Abs(p.Y) > 1e-4 {
		t.Errorf("target in view space = %v, want on the Z axis", p)
	}
	want := -c.Eye.Distance(c.Target)
	if math32.Abs(p.Z-want) > 1e-4 {
		t.Errorf("target depth = %v, want %v", p.Z, want)
	}
}

func TestProjectionMatrix(t *testing.T) {
	c := Default()

	tests := []struct {
		aspect float32
		want0  float32
	}{
		{1, 1 / math32.Tan(math32.Pi/6)},
		{2, 1 / math32.Tan(math32.Pi/6) / 2},
		{0, 1 / math32.Tan(math32.Pi/6)}, // invalid aspect falls back to 1
	}
	for _, tt := range tests {
		m := c.ProjectionMatrix(tt.aspect)
		if math32.Abs(m[0]-tt.want0) > 1e-4 {
			t.Errorf("aspect %v: m[0] = %v, want %v", tt.aspect, m[0], tt.want0)
		}
	}
}

func TestPointScale(t *testing.T) {
	c := Default()
	c.FovY = 90

	// tan(45deg) = 1, so the scale is half the height.
	if got := c.PointScale(720); math32.Abs(got-360) > 1e-3 {
		t.Errorf("PointScale(720) = %v, want 360", got)
	}
}
