// Package camera provides the fixed viewpoint the point cloud is shown from.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/pointmorph/pkg/math"
)

// Camera is a perspective camera looking from Eye at Target.
type Camera struct {
	Eye    math.Vec3
	Target math.Vec3
	Up     math.Vec3

	FovY float32 // degrees
	Near float32
	Far  float32
}

// Default returns a camera slightly above the cloud, looking at the
// origin with a 60 degree field of view.
func Default() *Camera {
	return &Camera{
		Eye:    math.Vec3{X: 0, Y: 3.5, Z: 8},
		Target: math.Vec3{},
		Up:     math.Vec3{X: 0, Y: 1, Z: 0},
		FovY:   60,
		Near:   0.1,
		Far:    10000,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye, c.Target, c.Up)
}

// ProjectionMatrix returns the projection for a viewport of the given
// aspect ratio (width/height).
func (c *Camera) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(c.FovY*math32.Pi/180, aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection(aspect float32) math.Mat4 {
	return c.ProjectionMatrix(aspect).Mul(c.ViewMatrix())
}

// PointScale is the factor that turns a point size in world units into
// pixels at unit distance, for a viewport heightPx pixels tall.
func (c *Camera) PointScale(heightPx int) float32 {
	return float32(heightPx) / 2 / math32.Tan(c.FovY*math32.Pi/360)
}
