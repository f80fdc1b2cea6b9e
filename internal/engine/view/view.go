// Package view renders the particle cloud into an offscreen framebuffer so
// that it can be embedded in an ImGui window.
package view

import (
	"go.uber.org/zap"

	"github.com/Faultbox/pointmorph/internal/engine/camera"
	"github.com/Faultbox/pointmorph/internal/engine/framebuffer"
	"github.com/Faultbox/pointmorph/internal/engine/renderer"
)

// PointCloudView owns a framebuffer, a point renderer and a camera.
type PointCloudView struct {
	fb         *framebuffer.Framebuffer
	points     *renderer.PointCloud
	camera     *camera.Camera
	Background [3]float32
}

// New creates a view of the given pixel size. An OpenGL context must be
// current.
func New(width, height int32, log *zap.Logger) (*PointCloudView, error) {
	fb, err := framebuffer.New(width, height)
	if err != nil {
		return nil, err
	}

	points, err := renderer.NewPointCloud(log)
	if err != nil {
		fb.Destroy()
		return nil, err
	}

	return &PointCloudView{
		fb:         fb,
		points:     points,
		camera:     camera.Default(),
		Background: [3]float32{1, 1, 1},
	}, nil
}

// Resize changes the framebuffer size. Zero sizes are clamped to one pixel.
func (v *PointCloudView) Resize(width, height int32) {
	v.fb.Resize(width, height)
}

// Size returns the framebuffer size in pixels.
func (v *PointCloudView) Size() (int32, int32) {
	return v.fb.Size()
}

// Render draws the frame and returns the color texture holding it.
func (v *PointCloudView) Render(f renderer.Frame) uint32 {
	restore := v.fb.BindWithViewport()
	defer restore()

	v.fb.Clear(v.Background)

	w, h := v.fb.Size()
	v.points.Upload(f.Positions)
	v.points.Draw(
		f.Model,
		v.camera.ViewMatrix(),
		v.camera.ViewProjection(float32(w)/float32(h)),
		v.camera.PointScale(int(h)),
		f.Style,
	)
	return v.fb.ColorTexture()
}

// Destroy releases the GPU buffers.
func (v *PointCloudView) Destroy() {
	v.points.Destroy()
	v.fb.Destroy()
}
