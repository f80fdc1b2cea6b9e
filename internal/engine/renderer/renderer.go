// Package renderer draws the particle cloud with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/pointmorph/internal/engine/camera"
	"github.com/Faultbox/pointmorph/internal/logger"
	"github.com/Faultbox/pointmorph/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int // drawable size in pixels
	Height     int
	Background [3]float32
}

// Frame is everything needed to draw one frame of the cloud.
type Frame struct {
	Positions []float32
	Model     math.Mat4
	Style     PointStyle
}

// Renderer draws a point cloud into the default framebuffer.
type Renderer struct {
	config Config
	camera *camera.Camera
	points *PointCloud
	log    *zap.Logger
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, cam *camera.Camera) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		camera: cam,
		log:    logger.Named("render"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.MULTISAMPLE)
	bg := cfg.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.points, err = NewPointCloud(r.log)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Close releases the GPU buffers.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.points != nil {
		r.points.Destroy()
		r.points = nil
	}
}

// Resize handles a drawable size change.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw clears the screen and draws the frame.
func (r *Renderer) Draw(f Frame) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.points.Upload(f.Positions)

	aspect := float32(r.config.Width) / float32(max(r.config.Height, 1))
	r.points.Draw(
		f.Model,
		r.camera.ViewMatrix(),
		r.camera.ViewProjection(aspect),
		r.camera.PointScale(r.config.Height),
		f.Style,
	)
}
