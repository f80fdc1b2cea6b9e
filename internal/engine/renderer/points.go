package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/pointmorph/internal/engine/shader"
	"github.com/Faultbox/pointmorph/pkg/math"
)

const pointVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uModel;
uniform mat4 uViewProj;
uniform mat4 uView;
uniform float uSize;
uniform float uScale;

void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	vec4 eye = uView * world;
	gl_Position = uViewProj * world;
	// Size attenuation: uSize is in world units.
	gl_PointSize = max(uSize * uScale / -eye.z, 1.0);
}
`

const pointFragmentShader = `
#version 410 core

uniform vec3 uColor;
uniform float uOpacity;

out vec4 FragColor;

void main() {
	vec2 d = gl_PointCoord - vec2(0.5);
	if (dot(d, d) > 0.25) {
		discard;
	}
	FragColor = vec4(uColor, uOpacity);
}
`

// PointStyle holds the per-frame drawing parameters of a point cloud.
type PointStyle struct {
	Color   [3]float32
	Size    float32 // world units
	Opacity float32
}

// PointCloud draws a dynamic buffer of x,y,z positions as round points.
// The vertex buffer is reallocated when the particle count changes and
// updated in place otherwise.
type PointCloud struct {
	program  *shader.Program
	vao      uint32
	vbo      uint32
	capacity int // floats
	count    int32
	log      *zap.Logger
}

// NewPointCloud compiles the point shader and allocates the buffers.
// An OpenGL context must be current.
func NewPointCloud(log *zap.Logger) (*PointCloud, error) {
	if log == nil {
		log = zap.NewNop()
	}

	prog, err := shader.New(pointVertexShader, pointFragmentShader,
		"uModel", "uViewProj", "uView", "uSize", "uScale", "uColor", "uOpacity")
	if err != nil {
		return nil, fmt.Errorf("point shader: %w", err)
	}

	pc := &PointCloud{program: prog, log: log}

	gl.GenVertexArrays(1, &pc.vao)
	gl.BindVertexArray(pc.vao)

	gl.GenBuffers(1, &pc.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, pc.vbo)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	log.Debug("point cloud created",
		zap.Uint32("program", prog.ID),
		zap.Uint32("vao", pc.vao),
		zap.Uint32("vbo", pc.vbo),
	)
	return pc, nil
}

// Upload copies positions into the vertex buffer.
func (pc *PointCloud) Upload(positions []float32) {
	pc.count = int32(len(positions) / 3)
	if len(positions) == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, pc.vbo)
	if len(positions) != pc.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.DYNAMIC_DRAW)
		pc.capacity = len(positions)
		pc.log.Debug("point buffer resized", zap.Int32("points", pc.count))
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(positions)*4, gl.Ptr(positions))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw renders the uploaded points. pointScale converts the style size
// from world units into pixels at unit distance; see camera.PointScale.
func (pc *PointCloud) Draw(model, view, viewProj math.Mat4, pointScale float32, style PointStyle) {
	if pc.count == 0 {
		return
	}

	// Transparent points without depth writes, blended in buffer order.
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	pc.program.Use()
	pc.program.SetMat4("uModel", model.Ptr())
	pc.program.SetMat4("uView", view.Ptr())
	pc.program.SetMat4("uViewProj", viewProj.Ptr())
	pc.program.SetFloat("uSize", style.Size)
	pc.program.SetFloat("uScale", pointScale)
	pc.program.SetVec3("uColor", style.Color)
	pc.program.SetFloat("uOpacity", style.Opacity)

	gl.BindVertexArray(pc.vao)
	gl.DrawArrays(gl.POINTS, 0, pc.count)
	gl.BindVertexArray(0)
}

// Destroy releases the GPU buffers and the program.
func (pc *PointCloud) Destroy() {
	if pc.vao != 0 {
		gl.DeleteVertexArrays(1, &pc.vao)
		pc.vao = 0
	}
	if pc.vbo != 0 {
		gl.DeleteBuffers(1, &pc.vbo)
		pc.vbo = 0
	}
	pc.program.Delete()
	pc.log.Debug("point cloud released")
}
