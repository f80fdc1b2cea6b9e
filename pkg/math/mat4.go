package math

import "github.com/chewxy/math32"

// Mat4 is a 4x4 matrix stored column by column, the layout OpenGL
// uniforms expect. Element (row r, column c) lives at index c*4+r.
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	var m Mat4
	for i := 0; i < 16; i += 5 {
		m[i] = 1
	}
	return m
}

// Perspective returns a right-handed projection with clip depth in [-1, 1].
// fovY is in radians, aspect is width/height.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	var m Mat4
	f := 1 / math32.Tan(fovY/2)
	depth := near - far

	m[0] = f / aspect
	m[5] = f
	m[10] = (near + far) / depth
	m[11] = -1
	m[14] = 2 * near * far / depth
	return m
}

// LookAt returns a view matrix for a camera at eye facing center.
func LookAt(eye, center, up Vec3) Mat4 {
	forward := center.Sub(eye).Normalize()
	right := forward.Cross(up).Normalize()
	camUp := right.Cross(forward)

	m := Identity()
	for row, axis := range [3]Vec3{right, camUp, forward.Scale(-1)} {
		m[row], m[4+row], m[8+row] = axis.X, axis.Y, axis.Z
		m[12+row] = -axis.Dot(eye)
	}
	return m
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// RotateY returns a rotation of angle radians about the Y axis.
func RotateY(angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	m := Identity()
	m[0], m[2] = c, -s
	m[8], m[10] = s, c
	return m
}

// Mul returns m * other, so other is applied to a point first.
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for k := 0; k < 4; k++ {
			b := other[col*4+k]
			for row := 0; row < 4; row++ {
				out[col*4+row] += m[k*4+row] * b
			}
		}
	}
	return out
}

// column returns the first three rows of column c.
func (m Mat4) column(c int) Vec3 {
	return Vec3{m[c*4], m[c*4+1], m[c*4+2]}
}

// TransformPoint applies m to p with w=1, ignoring the projective row.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return m.column(0).Scale(p.X).
		Add(m.column(1).Scale(p.Y)).
		Add(m.column(2).Scale(p.Z)).
		Add(m.column(3))
}

// Ptr returns a pointer to the first element for glUniformMatrix4fv.
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}
