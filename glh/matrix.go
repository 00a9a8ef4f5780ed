// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Matrix is a row major 4x4 matrix.
type Matrix struct {
	m [16]float32
}

func (m *Matrix) String() string {
	return fmt.Sprintf("%v %v %v %v\n%v %v %v %v\n%v %v %v %v\n%v %v %v %v",
		m.m[0], m.m[1], m.m[2], m.m[3],
		m.m[4], m.m[5], m.m[6], m.m[7],
		m.m[8], m.m[9], m.m[10], m.m[11],
		m.m[12], m.m[13], m.m[14], m.m[15],
	)
}

func sincos(deg float32) (float32, float32) {
	return math32.Sincos(deg * math32.Pi / 180)
}

func Identity() *Matrix {
	return &Matrix{
		m: [16]float32{
			1, 0, 0, 0, // 0 - 3
			0, 1, 0, 0, // 4 - 7
			0, 0, 1, 0, // 8 - 11
			0, 0, 0, 1, // 12 - 15
		},
	}
}

// Perspective returns a right handed projection with a vertical field of
// view of fovY degrees.
func Perspective(fovY, aspect, near, far float32) *Matrix {
	f := 1 / math32.Tan(fovY*math32.Pi/360)
	return &Matrix{
		m: [16]float32{
			f / aspect, 0, 0, 0,
			0, f, 0, 0,
			0, 0, (far + near) / (near - far), 2 * far * near / (near - far),
			0, 0, -1, 0,
		},
	}
}

func (m *Matrix) Copy() *Matrix {
	nm := &Matrix{}
	copy(nm.m[:], m.m[:])
	return nm
}

// mul sets m to m*n.
func (m *Matrix) mul(n [16]float32) {
	var r [16]float32
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += m.m[row*4+k] * n[k*4+col]
			}
			r[row*4+col] = s
		}
	}
	m.m = r
}

func (m *Matrix) Translate(x, y, z float32) {
	m.mul([16]float32{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	})
}

func (m *Matrix) RotateX(degree float32) {
	sin, cos := sincos(degree)
	m.mul([16]float32{
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	})
}

func (m *Matrix) RotateY(degree float32) {
	sin, cos := sincos(degree)
	m.mul([16]float32{
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	})
}

func (m *Matrix) RotateZ(degree float32) {
	sin, cos := sincos(degree)
	m.mul([16]float32{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

func (m *Matrix) Scale(x, y, z float32) {
	m.mul([16]float32{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	})
}
