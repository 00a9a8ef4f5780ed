// SPDX-License-Identifier: GPL-2.0-or-later

//go:build !js

package main

import (
	"glcube/cvars"
	"glcube/glh"
	"glcube/texture"
)

const (
	vertexSourceSkybox = `
#version 410
layout (location = 0) in vec3 position;
out vec3 Direction;
uniform mat4 projection;
uniform mat4 modelview;

void main() {
	Direction = position;
	vec4 p = projection * modelview * vec4(position, 1.0);
	gl_Position = p.xyww;
}
`
	fragmentSourceSkybox = `
#version 410
in vec3 Direction;
out vec4 frag_color;
uniform samplerCube sky;

void main() {
  frag_color = texture(sky, Direction);
}
`
)

// skyBoxVertices are the 36 corners of the 12 triangles of a unit cube.
var skyBoxVertices = []float32{
	-1, 1, -1,
	-1, -1, -1,
	1, -1, -1,
	1, -1, -1,
	1, 1, -1,
	-1, 1, -1,

	-1, -1, 1,
	-1, -1, -1,
	-1, 1, -1,
	-1, 1, -1,
	-1, 1, 1,
	-1, -1, 1,

	1, -1, -1,
	1, -1, 1,
	1, 1, 1,
	1, 1, 1,
	1, 1, -1,
	1, -1, -1,

	-1, -1, 1,
	-1, 1, 1,
	1, 1, 1,
	1, 1, 1,
	1, -1, 1,
	-1, -1, 1,

	-1, 1, -1,
	1, 1, -1,
	1, 1, 1,
	1, 1, 1,
	-1, 1, 1,
	-1, 1, -1,

	-1, -1, -1,
	-1, -1, 1,
	1, -1, -1,
	1, -1, -1,
	-1, -1, 1,
	1, -1, 1,
}

type skyDrawer struct {
	vao        *glh.VertexArray
	vbo        *glh.Buffer
	prog       *glh.Program
	projection int32
	modelview  int32
	sampler    int32
}

func newSkyDrawer() (*skyDrawer, error) {
	d := &skyDrawer{}
	var err error
	d.prog, err = glh.NewProgram(vertexSourceSkybox, fragmentSourceSkybox)
	if err != nil {
		return nil, err
	}
	d.projection = d.prog.GetUniformLocation("projection") // mat
	d.modelview = d.prog.GetUniformLocation("modelview")   // mat
	d.sampler = d.prog.GetUniformLocation("sky")           // samplerCube

	d.vao = glh.NewVertexArray()
	d.vbo = glh.NewBuffer(glh.ArrayBuffer)
	d.vao.Bind()
	d.vbo.Bind()
	d.vbo.SetData(4*len(skyBoxVertices), glh.Ptr(skyBoxVertices))
	d.vao.Float3Attrib(0)
	return d, nil
}

// draw renders the box around the viewer, turned by angle degrees around
// the vertical axis.
func (d *skyDrawer) draw(t *texture.CubeTexture, width, height int, angle float32) {
	if t == nil || height == 0 {
		return
	}
	projection := glh.Perspective(cvars.Fov.Value(), float32(width)/float32(height), 0.1, 10)
	mv := glh.Identity()
	mv.RotateY(angle)

	d.prog.Use()
	d.vao.Bind()
	d.prog.SetMatrix(d.projection, projection)
	d.prog.SetMatrix(d.modelview, mv)
	d.prog.SetSampler(d.sampler, t.Unit())
	t.Bind()
	glh.DepthMask(false)
	glh.DrawTriangles(len(skyBoxVertices) / 3)
	glh.DepthMask(true)
	t.Unbind()
}
