// SPDX-License-Identifier: GPL-2.0-or-later

//go:build !js

package glh

import (
	"log"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/pkg/errors"
)

// GLContext implements Context on top of a current desktop OpenGL context.
// gl.Init must have been called and all methods must run on the thread the
// context is current on. GL names are reused by drivers after a delete, so
// TexIDs are mapped to them through a table.
type GLContext struct {
	textures names[uint32]
}

func NewGLContext() *GLContext {
	// Rows of RGB and single channel images are tightly packed.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	return &GLContext{textures: newNames[uint32]()}
}

func (c *GLContext) CreateTexture() TexID {
	var t uint32
	gl.GenTextures(1, &t)
	return c.textures.add(t)
}

func (c *GLContext) DeleteTexture(id TexID) {
	t, ok := c.textures.remove(id)
	if !ok {
		return
	}
	gl.DeleteTextures(1, &t)
}

func (c *GLContext) ActiveTexture(unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
}

// BindTexture binds id to target. Unknown ids bind the null texture.
func (c *GLContext) BindTexture(target Enum, id TexID) {
	t, _ := c.textures.get(id)
	gl.BindTexture(uint32(target), t)
}

// TexImage2D uploads pixels. Desktop GL has no unpack flip or premultiply
// flags, so store is applied to a copy of the data before the upload.
func (c *GLContext) TexImage2D(target Enum, level int, internalFormat Enum, width, height int,
	format, xtype Enum, pixels []byte, store PixelStore) error {
	data := Transform(pixels, width, height, format, xtype, store)
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat),
		int32(width), int32(height), 0, uint32(format), uint32(xtype), ptr)
	return glError("TexImage2D")
}

func (c *GLContext) TexParameteri(target, pname, param Enum) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (c *GLContext) GenerateMipmap(target Enum) {
	gl.GenerateMipmap(uint32(target))
}

// glError drains the GL error queue and reports the first entry.
func glError(op string) error {
	var first uint32
	for e := gl.GetError(); e != gl.NO_ERROR; e = gl.GetError() {
		if first == 0 {
			first = e
		} else {
			log.Printf("%s: additional GL error 0x%04X", op, e)
		}
	}
	if first != 0 {
		return errors.Errorf("%s: GL error 0x%04X", op, first)
	}
	return nil
}
