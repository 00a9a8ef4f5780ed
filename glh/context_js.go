// SPDX-License-Identifier: GPL-2.0-or-later

//go:build js

package glh

import (
	"syscall/js"

	"github.com/pkg/errors"
)

const (
	unpackFlipY            = 0x9240
	unpackPremultiplyAlpha = 0x9241
	unpackAlignment        = 0x0CF5
	noError                = 0
)

// WebGLContext implements Context on top of a WebGL(2)RenderingContext.
// WebGL texture objects are JS values, they are kept in a table keyed by
// TexID.
type WebGLContext struct {
	ctx      js.Value
	textures names[js.Value]

	uint8Array   js.Value
	uint16Array  js.Value
	uint32Array  js.Value
	float32Array js.Value
}

func NewWebGLContext(ctx js.Value) *WebGLContext {
	c := &WebGLContext{
		ctx:          ctx,
		textures:     newNames[js.Value](),
		uint8Array:   js.Global().Get("Uint8Array"),
		uint16Array:  js.Global().Get("Uint16Array"),
		uint32Array:  js.Global().Get("Uint32Array"),
		float32Array: js.Global().Get("Float32Array"),
	}
	c.ctx.Call("pixelStorei", unpackAlignment, 1)
	return c
}

// Value returns the wrapped rendering context.
func (c *WebGLContext) Value() js.Value {
	return c.ctx
}

func (c *WebGLContext) CreateTexture() TexID {
	return c.textures.add(c.ctx.Call("createTexture"))
}

func (c *WebGLContext) DeleteTexture(id TexID) {
	t, ok := c.textures.remove(id)
	if !ok {
		return
	}
	c.ctx.Call("deleteTexture", t)
}

func (c *WebGLContext) ActiveTexture(unit int) {
	c.ctx.Call("activeTexture", int(Texture0)+unit)
}

func (c *WebGLContext) BindTexture(target Enum, id TexID) {
	t, ok := c.textures.get(id)
	if !ok {
		t = js.Null()
	}
	c.ctx.Call("bindTexture", int(target), t)
}

func (c *WebGLContext) TexImage2D(target Enum, level int, internalFormat Enum, width, height int,
	format, xtype Enum, pixels []byte, store PixelStore) error {
	c.ctx.Call("pixelStorei", unpackPremultiplyAlpha, store.PremultiplyAlpha)
	c.ctx.Call("pixelStorei", unpackFlipY, store.FlipY)
	c.ctx.Call("texImage2D", int(target), level, int(internalFormat), width, height, 0,
		int(format), int(xtype), c.view(pixels, xtype))
	if e := c.ctx.Call("getError").Int(); e != noError {
		return errors.Errorf("texImage2D: WebGL error 0x%04X", e)
	}
	return nil
}

// view copies pixels into a typed array matching xtype.
func (c *WebGLContext) view(pixels []byte, xtype Enum) js.Value {
	if pixels == nil {
		return js.Null()
	}
	u8 := c.uint8Array.New(len(pixels))
	js.CopyBytesToJS(u8, pixels)
	buf := u8.Get("buffer")
	switch xtype {
	case Float:
		return c.float32Array.New(buf, 0, len(pixels)/4)
	case UnsignedInt:
		return c.uint32Array.New(buf, 0, len(pixels)/4)
	case UnsignedShort, HalfFloat, UnsignedShort565, UnsignedShort4444, UnsignedShort5551:
		return c.uint16Array.New(buf, 0, len(pixels)/2)
	}
	return u8
}

func (c *WebGLContext) TexParameteri(target, pname, param Enum) {
	c.ctx.Call("texParameteri", int(target), int(pname), int(param))
}

func (c *WebGLContext) GenerateMipmap(target Enum) {
	c.ctx.Call("generateMipmap", int(target))
}
