// SPDX-License-Identifier: GPL-2.0-or-later

package texture

import (
	"glcube/glh"
)

// Format describes how texels are stored on the GPU (Internal) and how the
// uploaded source pixels are laid out (Pixel, Type).
type Format struct {
	Internal glh.Enum
	Pixel    glh.Enum
	Type     glh.Enum
}

// DefaultFormat is 8 bit RGBA.
var DefaultFormat = Format{
	Internal: glh.RGBA,
	Pixel:    glh.RGBA,
	Type:     glh.UnsignedByte,
}

// orDefault fills unset fields from DefaultFormat.
func (f Format) orDefault() Format {
	if f.Internal == 0 {
		f.Internal = DefaultFormat.Internal
	}
	if f.Pixel == 0 {
		f.Pixel = DefaultFormat.Pixel
	}
	if f.Type == 0 {
		f.Type = DefaultFormat.Type
	}
	return f
}

// BytesPerPixel returns the source size of one pixel.
func (f Format) BytesPerPixel() int {
	return glh.BytesPerPixel(f.Pixel, f.Type)
}

func (f Format) String() string {
	return f.Internal.String() + "/" + f.Pixel.String() + "/" + f.Type.String()
}

// base holds what every texture kind shares: the context, the default
// unit, the size of level 0 and the fixed format.
type base struct {
	ctx              glh.Context
	handle           glh.TexID
	unit             int
	width            int
	height           int
	format           Format
	premultiplyAlpha bool
}

func (b *base) Handle() glh.TexID {
	return b.handle
}

func (b *base) Unit() int {
	return b.unit
}

// Width is the width of level 0, -1 before the first level 0 upload.
func (b *base) Width() int {
	return b.width
}

// Height is the height of level 0, -1 before the first level 0 upload.
func (b *base) Height() int {
	return b.height
}

func (b *base) Format() Format {
	return b.format
}

func (b *base) PremultiplyAlpha() bool {
	return b.premultiplyAlpha
}

// SetPremultiplyAlpha sets the alpha handling of following uploads. Data
// already on the GPU is not touched.
func (b *base) SetPremultiplyAlpha(p bool) {
	b.premultiplyAlpha = p
}

func (b *base) store(flip bool) glh.PixelStore {
	return glh.PixelStore{
		FlipY:            flip,
		PremultiplyAlpha: b.premultiplyAlpha,
	}
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
