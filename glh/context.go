// SPDX-License-Identifier: GPL-2.0-or-later

package glh

// TexID names a texture object of a Context. IDs handed out by the backends
// in this package are never recycled after DeleteTexture.
type TexID uint32

// NoTexture is the null binding.
const NoTexture TexID = 0

// PixelStore carries the unpack transforms of a single upload, the per call
// form of UNPACK_FLIP_Y and UNPACK_PREMULTIPLY_ALPHA.
type PixelStore struct {
	FlipY            bool
	PremultiplyAlpha bool
}

// Context is the subset of an immediate mode graphics context needed to
// manage texture objects.
type Context interface {
	CreateTexture() TexID
	DeleteTexture(id TexID)
	// ActiveTexture selects texture unit Texture0+unit.
	ActiveTexture(unit int)
	BindTexture(target Enum, id TexID)
	// TexImage2D uploads pixels into one 2D image of target. A nil pixels
	// slice allocates storage without initializing it.
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int,
		format, xtype Enum, pixels []byte, store PixelStore) error
	TexParameteri(target, pname, param Enum)
	GenerateMipmap(target Enum)
}
